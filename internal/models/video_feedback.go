package models

import (
	"time"

	"github.com/google/uuid"
)

// VideoFeedback represents the video_feedback table (admin feedback on a video)
type VideoFeedback struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primarykey;default:gen_random_uuid()"`
	VideoID   uuid.UUID  `json:"video_id" gorm:"column:video_id;type:uuid;not null;index"`
	AdminID   uuid.UUID  `json:"admin_id" gorm:"column:admin_id;type:uuid;not null"`
	Feedback  string     `json:"feedback" gorm:"column:feedback;not null"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// TableName sets the insert table name for VideoFeedback
func (VideoFeedback) TableName() string {
	return "video_feedback"
}
