package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Video status values
const (
	VideoStatusPending  = "pending"
	VideoStatusApproved = "approved"
	VideoStatusRejected = "rejected"
)

// Video represents the videos table. BasePaymentAmount and CPMPaymentAmount
// are frozen at the moment BaseCPMPaid flips to true and are never
// recalculated while the flag stays set.
type Video struct {
	ID                uuid.UUID        `json:"id" gorm:"type:uuid;primarykey;default:gen_random_uuid()"`
	CompanyID         uuid.UUID        `json:"company_id" gorm:"column:company_id;type:uuid;not null;index"`
	CreatorID         uuid.UUID        `json:"creator_id" gorm:"column:creator_id;type:uuid;not null;index"`
	Title             string           `json:"title" gorm:"column:title;not null"`
	Description       *string          `json:"description" gorm:"column:description"`
	VideoURL          *string          `json:"video_url" gorm:"column:video_url"`
	ThumbnailURL      *string          `json:"thumbnail_url" gorm:"column:thumbnail_url"`
	Platform          *string          `json:"platform" gorm:"column:platform"`
	Status            string           `json:"status" gorm:"column:status;default:pending"`
	Views             int64            `json:"views" gorm:"column:views;default:0"`
	Likes             int64            `json:"likes" gorm:"column:likes;default:0"`
	Comments          int64            `json:"comments" gorm:"column:comments;default:0"`
	SubmittedAt       *time.Time       `json:"submitted_at" gorm:"column:submitted_at"`
	ApprovedAt        *time.Time       `json:"approved_at" gorm:"column:approved_at"`
	BaseCPMPaid       bool             `json:"base_cpm_paid" gorm:"column:base_cpm_paid;default:false"`
	BaseCPMPaidAt     *time.Time       `json:"base_cpm_paid_at" gorm:"column:base_cpm_paid_at"`
	BasePaymentAmount *decimal.Decimal `json:"base_payment_amount" gorm:"column:base_payment_amount;type:numeric(12,2)"`
	CPMPaymentAmount  *decimal.Decimal `json:"cpm_payment_amount" gorm:"column:cpm_payment_amount;type:numeric(12,2)"`
	CreatedAt         *time.Time       `json:"created_at"`
	UpdatedAt         *time.Time       `json:"updated_at"`
}

// TableName sets the insert table name for Video
func (Video) TableName() string {
	return "videos"
}
