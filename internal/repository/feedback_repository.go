package repository

import (
	"creatorpay-be-svc/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeedbackRepository defines the interface for video feedback data operations
type FeedbackRepository interface {
	GetFeedbackByID(id uuid.UUID) (*models.VideoFeedback, error)
	ListFeedbackByVideo(videoID uuid.UUID) ([]*models.VideoFeedback, error)
	CreateFeedback(feedback *models.VideoFeedback) error
	UpdateFeedback(feedback *models.VideoFeedback) error
	DeleteFeedback(id uuid.UUID) error
}

// feedbackRepository implements FeedbackRepository
type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new instance of FeedbackRepository
func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{
		db: db,
	}
}

// GetFeedbackByID retrieves a feedback entry by ID
func (r *feedbackRepository) GetFeedbackByID(id uuid.UUID) (*models.VideoFeedback, error) {
	var feedback models.VideoFeedback

	err := r.db.Where("id = ?", id).First(&feedback).Error
	if err != nil {
		return nil, err
	}

	return &feedback, nil
}

// ListFeedbackByVideo retrieves all feedback for a video, newest first
func (r *feedbackRepository) ListFeedbackByVideo(videoID uuid.UUID) ([]*models.VideoFeedback, error) {
	var feedback []*models.VideoFeedback

	err := r.db.Where("video_id = ?", videoID).
		Order("created_at DESC").
		Find(&feedback).Error
	if err != nil {
		return nil, err
	}

	return feedback, nil
}

// CreateFeedback creates a new feedback entry
func (r *feedbackRepository) CreateFeedback(feedback *models.VideoFeedback) error {
	return r.db.Create(feedback).Error
}

// UpdateFeedback persists changes to a feedback entry
func (r *feedbackRepository) UpdateFeedback(feedback *models.VideoFeedback) error {
	return r.db.Save(feedback).Error
}

// DeleteFeedback deletes a feedback entry
func (r *feedbackRepository) DeleteFeedback(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&models.VideoFeedback{}).Error
}
