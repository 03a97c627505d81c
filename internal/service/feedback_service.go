package service

import (
	"fmt"
	"strings"

	"creatorpay-be-svc/internal/models"
	"creatorpay-be-svc/internal/repository"

	"github.com/google/uuid"
)

// FeedbackService defines the interface for video feedback operations
type FeedbackService interface {
	ListFeedback(videoID uuid.UUID) ([]*models.VideoFeedback, error)
	CreateFeedback(videoID, adminID uuid.UUID, text string) (*models.VideoFeedback, error)
	DeleteFeedback(id uuid.UUID) error
}

// feedbackService implements FeedbackService
type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	videoRepo    repository.VideoRepository
}

// NewFeedbackService creates a new instance of FeedbackService
func NewFeedbackService(feedbackRepo repository.FeedbackRepository, videoRepo repository.VideoRepository) FeedbackService {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		videoRepo:    videoRepo,
	}
}

// ListFeedback retrieves all feedback for a video
func (s *feedbackService) ListFeedback(videoID uuid.UUID) ([]*models.VideoFeedback, error) {
	return s.feedbackRepo.ListFeedbackByVideo(videoID)
}

// CreateFeedback adds an admin feedback entry to a video
func (s *feedbackService) CreateFeedback(videoID, adminID uuid.UUID, text string) (*models.VideoFeedback, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: feedback text is required", ErrInvalidInput)
	}

	// ensure the video exists
	if _, err := s.videoRepo.GetVideoByID(videoID); err != nil {
		return nil, fmt.Errorf("video not found: %w", err)
	}

	feedback := &models.VideoFeedback{
		VideoID:  videoID,
		AdminID:  adminID,
		Feedback: text,
	}

	if err := s.feedbackRepo.CreateFeedback(feedback); err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}

	return feedback, nil
}

// DeleteFeedback removes a feedback entry
func (s *feedbackService) DeleteFeedback(id uuid.UUID) error {
	return s.feedbackRepo.DeleteFeedback(id)
}
