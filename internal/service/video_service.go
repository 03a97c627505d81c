package service

import (
	"fmt"
	"time"

	"creatorpay-be-svc/internal/models"
	"creatorpay-be-svc/internal/repository"
	"creatorpay-be-svc/pkg/logger"

	"github.com/google/uuid"
)

// VideoService defines the interface for video business operations
type VideoService interface {
	GetVideo(id uuid.UUID) (*models.Video, error)
	ListVideos(companyID uuid.UUID, page, limit int) ([]*models.Video, int64, error)
	ListCreatorVideos(creatorID uuid.UUID) ([]*models.Video, error)
	SubmitVideo(video *models.Video) error
	UpdateVideo(video *models.Video) error
	UpdateStatus(id uuid.UUID, status string) error
	UpdateViews(id uuid.UUID, views int64) error
	DeleteVideo(id uuid.UUID) error
}

// videoService implements VideoService
type videoService struct {
	videoRepo   repository.VideoRepository
	creatorRepo repository.CreatorRepository
	tierService TierService
	logger      *logger.Logger
}

// NewVideoService creates a new instance of VideoService
func NewVideoService(
	videoRepo repository.VideoRepository,
	creatorRepo repository.CreatorRepository,
	tierService TierService,
	logger *logger.Logger,
) VideoService {
	return &videoService{
		videoRepo:   videoRepo,
		creatorRepo: creatorRepo,
		tierService: tierService,
		logger:      logger,
	}
}

// GetVideo retrieves a video by ID
func (s *videoService) GetVideo(id uuid.UUID) (*models.Video, error) {
	return s.videoRepo.GetVideoByID(id)
}

// ListVideos retrieves videos for a company with pagination
func (s *videoService) ListVideos(companyID uuid.UUID, page, limit int) ([]*models.Video, int64, error) {
	return s.videoRepo.ListVideosByCompany(companyID, page, limit)
}

// ListCreatorVideos retrieves all videos for a creator
func (s *videoService) ListCreatorVideos(creatorID uuid.UUID) ([]*models.Video, error) {
	return s.videoRepo.ListVideosByCreator(creatorID)
}

// SubmitVideo creates a video in pending state and seeds its tier payment
// rows from the creator's applicable tier set
func (s *videoService) SubmitVideo(video *models.Video) error {
	if video.Views < 0 {
		return fmt.Errorf("%w: views must be >= 0", ErrInvalidInput)
	}

	creator, err := s.creatorRepo.GetCreatorByID(video.CreatorID)
	if err != nil {
		return fmt.Errorf("failed to get creator: %w", err)
	}
	video.CompanyID = creator.CompanyID

	now := time.Now()
	if video.Status == "" {
		video.Status = models.VideoStatusPending
	}
	video.SubmittedAt = &now

	if err := s.videoRepo.CreateVideo(video); err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}

	tiers, err := s.tierService.ApplicableTiers(creator)
	if err != nil {
		return err
	}

	if err := s.tierService.RegenerateForVideo(video, tiers); err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"video_id":   video.ID,
		"creator_id": video.CreatorID,
		"tiers":      len(tiers),
	}).Info("Video submitted")

	return nil
}

// UpdateVideo persists changes to a video record
func (s *videoService) UpdateVideo(video *models.Video) error {
	if video.Views < 0 {
		return fmt.Errorf("%w: views must be >= 0", ErrInvalidInput)
	}
	return s.videoRepo.UpdateVideo(video)
}

// UpdateStatus moves a video through the approval workflow
func (s *videoService) UpdateStatus(id uuid.UUID, status string) error {
	switch status {
	case models.VideoStatusPending, models.VideoStatusApproved, models.VideoStatusRejected:
	default:
		return fmt.Errorf("%w: unknown video status %q", ErrInvalidInput, status)
	}

	var approvedAt *time.Time
	if status == models.VideoStatusApproved {
		now := time.Now()
		approvedAt = &now
	}

	if err := s.videoRepo.UpdateVideoStatus(id, status, approvedAt); err != nil {
		return fmt.Errorf("failed to update video status: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"video_id": id,
		"status":   status,
	}).Info("Video status updated")

	return nil
}

// UpdateViews sets a video's view count (manual admin edit) and refreshes the
// informational reached flags of its tier payment rows. Frozen payment
// amounts are not touched; live amounts pick up the new count on next read.
func (s *videoService) UpdateViews(id uuid.UUID, views int64) error {
	if views < 0 {
		return fmt.Errorf("%w: views must be >= 0", ErrInvalidInput)
	}

	if err := s.videoRepo.UpdateVideoViews(id, views); err != nil {
		return fmt.Errorf("failed to update views: %w", err)
	}

	return s.refreshReached(id)
}

// DeleteVideo deletes a video and its tier payment rows
func (s *videoService) DeleteVideo(id uuid.UUID) error {
	if err := s.videoRepo.DeleteVideoCascade(id); err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}

	s.logger.WithField("video_id", id).Info("Video deleted with tier payments")
	return nil
}

// refreshReached recomputes reached flags after a view count change
func (s *videoService) refreshReached(videoID uuid.UUID) error {
	video, err := s.videoRepo.GetVideoByID(videoID)
	if err != nil {
		return fmt.Errorf("failed to get video: %w", err)
	}

	creator, err := s.creatorRepo.GetCreatorByID(video.CreatorID)
	if err != nil {
		return fmt.Errorf("failed to get creator: %w", err)
	}

	tiers, err := s.tierService.ApplicableTiers(creator)
	if err != nil {
		return err
	}

	return s.tierService.RegenerateForVideo(video, tiers)
}
