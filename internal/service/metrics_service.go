package service

import (
	"context"
	"fmt"
	"time"

	"creatorpay-be-svc/internal/models"
	"creatorpay-be-svc/internal/models/response"
	"creatorpay-be-svc/internal/repository"
	"creatorpay-be-svc/internal/scraper"
	"creatorpay-be-svc/pkg/logger"

	"github.com/google/uuid"
)

// MetricsService defines the interface for refreshing video engagement
// metrics from the scraping provider
type MetricsService interface {
	RefreshVideoMetrics(ctx context.Context, companyID *uuid.UUID) (*response.MetricsRefreshResponse, error)
}

// metricsService implements MetricsService
type metricsService struct {
	videoRepo   repository.VideoRepository
	creatorRepo repository.CreatorRepository
	tierService TierService
	scraper     scraper.Client
	maxAgeDays  int
	batchLimit  int
	logger      *logger.Logger
}

// NewMetricsService creates a new instance of MetricsService
func NewMetricsService(
	videoRepo repository.VideoRepository,
	creatorRepo repository.CreatorRepository,
	tierService TierService,
	scraperClient scraper.Client,
	maxAgeDays int,
	batchLimit int,
	logger *logger.Logger,
) MetricsService {
	return &metricsService{
		videoRepo:   videoRepo,
		creatorRepo: creatorRepo,
		tierService: tierService,
		scraper:     scraperClient,
		maxAgeDays:  maxAgeDays,
		batchLimit:  batchLimit,
		logger:      logger,
	}
}

// RefreshVideoMetrics scrapes current view counts for recent videos and
// writes them back. Only videos with a URL that are at most maxAgeDays old
// are refreshed, in batches of batchLimit. New view counts update the
// informational reached flags; frozen payment amounts are never touched.
func (s *metricsService) RefreshVideoMetrics(ctx context.Context, companyID *uuid.UUID) (*response.MetricsRefreshResponse, error) {
	since := time.Now().AddDate(0, 0, -s.maxAgeDays)

	videos, err := s.videoRepo.ListRecentVideosWithURL(companyID, since, s.batchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos for refresh: %w", err)
	}

	if len(videos) == 0 {
		return &response.MetricsRefreshResponse{
			Message:   "No videos to update",
			Timestamp: time.Now(),
		}, nil
	}

	inputs := make([]scraper.VideoInput, 0, len(videos))
	videosByID := make(map[uuid.UUID]*models.Video, len(videos))
	for _, video := range videos {
		if video.VideoURL == nil {
			continue
		}
		inputs = append(inputs, scraper.VideoInput{ID: video.ID, URL: *video.VideoURL})
		videosByID[video.ID] = video
	}

	s.logger.WithField("count", len(inputs)).Info("Starting video metrics refresh")

	results, err := s.scraper.ScrapeVideos(ctx, inputs)
	if err != nil {
		return nil, fmt.Errorf("failed to scrape videos: %w", err)
	}

	// Tier sets are resolved once per creator across the batch
	tiersByCreator := make(map[uuid.UUID][]*models.PaymentTier)

	updated := 0
	failed := 0

	for videoID, metrics := range results {
		video, ok := videosByID[videoID]
		if !ok {
			continue
		}

		if err := s.videoRepo.UpdateVideoMetrics(videoID, metrics.Views, metrics.Likes, metrics.Comments); err != nil {
			s.logger.WithError(err).WithField("video_id", videoID).Error("Failed to update video metrics")
			failed++
			continue
		}

		video.Views = metrics.Views
		if err := s.refreshReachedFlags(video, tiersByCreator); err != nil {
			s.logger.WithError(err).WithField("video_id", videoID).Error("Failed to refresh tier reached flags")
			failed++
			continue
		}

		updated++
	}

	result := &response.MetricsRefreshResponse{
		Message:   "Views update completed",
		Processed: len(inputs),
		Updated:   updated,
		Failed:    failed,
		Timestamp: time.Now(),
	}

	s.logger.WithFields(map[string]interface{}{
		"processed": result.Processed,
		"updated":   result.Updated,
		"failed":    result.Failed,
	}).Info("Video metrics refresh completed")

	return result, nil
}

// refreshReachedFlags recomputes the reached flags of a video's tier payment
// rows after its view count changed
func (s *metricsService) refreshReachedFlags(video *models.Video, tiersByCreator map[uuid.UUID][]*models.PaymentTier) error {
	tiers, ok := tiersByCreator[video.CreatorID]
	if !ok {
		creator, err := s.creatorRepo.GetCreatorByID(video.CreatorID)
		if err != nil {
			return fmt.Errorf("failed to get creator: %w", err)
		}

		tiers, err = s.tierService.ApplicableTiers(creator)
		if err != nil {
			return err
		}
		tiersByCreator[video.CreatorID] = tiers
	}

	return s.tierService.RegenerateForVideo(video, tiers)
}
