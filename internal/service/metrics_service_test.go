package service

import (
	"context"
	"testing"
	"time"

	"creatorpay-be-svc/internal/models"
	"creatorpay-be-svc/internal/scraper"
	"creatorpay-be-svc/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScraperClient struct {
	results map[uuid.UUID]scraper.VideoMetrics
	inputs  []scraper.VideoInput
}

func (f *fakeScraperClient) ScrapeVideos(ctx context.Context, videos []scraper.VideoInput) (map[uuid.UUID]scraper.VideoMetrics, error) {
	f.inputs = videos
	return f.results, nil
}

func TestRefreshVideoMetrics_UpdatesCountsAndReachedFlags(t *testing.T) {
	tierRepo := newFakeTierRepo()
	tierPaymentRepo := newFakeTierPaymentRepo(tierRepo)
	creatorRepo := newFakeCreatorRepo()
	videoRepo := newFakeVideoRepo()
	log := logger.NewLogger("error", "text")

	tierSvc := NewTierService(tierRepo, tierPaymentRepo, creatorRepo, videoRepo, true, log)

	companyID := uuid.New()
	creator := &models.Creator{CompanyID: companyID, Name: "Jo"}
	require.NoError(t, creatorRepo.CreateCreator(creator))

	tier := tierRepo.add(&models.PaymentTier{
		CompanyID: companyID, TierName: "10k", ViewCountThreshold: 10000, Amount: decimal.RequireFromString("25"),
	})

	now := time.Now()
	url := "https://www.tiktok.com/@jo/video/1"
	video := &models.Video{
		CompanyID: companyID, CreatorID: creator.ID, Title: "clip",
		VideoURL: &url, Views: 2000, CreatedAt: &now,
	}
	videoRepo.add(video)
	tierPaymentRepo.add(&models.VideoTierPayment{VideoID: video.ID, TierID: tier.ID, Reached: false})

	client := &fakeScraperClient{
		results: map[uuid.UUID]scraper.VideoMetrics{
			video.ID: {Platform: scraper.PlatformTikTok, Views: 15000, Likes: 300, Comments: 40},
		},
	}

	svc := NewMetricsService(videoRepo, creatorRepo, tierSvc, client, 14, 100, log)

	result, err := svc.RefreshVideoMetrics(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 0, result.Failed)

	stored, err := videoRepo.GetVideoByID(video.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(15000), stored.Views)
	assert.Equal(t, int64(300), stored.Likes)
	assert.Equal(t, int64(40), stored.Comments)

	rows, err := tierPaymentRepo.ListTierPaymentsByVideo(video.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Reached, "crossing the threshold flips reached")
	assert.False(t, rows[0].Paid, "refresh never pays anything")
}

func TestRefreshVideoMetrics_SkipsOldAndURLLessVideos(t *testing.T) {
	tierRepo := newFakeTierRepo()
	tierPaymentRepo := newFakeTierPaymentRepo(tierRepo)
	creatorRepo := newFakeCreatorRepo()
	videoRepo := newFakeVideoRepo()
	log := logger.NewLogger("error", "text")

	tierSvc := NewTierService(tierRepo, tierPaymentRepo, creatorRepo, videoRepo, true, log)

	companyID := uuid.New()
	creator := &models.Creator{CompanyID: companyID, Name: "Kim"}
	require.NoError(t, creatorRepo.CreateCreator(creator))

	old := time.Now().AddDate(0, 0, -30)
	url := "https://www.instagram.com/reel/abc"
	videoRepo.add(&models.Video{
		CompanyID: companyID, CreatorID: creator.ID, Title: "stale",
		VideoURL: &url, CreatedAt: &old,
	})
	now := time.Now()
	videoRepo.add(&models.Video{
		CompanyID: companyID, CreatorID: creator.ID, Title: "no url", CreatedAt: &now,
	})

	client := &fakeScraperClient{results: map[uuid.UUID]scraper.VideoMetrics{}}
	svc := NewMetricsService(videoRepo, creatorRepo, tierSvc, client, 14, 100, log)

	result, err := svc.RefreshVideoMetrics(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Processed)
	assert.Empty(t, client.inputs)
}
