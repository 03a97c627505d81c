package repository

import (
	"time"

	"creatorpay-be-svc/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// VideoRepository defines the interface for video data operations
type VideoRepository interface {
	GetVideoByID(id uuid.UUID) (*models.Video, error)
	ListVideosByCompany(companyID uuid.UUID, page, limit int) ([]*models.Video, int64, error)
	ListVideosByCreator(creatorID uuid.UUID) ([]*models.Video, error)
	ListRecentVideosWithURL(companyID *uuid.UUID, since time.Time, limit int) ([]*models.Video, error)
	CreateVideo(video *models.Video) error
	UpdateVideo(video *models.Video) error
	UpdateVideoStatus(id uuid.UUID, status string, approvedAt *time.Time) error
	UpdateVideoViews(id uuid.UUID, views int64) error
	UpdateVideoMetrics(id uuid.UUID, views, likes, comments int64) error
	UpdateBaseCPMPaymentState(id uuid.UUID, expectPaid bool, paid bool, paidAt *time.Time, baseAmount, cpmAmount *decimal.Decimal) (int64, error)
	DeleteVideoCascade(id uuid.UUID) error
}

// videoRepository implements VideoRepository
type videoRepository struct {
	db *gorm.DB
}

// NewVideoRepository creates a new instance of VideoRepository
func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{
		db: db,
	}
}

// GetVideoByID retrieves a video by ID
func (r *videoRepository) GetVideoByID(id uuid.UUID) (*models.Video, error) {
	var video models.Video

	err := r.db.Where("id = ?", id).First(&video).Error
	if err != nil {
		return nil, err
	}

	return &video, nil
}

// ListVideosByCompany retrieves videos for a company with pagination
func (r *videoRepository) ListVideosByCompany(companyID uuid.UUID, page, limit int) ([]*models.Video, int64, error) {
	var videos []*models.Video
	var total int64

	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	query := r.db.Model(&models.Video{}).Where("company_id = ?", companyID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("submitted_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&videos).Error
	if err != nil {
		return nil, 0, err
	}

	return videos, total, nil
}

// ListVideosByCreator retrieves all videos for a creator
func (r *videoRepository) ListVideosByCreator(creatorID uuid.UUID) ([]*models.Video, error) {
	var videos []*models.Video

	err := r.db.Where("creator_id = ?", creatorID).
		Order("submitted_at DESC").
		Find(&videos).Error
	if err != nil {
		return nil, err
	}

	return videos, nil
}

// ListRecentVideosWithURL retrieves videos created after the cutoff that have
// a video URL, oldest metrics first. Used by the metrics refresh job.
func (r *videoRepository) ListRecentVideosWithURL(companyID *uuid.UUID, since time.Time, limit int) ([]*models.Video, error) {
	var videos []*models.Video

	query := r.db.Where("video_url IS NOT NULL AND created_at >= ?", since)
	if companyID != nil {
		query = query.Where("company_id = ?", *companyID)
	}

	err := query.Order("updated_at ASC").Limit(limit).Find(&videos).Error
	if err != nil {
		return nil, err
	}

	return videos, nil
}

// CreateVideo creates a new video
func (r *videoRepository) CreateVideo(video *models.Video) error {
	return r.db.Create(video).Error
}

// UpdateVideo persists changes to a video record
func (r *videoRepository) UpdateVideo(video *models.Video) error {
	return r.db.Save(video).Error
}

// UpdateVideoStatus updates a video's approval status
func (r *videoRepository) UpdateVideoStatus(id uuid.UUID, status string, approvedAt *time.Time) error {
	return r.db.Model(&models.Video{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      status,
			"approved_at": approvedAt,
		}).Error
}

// UpdateVideoViews updates only the view count of a video
func (r *videoRepository) UpdateVideoViews(id uuid.UUID, views int64) error {
	return r.db.Model(&models.Video{}).
		Where("id = ?", id).
		Update("views", views).Error
}

// UpdateVideoMetrics updates the scraped engagement counters of a video
func (r *videoRepository) UpdateVideoMetrics(id uuid.UUID, views, likes, comments int64) error {
	return r.db.Model(&models.Video{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"views":    views,
			"likes":    likes,
			"comments": comments,
		}).Error
}

// UpdateBaseCPMPaymentState writes the base+CPM paid flag, timestamp and
// frozen amounts in a single conditional UPDATE. The expectPaid guard makes
// concurrent toggles on the same video detectable: when the row's current
// flag no longer matches, zero rows are affected and nothing changes.
func (r *videoRepository) UpdateBaseCPMPaymentState(id uuid.UUID, expectPaid bool, paid bool, paidAt *time.Time, baseAmount, cpmAmount *decimal.Decimal) (int64, error) {
	result := r.db.Model(&models.Video{}).
		Where("id = ? AND base_cpm_paid = ?", id, expectPaid).
		Updates(map[string]interface{}{
			"base_cpm_paid":       paid,
			"base_cpm_paid_at":    paidAt,
			"base_payment_amount": baseAmount,
			"cpm_payment_amount":  cpmAmount,
		})

	return result.RowsAffected, result.Error
}

// DeleteVideoCascade deletes a video and its tier payment rows
func (r *videoRepository) DeleteVideoCascade(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("video_id = ?", id).
			Delete(&models.VideoTierPayment{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Video{}).Error
	})
}
