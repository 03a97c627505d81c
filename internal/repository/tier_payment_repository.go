package repository

import (
	"time"

	"creatorpay-be-svc/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TierPaymentRepository defines the interface for video tier payment data operations
type TierPaymentRepository interface {
	GetTierPaymentByID(id uuid.UUID) (*models.VideoTierPayment, error)
	ListTierPaymentsByVideo(videoID uuid.UUID) ([]*models.VideoTierPayment, error)
	InsertTierPayments(rows []*models.VideoTierPayment) error
	ReplaceTierPaymentsForVideo(videoID uuid.UUID, toInsert []*models.VideoTierPayment, deleteIDs []uuid.UUID) error
	UpdateTierPaymentState(id uuid.UUID, expectPaid bool, paid bool, paidAt *time.Time, amount *decimal.Decimal) (int64, error)
	UpdateReached(id uuid.UUID, reached bool) error
}

// tierPaymentRepository implements TierPaymentRepository
type tierPaymentRepository struct {
	db *gorm.DB
}

// NewTierPaymentRepository creates a new instance of TierPaymentRepository
func NewTierPaymentRepository(db *gorm.DB) TierPaymentRepository {
	return &tierPaymentRepository{
		db: db,
	}
}

// GetTierPaymentByID retrieves a tier payment row with its tier config
func (r *tierPaymentRepository) GetTierPaymentByID(id uuid.UUID) (*models.VideoTierPayment, error) {
	var row models.VideoTierPayment

	err := r.db.Preload("Tier").Where("id = ?", id).First(&row).Error
	if err != nil {
		return nil, err
	}

	return &row, nil
}

// ListTierPaymentsByVideo retrieves all tier payment rows for a video with
// their tier configs, ordered by threshold
func (r *tierPaymentRepository) ListTierPaymentsByVideo(videoID uuid.UUID) ([]*models.VideoTierPayment, error) {
	var rows []*models.VideoTierPayment

	err := r.db.Preload("Tier").
		Joins("JOIN payment_tiers pt ON pt.id = video_tier_payments.tier_id").
		Where("video_tier_payments.video_id = ?", videoID).
		Order("pt.view_count_threshold ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// InsertTierPayments creates tier payment rows in batches
func (r *tierPaymentRepository) InsertTierPayments(rows []*models.VideoTierPayment) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.CreateInBatches(rows, 100).Error
}

// ReplaceTierPaymentsForVideo applies a regeneration diff for one video:
// removes the stale rows and inserts the new ones in a single transaction
func (r *tierPaymentRepository) ReplaceTierPaymentsForVideo(videoID uuid.UUID, toInsert []*models.VideoTierPayment, deleteIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(deleteIDs) > 0 {
			if err := tx.Where("video_id = ? AND id IN ?", videoID, deleteIDs).
				Delete(&models.VideoTierPayment{}).Error; err != nil {
				return err
			}
		}
		if len(toInsert) > 0 {
			if err := tx.CreateInBatches(toInsert, 100).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateTierPaymentState writes the paid flag, timestamp and frozen amount in
// a single conditional UPDATE guarded by the prior flag value, mirroring the
// video-level freeze write
func (r *tierPaymentRepository) UpdateTierPaymentState(id uuid.UUID, expectPaid bool, paid bool, paidAt *time.Time, amount *decimal.Decimal) (int64, error) {
	result := r.db.Model(&models.VideoTierPayment{}).
		Where("id = ? AND paid = ?", id, expectPaid).
		Updates(map[string]interface{}{
			"paid":           paid,
			"paid_at":        paidAt,
			"payment_amount": amount,
		})

	return result.RowsAffected, result.Error
}

// UpdateReached updates the informational reached flag
func (r *tierPaymentRepository) UpdateReached(id uuid.UUID, reached bool) error {
	return r.db.Model(&models.VideoTierPayment{}).
		Where("id = ?", id).
		Update("reached", reached).Error
}
