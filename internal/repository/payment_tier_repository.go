package repository

import (
	"creatorpay-be-svc/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentTierRepository defines the interface for payment tier data operations
type PaymentTierRepository interface {
	GetTierByID(id uuid.UUID) (*models.PaymentTier, error)
	ListTiersByCreator(creatorID uuid.UUID) ([]*models.PaymentTier, error)
	ListTiersByNiche(nicheID uuid.UUID) ([]*models.PaymentTier, error)
	ListCompanyWideTiers(companyID uuid.UUID) ([]*models.PaymentTier, error)
	CreateTier(tier *models.PaymentTier) error
	UpdateTier(tier *models.PaymentTier) error
	DeleteTierCascade(id uuid.UUID) error
}

// paymentTierRepository implements PaymentTierRepository
type paymentTierRepository struct {
	db *gorm.DB
}

// NewPaymentTierRepository creates a new instance of PaymentTierRepository
func NewPaymentTierRepository(db *gorm.DB) PaymentTierRepository {
	return &paymentTierRepository{
		db: db,
	}
}

// GetTierByID retrieves a payment tier by ID
func (r *paymentTierRepository) GetTierByID(id uuid.UUID) (*models.PaymentTier, error) {
	var tier models.PaymentTier

	err := r.db.Where("id = ?", id).First(&tier).Error
	if err != nil {
		return nil, err
	}

	return &tier, nil
}

// ListTiersByCreator retrieves all creator-specific tiers for a creator
func (r *paymentTierRepository) ListTiersByCreator(creatorID uuid.UUID) ([]*models.PaymentTier, error) {
	var tiers []*models.PaymentTier

	err := r.db.Where("creator_id = ?", creatorID).
		Order("view_count_threshold ASC").
		Find(&tiers).Error
	if err != nil {
		return nil, err
	}

	return tiers, nil
}

// ListTiersByNiche retrieves all niche-specific tiers for a niche
func (r *paymentTierRepository) ListTiersByNiche(nicheID uuid.UUID) ([]*models.PaymentTier, error) {
	var tiers []*models.PaymentTier

	err := r.db.Where("niche_id = ? AND creator_id IS NULL", nicheID).
		Order("view_count_threshold ASC").
		Find(&tiers).Error
	if err != nil {
		return nil, err
	}

	return tiers, nil
}

// ListCompanyWideTiers retrieves tiers with no niche or creator scope
func (r *paymentTierRepository) ListCompanyWideTiers(companyID uuid.UUID) ([]*models.PaymentTier, error) {
	var tiers []*models.PaymentTier

	err := r.db.Where("company_id = ? AND niche_id IS NULL AND creator_id IS NULL", companyID).
		Order("view_count_threshold ASC").
		Find(&tiers).Error
	if err != nil {
		return nil, err
	}

	return tiers, nil
}

// CreateTier creates a new payment tier
func (r *paymentTierRepository) CreateTier(tier *models.PaymentTier) error {
	return r.db.Create(tier).Error
}

// UpdateTier persists changes to a payment tier record
func (r *paymentTierRepository) UpdateTier(tier *models.PaymentTier) error {
	return r.db.Save(tier).Error
}

// DeleteTierCascade deletes a tier and its video tier payment rows
func (r *paymentTierRepository) DeleteTierCascade(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tier_id = ?", id).
			Delete(&models.VideoTierPayment{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.PaymentTier{}).Error
	})
}
