package repository

import (
	"creatorpay-be-svc/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreatorRepository defines the interface for creator data operations
type CreatorRepository interface {
	GetCreatorByID(id uuid.UUID) (*models.Creator, error)
	ListCreatorsByCompany(companyID uuid.UUID) ([]*models.Creator, error)
	ListCreatorsByNiche(nicheID uuid.UUID) ([]*models.Creator, error)
	CreateCreator(creator *models.Creator) error
	UpdateCreator(creator *models.Creator) error
	DeleteCreatorCascade(id uuid.UUID) error
}

// creatorRepository implements CreatorRepository
type creatorRepository struct {
	db *gorm.DB
}

// NewCreatorRepository creates a new instance of CreatorRepository
func NewCreatorRepository(db *gorm.DB) CreatorRepository {
	return &creatorRepository{
		db: db,
	}
}

// GetCreatorByID retrieves a creator by ID
func (r *creatorRepository) GetCreatorByID(id uuid.UUID) (*models.Creator, error) {
	var creator models.Creator

	err := r.db.Where("id = ?", id).First(&creator).Error
	if err != nil {
		return nil, err
	}

	return &creator, nil
}

// ListCreatorsByCompany retrieves all creators for a company
func (r *creatorRepository) ListCreatorsByCompany(companyID uuid.UUID) ([]*models.Creator, error) {
	var creators []*models.Creator

	err := r.db.Where("company_id = ?", companyID).Order("name ASC").Find(&creators).Error
	if err != nil {
		return nil, err
	}

	return creators, nil
}

// ListCreatorsByNiche retrieves all creators assigned to a niche
func (r *creatorRepository) ListCreatorsByNiche(nicheID uuid.UUID) ([]*models.Creator, error) {
	var creators []*models.Creator

	err := r.db.Where("niche_id = ?", nicheID).Find(&creators).Error
	if err != nil {
		return nil, err
	}

	return creators, nil
}

// CreateCreator creates a new creator
func (r *creatorRepository) CreateCreator(creator *models.Creator) error {
	return r.db.Create(creator).Error
}

// UpdateCreator persists changes to a creator record
func (r *creatorRepository) UpdateCreator(creator *models.Creator) error {
	return r.db.Save(creator).Error
}

// DeleteCreatorCascade deletes a creator and, in order, the tier payment rows
// of the creator's videos, the videos themselves, and any creator-specific
// tier configs. Callers must not assume independent lifecycles for these
// records.
func (r *creatorRepository) DeleteCreatorCascade(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var videoIDs []uuid.UUID
		if err := tx.Model(&models.Video{}).
			Where("creator_id = ?", id).
			Pluck("id", &videoIDs).Error; err != nil {
			return err
		}

		if len(videoIDs) > 0 {
			if err := tx.Where("video_id IN ?", videoIDs).
				Delete(&models.VideoTierPayment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", videoIDs).
				Delete(&models.Video{}).Error; err != nil {
				return err
			}
		}

		// Creator-specific tiers have no other owner; drop them too
		if err := tx.Where("creator_id = ?", id).
			Delete(&models.PaymentTier{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", id).Delete(&models.Creator{}).Error
	})
}
