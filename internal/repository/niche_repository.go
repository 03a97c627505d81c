package repository

import (
	"creatorpay-be-svc/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NicheRepository defines the interface for niche data operations
type NicheRepository interface {
	GetNicheByID(id uuid.UUID) (*models.Niche, error)
	ListNichesByCompany(companyID uuid.UUID) ([]*models.Niche, error)
	CreateNiche(niche *models.Niche) error
	UpdateNiche(niche *models.Niche) error
	DeleteNiche(id uuid.UUID) error
}

// nicheRepository implements NicheRepository
type nicheRepository struct {
	db *gorm.DB
}

// NewNicheRepository creates a new instance of NicheRepository
func NewNicheRepository(db *gorm.DB) NicheRepository {
	return &nicheRepository{
		db: db,
	}
}

// GetNicheByID retrieves a niche by ID
func (r *nicheRepository) GetNicheByID(id uuid.UUID) (*models.Niche, error) {
	var niche models.Niche

	err := r.db.Where("id = ?", id).First(&niche).Error
	if err != nil {
		return nil, err
	}

	return &niche, nil
}

// ListNichesByCompany retrieves all niches for a company
func (r *nicheRepository) ListNichesByCompany(companyID uuid.UUID) ([]*models.Niche, error) {
	var niches []*models.Niche

	err := r.db.Where("company_id = ?", companyID).Order("name ASC").Find(&niches).Error
	if err != nil {
		return nil, err
	}

	return niches, nil
}

// CreateNiche creates a new niche
func (r *nicheRepository) CreateNiche(niche *models.Niche) error {
	return r.db.Create(niche).Error
}

// UpdateNiche persists changes to a niche record
func (r *nicheRepository) UpdateNiche(niche *models.Niche) error {
	return r.db.Save(niche).Error
}

// DeleteNiche deletes a niche. Creators keep their row with niche_id cleared;
// tiers scoped to the niche are removed along with their video rows.
func (r *nicheRepository) DeleteNiche(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Creator{}).
			Where("niche_id = ?", id).
			Update("niche_id", nil).Error; err != nil {
			return err
		}

		var tierIDs []uuid.UUID
		if err := tx.Model(&models.PaymentTier{}).
			Where("niche_id = ?", id).
			Pluck("id", &tierIDs).Error; err != nil {
			return err
		}

		if len(tierIDs) > 0 {
			if err := tx.Where("tier_id IN ?", tierIDs).
				Delete(&models.VideoTierPayment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", tierIDs).
				Delete(&models.PaymentTier{}).Error; err != nil {
				return err
			}
		}

		return tx.Where("id = ?", id).Delete(&models.Niche{}).Error
	})
}
