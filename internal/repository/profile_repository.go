package repository

import (
	"creatorpay-be-svc/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileRepository defines the interface for profile data operations
type ProfileRepository interface {
	GetProfileByID(id uuid.UUID) (*models.Profile, error)
}

// profileRepository implements ProfileRepository
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new instance of ProfileRepository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// GetProfileByID retrieves a profile by ID
func (r *profileRepository) GetProfileByID(id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile

	err := r.db.Where("id = ?", id).First(&profile).Error
	if err != nil {
		return nil, err
	}

	return &profile, nil
}
