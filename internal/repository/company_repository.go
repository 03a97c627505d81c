package repository

import (
	"creatorpay-be-svc/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyRepository defines the interface for company data operations
type CompanyRepository interface {
	GetCompanyByID(id uuid.UUID) (*models.Company, error)
	UpdateCompany(company *models.Company) error
}

// companyRepository implements CompanyRepository
type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new instance of CompanyRepository
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{
		db: db,
	}
}

// GetCompanyByID retrieves a company by ID
func (r *companyRepository) GetCompanyByID(id uuid.UUID) (*models.Company, error) {
	var company models.Company

	err := r.db.Where("id = ?", id).First(&company).Error
	if err != nil {
		return nil, err
	}

	return &company, nil
}

// UpdateCompany persists changes to a company record
func (r *companyRepository) UpdateCompany(company *models.Company) error {
	return r.db.Save(company).Error
}
