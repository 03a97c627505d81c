package service

import (
	"fmt"

	"creatorpay-be-svc/internal/models"
	"creatorpay-be-svc/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CompanyService defines the interface for company business operations
type CompanyService interface {
	GetCompany(id uuid.UUID) (*models.Company, error)
	UpdateRates(id uuid.UUID, basePay, defaultCPM *decimal.Decimal) (*models.Company, error)
}

// companyService implements CompanyService
type companyService struct {
	companyRepo repository.CompanyRepository
}

// NewCompanyService creates a new instance of CompanyService
func NewCompanyService(companyRepo repository.CompanyRepository) CompanyService {
	return &companyService{
		companyRepo: companyRepo,
	}
}

// GetCompany retrieves a company by ID
func (s *companyService) GetCompany(id uuid.UUID) (*models.Company, error) {
	return s.companyRepo.GetCompanyByID(id)
}

// UpdateRates sets the company-wide default base pay and CPM. These are the
// fallback rates when neither the creator nor their niche defines one; frozen
// payment amounts never move when defaults change.
func (s *companyService) UpdateRates(id uuid.UUID, basePay, defaultCPM *decimal.Decimal) (*models.Company, error) {
	if basePay != nil && basePay.IsNegative() {
		return nil, fmt.Errorf("%w: base pay must be >= 0", ErrInvalidInput)
	}
	if defaultCPM != nil && defaultCPM.IsNegative() {
		return nil, fmt.Errorf("%w: cpm must be >= 0", ErrInvalidInput)
	}

	company, err := s.companyRepo.GetCompanyByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	company.BasePay = basePay
	company.DefaultCPM = defaultCPM

	if err := s.companyRepo.UpdateCompany(company); err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	return company, nil
}
