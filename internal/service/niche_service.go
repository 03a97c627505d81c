package service

import (
	"fmt"

	"creatorpay-be-svc/internal/models"
	"creatorpay-be-svc/internal/repository"
	"creatorpay-be-svc/pkg/logger"

	"github.com/google/uuid"
)

// NicheService defines the interface for niche business operations
type NicheService interface {
	GetNiche(id uuid.UUID) (*models.Niche, error)
	ListNiches(companyID uuid.UUID) ([]*models.Niche, error)
	CreateNiche(niche *models.Niche) error
	UpdateNiche(niche *models.Niche) error
	DeleteNiche(id uuid.UUID) error
}

// nicheService implements NicheService
type nicheService struct {
	nicheRepo   repository.NicheRepository
	creatorRepo repository.CreatorRepository
	tierService TierService
	logger      *logger.Logger
}

// NewNicheService creates a new instance of NicheService
func NewNicheService(
	nicheRepo repository.NicheRepository,
	creatorRepo repository.CreatorRepository,
	tierService TierService,
	logger *logger.Logger,
) NicheService {
	return &nicheService{
		nicheRepo:   nicheRepo,
		creatorRepo: creatorRepo,
		tierService: tierService,
		logger:      logger,
	}
}

// GetNiche retrieves a niche by ID
func (s *nicheService) GetNiche(id uuid.UUID) (*models.Niche, error) {
	return s.nicheRepo.GetNicheByID(id)
}

// ListNiches retrieves all niches for a company
func (s *nicheService) ListNiches(companyID uuid.UUID) ([]*models.Niche, error) {
	return s.nicheRepo.ListNichesByCompany(companyID)
}

// CreateNiche validates and creates a new niche
func (s *nicheService) CreateNiche(niche *models.Niche) error {
	if err := validateNicheRates(niche); err != nil {
		return err
	}
	return s.nicheRepo.CreateNiche(niche)
}

// UpdateNiche persists changes to a niche. Rate changes affect only live
// amounts; frozen payment records stay as written.
func (s *nicheService) UpdateNiche(niche *models.Niche) error {
	if err := validateNicheRates(niche); err != nil {
		return err
	}
	return s.nicheRepo.UpdateNiche(niche)
}

// DeleteNiche removes a niche, clears it from its creators, drops its tiers,
// and regenerates the affected creators so a broader tier scope can apply
func (s *nicheService) DeleteNiche(id uuid.UUID) error {
	creators, err := s.creatorRepo.ListCreatorsByNiche(id)
	if err != nil {
		return fmt.Errorf("failed to list niche creators: %w", err)
	}

	if err := s.nicheRepo.DeleteNiche(id); err != nil {
		return fmt.Errorf("failed to delete niche: %w", err)
	}

	for _, creator := range creators {
		if err := s.tierService.RegenerateForCreator(creator.ID); err != nil {
			return err
		}
	}

	s.logger.WithFields(map[string]interface{}{
		"niche_id": id,
		"creators": len(creators),
	}).Info("Niche deleted, affected creators regenerated")

	return nil
}

func validateNicheRates(niche *models.Niche) error {
	if niche.BasePay != nil && niche.BasePay.IsNegative() {
		return fmt.Errorf("%w: base pay must be >= 0", ErrInvalidInput)
	}
	if niche.CPM != nil && niche.CPM.IsNegative() {
		return fmt.Errorf("%w: cpm must be >= 0", ErrInvalidInput)
	}
	return nil
}
