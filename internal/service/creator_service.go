package service

import (
	"fmt"

	"creatorpay-be-svc/internal/models"
	"creatorpay-be-svc/internal/repository"
	"creatorpay-be-svc/pkg/logger"

	"github.com/google/uuid"
)

// CreatorService defines the interface for creator business operations
type CreatorService interface {
	GetCreator(id uuid.UUID) (*models.Creator, error)
	ListCreators(companyID uuid.UUID) ([]*models.Creator, error)
	CreateCreator(creator *models.Creator) error
	UpdateCreator(creator *models.Creator) error
	DeleteCreator(id uuid.UUID) error
}

// creatorService implements CreatorService
type creatorService struct {
	creatorRepo repository.CreatorRepository
	tierService TierService
	logger      *logger.Logger
}

// NewCreatorService creates a new instance of CreatorService
func NewCreatorService(creatorRepo repository.CreatorRepository, tierService TierService, logger *logger.Logger) CreatorService {
	return &creatorService{
		creatorRepo: creatorRepo,
		tierService: tierService,
		logger:      logger,
	}
}

// GetCreator retrieves a creator by ID
func (s *creatorService) GetCreator(id uuid.UUID) (*models.Creator, error) {
	return s.creatorRepo.GetCreatorByID(id)
}

// ListCreators retrieves all creators for a company
func (s *creatorService) ListCreators(companyID uuid.UUID) ([]*models.Creator, error) {
	return s.creatorRepo.ListCreatorsByCompany(companyID)
}

// CreateCreator validates and creates a new creator
func (s *creatorService) CreateCreator(creator *models.Creator) error {
	if creator.BasePay != nil && creator.BasePay.IsNegative() {
		return fmt.Errorf("%w: base pay must be >= 0", ErrInvalidInput)
	}
	if creator.CPM != nil && creator.CPM.IsNegative() {
		return fmt.Errorf("%w: cpm must be >= 0", ErrInvalidInput)
	}

	return s.creatorRepo.CreateCreator(creator)
}

// UpdateCreator persists a creator and, when the niche assignment changed,
// regenerates the creator's tier payment rows so the new scope's tier set
// takes effect. Rate changes never touch frozen payment amounts.
func (s *creatorService) UpdateCreator(creator *models.Creator) error {
	if creator.BasePay != nil && creator.BasePay.IsNegative() {
		return fmt.Errorf("%w: base pay must be >= 0", ErrInvalidInput)
	}
	if creator.CPM != nil && creator.CPM.IsNegative() {
		return fmt.Errorf("%w: cpm must be >= 0", ErrInvalidInput)
	}

	existing, err := s.creatorRepo.GetCreatorByID(creator.ID)
	if err != nil {
		return fmt.Errorf("failed to get creator: %w", err)
	}

	nicheChanged := !uuidPtrEqual(existing.NicheID, creator.NicheID)

	if err := s.creatorRepo.UpdateCreator(creator); err != nil {
		return fmt.Errorf("failed to update creator: %w", err)
	}

	if nicheChanged {
		if err := s.tierService.RegenerateForCreator(creator.ID); err != nil {
			return err
		}
		s.logger.WithField("creator_id", creator.ID).Info("Creator niche changed, tier payments regenerated")
	}

	return nil
}

// DeleteCreator deletes a creator together with their videos and tier
// payment rows
func (s *creatorService) DeleteCreator(id uuid.UUID) error {
	if err := s.creatorRepo.DeleteCreatorCascade(id); err != nil {
		return fmt.Errorf("failed to delete creator: %w", err)
	}

	s.logger.WithField("creator_id", id).Info("Creator deleted with videos and tier payments")
	return nil
}

// uuidPtrEqual compares two optional UUIDs
func uuidPtrEqual(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
