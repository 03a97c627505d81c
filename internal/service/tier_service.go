package service

import (
	"fmt"
	"time"

	"creatorpay-be-svc/internal/models"
	"creatorpay-be-svc/internal/repository"
	"creatorpay-be-svc/pkg/logger"

	"github.com/google/uuid"
)

// TierService defines the interface for payment tier business operations.
// Tier scopes are exclusive, never merged: a creator with creator-specific
// tiers sees only those; otherwise the niche set applies (when the creator
// has a niche with tiers); otherwise the company-wide set.
type TierService interface {
	ApplicableTiers(creator *models.Creator) ([]*models.PaymentTier, error)
	ListTiersForScope(companyID uuid.UUID, nicheID, creatorID *uuid.UUID) ([]*models.PaymentTier, error)
	GetTier(id uuid.UUID) (*models.PaymentTier, error)
	CreateTier(tier *models.PaymentTier) error
	UpdateTier(tier *models.PaymentTier) error
	DeleteTier(id uuid.UUID) error
	RegenerateForCreator(creatorID uuid.UUID) error
	RegenerateForVideo(video *models.Video, tiers []*models.PaymentTier) error
}

// tierService implements TierService
type tierService struct {
	tierRepo        repository.PaymentTierRepository
	tierPaymentRepo repository.TierPaymentRepository
	creatorRepo     repository.CreatorRepository
	videoRepo       repository.VideoRepository
	preservePaid    bool
	logger          *logger.Logger
}

// NewTierService creates a new instance of TierService. preservePaidHistory
// controls whether already-paid tier payment rows survive a tier-set change.
func NewTierService(
	tierRepo repository.PaymentTierRepository,
	tierPaymentRepo repository.TierPaymentRepository,
	creatorRepo repository.CreatorRepository,
	videoRepo repository.VideoRepository,
	preservePaidHistory bool,
	logger *logger.Logger,
) TierService {
	return &tierService{
		tierRepo:        tierRepo,
		tierPaymentRepo: tierPaymentRepo,
		creatorRepo:     creatorRepo,
		videoRepo:       videoRepo,
		preservePaid:    preservePaidHistory,
		logger:          logger,
	}
}

// ApplicableTiers returns the tier set that applies to a creator's videos.
// Selection is at the set level: the most specific scope with at least one
// tier wins outright.
func (s *tierService) ApplicableTiers(creator *models.Creator) ([]*models.PaymentTier, error) {
	creatorTiers, err := s.tierRepo.ListTiersByCreator(creator.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list creator tiers: %w", err)
	}
	if len(creatorTiers) > 0 {
		return creatorTiers, nil
	}

	if creator.NicheID != nil {
		nicheTiers, err := s.tierRepo.ListTiersByNiche(*creator.NicheID)
		if err != nil {
			return nil, fmt.Errorf("failed to list niche tiers: %w", err)
		}
		if len(nicheTiers) > 0 {
			return nicheTiers, nil
		}
	}

	companyTiers, err := s.tierRepo.ListCompanyWideTiers(creator.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list company tiers: %w", err)
	}

	return companyTiers, nil
}

// ListTiersForScope lists the configured tiers at exactly one scope level
func (s *tierService) ListTiersForScope(companyID uuid.UUID, nicheID, creatorID *uuid.UUID) ([]*models.PaymentTier, error) {
	switch {
	case creatorID != nil:
		return s.tierRepo.ListTiersByCreator(*creatorID)
	case nicheID != nil:
		return s.tierRepo.ListTiersByNiche(*nicheID)
	default:
		return s.tierRepo.ListCompanyWideTiers(companyID)
	}
}

// GetTier retrieves a tier config by ID
func (s *tierService) GetTier(id uuid.UUID) (*models.PaymentTier, error) {
	return s.tierRepo.GetTierByID(id)
}

// CreateTier validates and creates a tier config, then regenerates tier
// payment rows for every creator the new tier's scope can affect
func (s *tierService) CreateTier(tier *models.PaymentTier) error {
	if err := validateTier(tier); err != nil {
		return err
	}

	if err := s.tierRepo.CreateTier(tier); err != nil {
		return fmt.Errorf("failed to create tier: %w", err)
	}

	return s.regenerateForScope(tier)
}

// UpdateTier validates and updates a tier config. Threshold changes alter
// which rows count as reached, so affected creators are regenerated; frozen
// amounts on already-paid rows are untouched by design.
func (s *tierService) UpdateTier(tier *models.PaymentTier) error {
	if err := validateTier(tier); err != nil {
		return err
	}

	if err := s.tierRepo.UpdateTier(tier); err != nil {
		return fmt.Errorf("failed to update tier: %w", err)
	}

	return s.regenerateForScope(tier)
}

// DeleteTier removes a tier config and its video rows, then regenerates the
// affected creators so a less specific scope can take over
func (s *tierService) DeleteTier(id uuid.UUID) error {
	tier, err := s.tierRepo.GetTierByID(id)
	if err != nil {
		return fmt.Errorf("failed to get tier: %w", err)
	}

	if err := s.tierRepo.DeleteTierCascade(id); err != nil {
		return fmt.Errorf("failed to delete tier: %w", err)
	}

	return s.regenerateForScope(tier)
}

// RegenerateForCreator recomputes the applicable tier set for a creator and
// reconciles every one of their videos' tier payment rows against it
func (s *tierService) RegenerateForCreator(creatorID uuid.UUID) error {
	creator, err := s.creatorRepo.GetCreatorByID(creatorID)
	if err != nil {
		return fmt.Errorf("failed to get creator: %w", err)
	}

	tiers, err := s.ApplicableTiers(creator)
	if err != nil {
		return err
	}

	videos, err := s.videoRepo.ListVideosByCreator(creatorID)
	if err != nil {
		return fmt.Errorf("failed to list videos: %w", err)
	}

	for _, video := range videos {
		if err := s.RegenerateForVideo(video, tiers); err != nil {
			return err
		}
	}

	s.logger.WithFields(map[string]interface{}{
		"creator_id": creatorID,
		"tiers":      len(tiers),
		"videos":     len(videos),
	}).Info("Tier payments regenerated for creator")

	return nil
}

// RegenerateForVideo diffs a video's existing tier payment rows against the
// applicable tier set: rows for newly applicable tiers are inserted unpaid,
// rows for no-longer-applicable tiers are removed (paid rows survive when the
// preserve-paid-history setting is on), and the reached flag of kept rows is
// refreshed from the current view count.
func (s *tierService) RegenerateForVideo(video *models.Video, tiers []*models.PaymentTier) error {
	existing, err := s.tierPaymentRepo.ListTierPaymentsByVideo(video.ID)
	if err != nil {
		return fmt.Errorf("failed to list tier payments: %w", err)
	}

	applicable := make(map[uuid.UUID]*models.PaymentTier, len(tiers))
	for _, tier := range tiers {
		applicable[tier.ID] = tier
	}

	now := time.Now()
	var toInsert []*models.VideoTierPayment
	var deleteIDs []uuid.UUID
	covered := make(map[uuid.UUID]bool, len(existing))

	for _, row := range existing {
		tier, stillApplicable := applicable[row.TierID]
		if !stillApplicable {
			if row.Paid && s.preservePaid {
				continue
			}
			deleteIDs = append(deleteIDs, row.ID)
			continue
		}

		covered[row.TierID] = true

		reached := TierReached(tier, video.Views)
		if reached != row.Reached {
			if err := s.tierPaymentRepo.UpdateReached(row.ID, reached); err != nil {
				return fmt.Errorf("failed to update reached flag: %w", err)
			}
		}
	}

	for _, tier := range tiers {
		if covered[tier.ID] {
			continue
		}
		toInsert = append(toInsert, &models.VideoTierPayment{
			VideoID:   video.ID,
			TierID:    tier.ID,
			Reached:   TierReached(tier, video.Views),
			Paid:      false,
			CreatedAt: &now,
			UpdatedAt: &now,
		})
	}

	if len(toInsert) == 0 && len(deleteIDs) == 0 {
		return nil
	}

	if err := s.tierPaymentRepo.ReplaceTierPaymentsForVideo(video.ID, toInsert, deleteIDs); err != nil {
		return fmt.Errorf("failed to replace tier payments: %w", err)
	}

	return nil
}

// regenerateForScope fans regeneration out to every creator a tier's scope
// can affect. Creators outside the tier's effective scope see a no-op diff.
func (s *tierService) regenerateForScope(tier *models.PaymentTier) error {
	var creators []*models.Creator
	var err error

	switch {
	case tier.CreatorID != nil:
		var creator *models.Creator
		creator, err = s.creatorRepo.GetCreatorByID(*tier.CreatorID)
		if err == nil {
			creators = append(creators, creator)
		}
	case tier.NicheID != nil:
		creators, err = s.creatorRepo.ListCreatorsByNiche(*tier.NicheID)
	default:
		creators, err = s.creatorRepo.ListCreatorsByCompany(tier.CompanyID)
	}
	if err != nil {
		return fmt.Errorf("failed to resolve affected creators: %w", err)
	}

	for _, creator := range creators {
		if err := s.RegenerateForCreator(creator.ID); err != nil {
			return err
		}
	}

	return nil
}

// validateTier checks tier invariants before any write
func validateTier(tier *models.PaymentTier) error {
	if tier.ViewCountThreshold < 0 {
		return fmt.Errorf("%w: view count threshold must be >= 0", ErrInvalidInput)
	}
	if tier.Amount.IsNegative() {
		return fmt.Errorf("%w: tier amount must be >= 0", ErrInvalidInput)
	}
	if tier.NicheID != nil && tier.CreatorID != nil {
		return fmt.Errorf("%w: tier may target a niche or a creator, not both", ErrInvalidInput)
	}
	return nil
}
