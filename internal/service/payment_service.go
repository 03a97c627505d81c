package service

import (
	"errors"
	"fmt"
	"time"

	"creatorpay-be-svc/internal/models"
	"creatorpay-be-svc/internal/models/response"
	"creatorpay-be-svc/internal/repository"
	"creatorpay-be-svc/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentService defines the interface for the payment freeze and
// reconciliation engine. Live amounts are always derived from current rates;
// frozen amounts are written exactly once per unpaid-to-paid transition and
// never recalculated until an explicit re-toggle.
type PaymentService interface {
	GetPaymentSummary(videoID uuid.UUID) (*response.VideoPaymentSummary, error)
	SetBaseCPMPaid(videoID uuid.UUID, paid bool) (*response.VideoPaymentSummary, error)
	SetTierPaid(tierPaymentID uuid.UUID, paid bool) (*models.VideoTierPayment, error)
}

// paymentService implements PaymentService
type paymentService struct {
	videoRepo       repository.VideoRepository
	tierPaymentRepo repository.TierPaymentRepository
	creatorRepo     repository.CreatorRepository
	nicheRepo       repository.NicheRepository
	companyRepo     repository.CompanyRepository
	logger          *logger.Logger
}

// NewPaymentService creates a new instance of PaymentService
func NewPaymentService(
	videoRepo repository.VideoRepository,
	tierPaymentRepo repository.TierPaymentRepository,
	creatorRepo repository.CreatorRepository,
	nicheRepo repository.NicheRepository,
	companyRepo repository.CompanyRepository,
	logger *logger.Logger,
) PaymentService {
	return &paymentService{
		videoRepo:       videoRepo,
		tierPaymentRepo: tierPaymentRepo,
		creatorRepo:     creatorRepo,
		nicheRepo:       nicheRepo,
		companyRepo:     companyRepo,
		logger:          logger,
	}
}

// GetPaymentSummary returns the live (recomputed) amounts for a video next to
// its frozen paid facts and per-tier statuses
func (s *paymentService) GetPaymentSummary(videoID uuid.UUID) (*response.VideoPaymentSummary, error) {
	video, err := s.videoRepo.GetVideoByID(videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to get video: %w", err)
	}

	breakdown, rates, err := s.liveBreakdown(video)
	if err != nil {
		return nil, err
	}

	tierRows, err := s.tierPaymentRepo.ListTierPaymentsByVideo(videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tier payments: %w", err)
	}

	summary := &response.VideoPaymentSummary{
		VideoID:                video.ID,
		Views:                  video.Views,
		ResolvedBasePay:        rates.BasePay,
		ResolvedCPM:            rates.CPM,
		ThousandViewIncrements: breakdown.ThousandViewIncrements,
		LiveBasePay:            breakdown.BasePay,
		LiveCPMPayment:         breakdown.CPMPayment,
		LiveBaseCPMTotal:       breakdown.BasePay.Add(breakdown.CPMPayment),
		BaseCPMPaid:            video.BaseCPMPaid,
		BaseCPMPaidAt:          video.BaseCPMPaidAt,
		FrozenBasePayment:      video.BasePaymentAmount,
		FrozenCPMPayment:       video.CPMPaymentAmount,
		Tiers:                  make([]response.TierPaymentStatus, 0, len(tierRows)),
	}

	// Total paid is built strictly from frozen facts
	totalPaid := decimal.Zero
	if video.BaseCPMPaid {
		if video.BasePaymentAmount == nil || video.CPMPaymentAmount == nil {
			return nil, fmt.Errorf("%w: video %s is marked paid without frozen amounts", ErrInconsistentPayment, video.ID)
		}
		totalPaid = totalPaid.Add(*video.BasePaymentAmount).Add(*video.CPMPaymentAmount)
	}

	tierPaidTotal := decimal.Zero
	reachedCount := 0
	for _, row := range tierRows {
		if row.Tier == nil {
			return nil, fmt.Errorf("%w: tier payment %s has no tier config", ErrInconsistentPayment, row.ID)
		}

		reached := TierReached(row.Tier, video.Views)
		if reached {
			reachedCount++
		}

		if row.Paid {
			if row.PaymentAmount == nil {
				return nil, fmt.Errorf("%w: tier payment %s is marked paid without a frozen amount", ErrInconsistentPayment, row.ID)
			}
			tierPaidTotal = tierPaidTotal.Add(*row.PaymentAmount)
		}

		summary.Tiers = append(summary.Tiers, response.TierPaymentStatus{
			ID:                 row.ID,
			TierID:             row.TierID,
			TierName:           row.Tier.TierName,
			ViewCountThreshold: row.Tier.ViewCountThreshold,
			TierAmount:         row.Tier.Amount,
			Reached:            reached,
			Paid:               row.Paid,
			PaidAt:             row.PaidAt,
			PaymentAmount:      row.PaymentAmount,
		})
	}

	summary.TiersReached = reachedCount
	summary.TierPaidTotal = tierPaidTotal
	summary.TotalPaid = totalPaid.Add(tierPaidTotal)

	return summary, nil
}

// SetBaseCPMPaid toggles the base+CPM paid state of a video. Marking paid
// computes the live amount at this instant and freezes it together with the
// flag and timestamp in one atomic write; unmarking clears all three. The
// write is guarded by the prior flag value so a concurrent toggle surfaces as
// ErrPaymentStateConflict instead of silently overwriting.
func (s *paymentService) SetBaseCPMPaid(videoID uuid.UUID, paid bool) (*response.VideoPaymentSummary, error) {
	video, err := s.videoRepo.GetVideoByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get video: %w", err)
	}

	if video.BaseCPMPaid == paid {
		// Already in the requested state; nothing to freeze or clear
		return s.GetPaymentSummary(videoID)
	}

	var paidAt *time.Time
	var baseAmount, cpmAmount *decimal.Decimal

	if paid {
		breakdown, _, err := s.liveBreakdown(video)
		if err != nil {
			return nil, err
		}

		now := time.Now()
		paidAt = &now
		baseAmount = &breakdown.BasePay
		cpmAmount = &breakdown.CPMPayment
	}

	rows, err := s.videoRepo.UpdateBaseCPMPaymentState(videoID, video.BaseCPMPaid, paid, paidAt, baseAmount, cpmAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to update payment state: %w", err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("%w: video %s", ErrPaymentStateConflict, videoID)
	}

	s.logger.WithFields(map[string]interface{}{
		"video_id": videoID,
		"paid":     paid,
	}).Info("Base+CPM payment state updated")

	return s.GetPaymentSummary(videoID)
}

// SetTierPaid toggles the paid state of a single tier payment row. Marking
// paid freezes the tier's configured bonus amount as of this instant; later
// changes to the tier's amount never move the frozen value.
func (s *paymentService) SetTierPaid(tierPaymentID uuid.UUID, paid bool) (*models.VideoTierPayment, error) {
	row, err := s.tierPaymentRepo.GetTierPaymentByID(tierPaymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tier payment: %w", err)
	}

	if row.Paid == paid {
		return row, nil
	}

	var paidAt *time.Time
	var amount *decimal.Decimal

	if paid {
		if row.Tier == nil {
			return nil, fmt.Errorf("%w: tier payment %s has no tier config", ErrInconsistentPayment, row.ID)
		}
		if row.Tier.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: tier amount must be >= 0", ErrInvalidInput)
		}

		now := time.Now()
		paidAt = &now
		frozen := row.Tier.Amount
		amount = &frozen
	}

	rows, err := s.tierPaymentRepo.UpdateTierPaymentState(tierPaymentID, row.Paid, paid, paidAt, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to update tier payment state: %w", err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("%w: tier payment %s", ErrPaymentStateConflict, tierPaymentID)
	}

	s.logger.WithFields(map[string]interface{}{
		"tier_payment_id": tierPaymentID,
		"paid":            paid,
	}).Info("Tier payment state updated")

	row.Paid = paid
	row.PaidAt = paidAt
	row.PaymentAmount = amount

	return row, nil
}

// liveBreakdown resolves the video's effective rates and computes the current
// base+CPM amounts. Rates are read once per call so a freeze uses a single
// consistent snapshot.
func (s *paymentService) liveBreakdown(video *models.Video) (*BaseCPMBreakdown, ResolvedRates, error) {
	creator, err := s.creatorRepo.GetCreatorByID(video.CreatorID)
	if err != nil {
		return nil, ResolvedRates{}, fmt.Errorf("failed to get creator: %w", err)
	}

	var niche *models.Niche
	if creator.NicheID != nil {
		niche, err = s.nicheRepo.GetNicheByID(*creator.NicheID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ResolvedRates{}, fmt.Errorf("failed to get niche: %w", err)
		}
	}

	company, err := s.companyRepo.GetCompanyByID(video.CompanyID)
	if err != nil {
		return nil, ResolvedRates{}, fmt.Errorf("failed to get company: %w", err)
	}

	rates := ResolveRates(creator, niche, company)

	breakdown, err := CalculateBaseCPM(video.Views, rates.BasePay, rates.CPM)
	if err != nil {
		return nil, ResolvedRates{}, err
	}

	return breakdown, rates, nil
}
