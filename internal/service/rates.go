package service

import (
	"fmt"

	"creatorpay-be-svc/internal/models"

	"github.com/shopspring/decimal"
)

// ResolvedRates holds the effective base pay and CPM for one creator
type ResolvedRates struct {
	BasePay decimal.Decimal `json:"base_pay"`
	CPM     decimal.Decimal `json:"cpm"`
}

// BaseCPMBreakdown is the live base+CPM computation for one video at a given
// view count. Nothing here is persisted; freezing happens only on an explicit
// paid transition.
type BaseCPMBreakdown struct {
	BasePay                decimal.Decimal `json:"base_pay"`
	CPMPayment             decimal.Decimal `json:"cpm_payment"`
	ThousandViewIncrements int64           `json:"thousand_view_increments"`
}

// ResolveRates resolves the effective base pay and CPM by first-non-null-wins
// precedence: creator, then niche, then company, else zero. Each rate resolves
// independently of the other. niche may be nil when the creator has none;
// missing configuration anywhere in the chain degrades to zero, never errors.
func ResolveRates(creator *models.Creator, niche *models.Niche, company *models.Company) ResolvedRates {
	var creatorBase, creatorCPM, nicheBase, nicheCPM, companyBase, companyCPM *decimal.Decimal

	if creator != nil {
		creatorBase = creator.BasePay
		creatorCPM = creator.CPM
	}
	if niche != nil {
		nicheBase = niche.BasePay
		nicheCPM = niche.CPM
	}
	if company != nil {
		companyBase = company.BasePay
		companyCPM = company.DefaultCPM
	}

	return ResolvedRates{
		BasePay: firstNonNil(creatorBase, nicheBase, companyBase),
		CPM:     firstNonNil(creatorCPM, nicheCPM, companyCPM),
	}
}

// CalculateBaseCPM computes the live base and CPM payment for a view count.
// CPM pays only in whole 1000-view increments: 1500 views yields exactly one
// increment, not one and a half. Base pay is a flat one-time amount per video
// and passes through unchanged. Negative inputs are rejected, not clamped.
func CalculateBaseCPM(views int64, basePay, cpm decimal.Decimal) (*BaseCPMBreakdown, error) {
	if views < 0 {
		return nil, fmt.Errorf("%w: views must be >= 0, got %d", ErrInvalidInput, views)
	}
	if basePay.IsNegative() {
		return nil, fmt.Errorf("%w: base pay must be >= 0, got %s", ErrInvalidInput, basePay)
	}
	if cpm.IsNegative() {
		return nil, fmt.Errorf("%w: cpm must be >= 0, got %s", ErrInvalidInput, cpm)
	}

	increments := views / 1000

	return &BaseCPMBreakdown{
		BasePay:                basePay,
		CPMPayment:             decimal.NewFromInt(increments).Mul(cpm),
		ThousandViewIncrements: increments,
	}, nil
}

// TierReached reports whether a video's current view count meets or exceeds
// the tier's threshold. Informational only; it never implies paid.
func TierReached(tier *models.PaymentTier, views int64) bool {
	return views >= tier.ViewCountThreshold
}

// firstNonNil returns the first non-nil value, or zero when all are nil
func firstNonNil(values ...*decimal.Decimal) decimal.Decimal {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return decimal.Zero
}
