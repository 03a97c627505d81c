package service

import (
	"testing"

	"creatorpay-be-svc/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRates_Precedence(t *testing.T) {
	tests := []struct {
		name        string
		creator     *models.Creator
		niche       *models.Niche
		company     *models.Company
		wantBasePay string
		wantCPM     string
	}{
		{
			name:        "creator overrides everything",
			creator:     &models.Creator{BasePay: decPtr("50"), CPM: decPtr("4")},
			niche:       &models.Niche{BasePay: decPtr("20"), CPM: decPtr("5")},
			company:     &models.Company{BasePay: decPtr("10"), DefaultCPM: decPtr("2")},
			wantBasePay: "50",
			wantCPM:     "4",
		},
		{
			name:        "fields resolve independently",
			creator:     &models.Creator{CPM: decPtr("4")},
			niche:       &models.Niche{BasePay: decPtr("20")},
			company:     &models.Company{BasePay: decPtr("10"), DefaultCPM: decPtr("2")},
			wantBasePay: "20",
			wantCPM:     "4",
		},
		{
			name:        "niche cpm with company base",
			creator:     &models.Creator{},
			niche:       &models.Niche{CPM: decPtr("5")},
			company:     &models.Company{BasePay: decPtr("10"), DefaultCPM: decPtr("2")},
			wantBasePay: "10",
			wantCPM:     "5",
		},
		{
			name:        "company defaults when nothing overrides",
			creator:     &models.Creator{},
			niche:       &models.Niche{},
			company:     &models.Company{BasePay: decPtr("10"), DefaultCPM: decPtr("2")},
			wantBasePay: "10",
			wantCPM:     "2",
		},
		{
			name:        "no niche at all",
			creator:     &models.Creator{},
			niche:       nil,
			company:     &models.Company{BasePay: decPtr("10"), DefaultCPM: decPtr("2")},
			wantBasePay: "10",
			wantCPM:     "2",
		},
		{
			name:        "nothing configured resolves to zero",
			creator:     &models.Creator{},
			niche:       nil,
			company:     &models.Company{},
			wantBasePay: "0",
			wantCPM:     "0",
		},
		{
			name:        "explicit zero on creator beats company value",
			creator:     &models.Creator{CPM: decPtr("0")},
			niche:       nil,
			company:     &models.Company{DefaultCPM: decPtr("2")},
			wantBasePay: "0",
			wantCPM:     "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rates := ResolveRates(tt.creator, tt.niche, tt.company)
			assert.True(t, rates.BasePay.Equal(decimal.RequireFromString(tt.wantBasePay)),
				"base pay: want %s, got %s", tt.wantBasePay, rates.BasePay)
			assert.True(t, rates.CPM.Equal(decimal.RequireFromString(tt.wantCPM)),
				"cpm: want %s, got %s", tt.wantCPM, rates.CPM)
		})
	}
}

func TestCalculateBaseCPM_WholeIncrementsOnly(t *testing.T) {
	tests := []struct {
		name           string
		views          int64
		basePay        string
		cpm            string
		wantIncrements int64
		wantCPMPayment string
	}{
		{"below one increment", 999, "10", "3.00", 0, "0"},
		{"exactly one increment", 1000, "10", "3.00", 1, "3.00"},
		{"partial increment floors", 1500, "10", "3.00", 1, "3.00"},
		{"two and a half increments", 2500, "10", "2", 2, "4"},
		{"zero views", 0, "10", "3.00", 0, "0"},
		{"large count", 1234567, "0", "0.50", 1234, "617.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breakdown, err := CalculateBaseCPM(tt.views, decimal.RequireFromString(tt.basePay), decimal.RequireFromString(tt.cpm))
			require.NoError(t, err)
			assert.Equal(t, tt.wantIncrements, breakdown.ThousandViewIncrements)
			assert.True(t, breakdown.CPMPayment.Equal(decimal.RequireFromString(tt.wantCPMPayment)),
				"cpm payment: want %s, got %s", tt.wantCPMPayment, breakdown.CPMPayment)
			assert.True(t, breakdown.BasePay.Equal(decimal.RequireFromString(tt.basePay)))
		})
	}
}

func TestCalculateBaseCPM_CombinedResolution(t *testing.T) {
	// Company sets base 10 / cpm 2, niche overrides cpm to 5, video has 2500
	// views: base stays 10, cpm pays 2 whole increments at 5.
	creator := &models.Creator{}
	niche := &models.Niche{CPM: decPtr("5")}
	company := &models.Company{BasePay: decPtr("10"), DefaultCPM: decPtr("2")}

	rates := ResolveRates(creator, niche, company)
	breakdown, err := CalculateBaseCPM(2500, rates.BasePay, rates.CPM)
	require.NoError(t, err)

	assert.True(t, breakdown.BasePay.Equal(decimal.RequireFromString("10")))
	assert.True(t, breakdown.CPMPayment.Equal(decimal.RequireFromString("10")))
	assert.Equal(t, int64(2), breakdown.ThousandViewIncrements)
}

func TestCalculateBaseCPM_RejectsNegatives(t *testing.T) {
	_, err := CalculateBaseCPM(-1, decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = CalculateBaseCPM(1000, decimal.RequireFromString("-1"), decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = CalculateBaseCPM(1000, decimal.Zero, decimal.RequireFromString("-0.5"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTierReached(t *testing.T) {
	tier := &models.PaymentTier{ViewCountThreshold: 10000}

	assert.False(t, TierReached(tier, 9999))
	assert.True(t, TierReached(tier, 10000))
	assert.True(t, TierReached(tier, 10001))

	zeroTier := &models.PaymentTier{ViewCountThreshold: 0}
	assert.True(t, TierReached(zeroTier, 0))
}
