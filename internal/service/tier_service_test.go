package service

import (
	"testing"

	"creatorpay-be-svc/internal/models"
	"creatorpay-be-svc/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTierServiceFixture(t *testing.T, preservePaid bool) (*fakeTierRepo, *fakeTierPaymentRepo, *fakeCreatorRepo, *fakeVideoRepo, TierService) {
	t.Helper()

	tierRepo := newFakeTierRepo()
	tierPaymentRepo := newFakeTierPaymentRepo(tierRepo)
	creatorRepo := newFakeCreatorRepo()
	videoRepo := newFakeVideoRepo()
	log := logger.NewLogger("error", "text")

	svc := NewTierService(tierRepo, tierPaymentRepo, creatorRepo, videoRepo, preservePaid, log)
	return tierRepo, tierPaymentRepo, creatorRepo, videoRepo, svc
}

func TestApplicableTiers_ScopesAreExclusive(t *testing.T) {
	tierRepo, _, creatorRepo, _, svc := newTierServiceFixture(t, true)

	companyID := uuid.New()
	nicheID := uuid.New()

	creator := &models.Creator{CompanyID: companyID, NicheID: uuidPtr(nicheID), Name: "Ava"}
	require.NoError(t, creatorRepo.CreateCreator(creator))

	companyTier := tierRepo.add(&models.PaymentTier{
		CompanyID: companyID, TierName: "Company 10k", ViewCountThreshold: 10000, Amount: decimal.RequireFromString("25"),
	})
	nicheTier := tierRepo.add(&models.PaymentTier{
		CompanyID: companyID, NicheID: uuidPtr(nicheID), TierName: "Niche 5k", ViewCountThreshold: 5000, Amount: decimal.RequireFromString("15"),
	})

	// Niche tiers exist, so only the niche set applies; no merge with the
	// company set.
	tiers, err := svc.ApplicableTiers(creator)
	require.NoError(t, err)
	require.Len(t, tiers, 1)
	assert.Equal(t, nicheTier.ID, tiers[0].ID)

	// Creator-specific tiers take over entirely once one exists.
	creatorTier := tierRepo.add(&models.PaymentTier{
		CompanyID: companyID, CreatorID: uuidPtr(creator.ID), TierName: "Ava 1k", ViewCountThreshold: 1000, Amount: decimal.RequireFromString("5"),
	})

	tiers, err = svc.ApplicableTiers(creator)
	require.NoError(t, err)
	require.Len(t, tiers, 1)
	assert.Equal(t, creatorTier.ID, tiers[0].ID)

	// Without niche or creator tiers, the company-wide set applies.
	require.NoError(t, tierRepo.DeleteTierCascade(creatorTier.ID))
	require.NoError(t, tierRepo.DeleteTierCascade(nicheTier.ID))

	tiers, err = svc.ApplicableTiers(creator)
	require.NoError(t, err)
	require.Len(t, tiers, 1)
	assert.Equal(t, companyTier.ID, tiers[0].ID)
}

func TestApplicableTiers_NoNicheSkipsNicheScope(t *testing.T) {
	tierRepo, _, creatorRepo, _, svc := newTierServiceFixture(t, true)

	companyID := uuid.New()
	creator := &models.Creator{CompanyID: companyID, Name: "Ben"}
	require.NoError(t, creatorRepo.CreateCreator(creator))

	companyTier := tierRepo.add(&models.PaymentTier{
		CompanyID: companyID, TierName: "Company 10k", ViewCountThreshold: 10000, Amount: decimal.RequireFromString("25"),
	})

	tiers, err := svc.ApplicableTiers(creator)
	require.NoError(t, err)
	require.Len(t, tiers, 1)
	assert.Equal(t, companyTier.ID, tiers[0].ID)
}

func TestRegenerateForVideo_SeedsAndReconciles(t *testing.T) {
	tierRepo, tierPaymentRepo, creatorRepo, videoRepo, svc := newTierServiceFixture(t, true)

	companyID := uuid.New()
	creator := &models.Creator{CompanyID: companyID, Name: "Cara"}
	require.NoError(t, creatorRepo.CreateCreator(creator))

	tierA := tierRepo.add(&models.PaymentTier{
		CompanyID: companyID, TierName: "10k", ViewCountThreshold: 10000, Amount: decimal.RequireFromString("25"),
	})
	tierB := tierRepo.add(&models.PaymentTier{
		CompanyID: companyID, TierName: "50k", ViewCountThreshold: 50000, Amount: decimal.RequireFromString("100"),
	})

	video := &models.Video{CompanyID: companyID, CreatorID: creator.ID, Title: "first", Views: 12000}
	videoRepo.add(video)

	tiers, err := svc.ApplicableTiers(creator)
	require.NoError(t, err)
	require.NoError(t, svc.RegenerateForVideo(video, tiers))

	rows, err := tierPaymentRepo.ListTierPaymentsByVideo(video.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byTier := map[uuid.UUID]*models.VideoTierPayment{}
	for _, row := range rows {
		byTier[row.TierID] = row
		assert.False(t, row.Paid, "seeded rows are always unpaid")
	}
	assert.True(t, byTier[tierA.ID].Reached)
	assert.False(t, byTier[tierB.ID].Reached)

	// A second pass with the same tier set is a no-op.
	require.NoError(t, svc.RegenerateForVideo(video, tiers))
	rows, err = tierPaymentRepo.ListTierPaymentsByVideo(video.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestRegenerateForVideo_PreservesPaidHistory(t *testing.T) {
	tierRepo, tierPaymentRepo, creatorRepo, videoRepo, svc := newTierServiceFixture(t, true)

	companyID := uuid.New()
	creator := &models.Creator{CompanyID: companyID, Name: "Dee"}
	require.NoError(t, creatorRepo.CreateCreator(creator))

	oldTier := tierRepo.add(&models.PaymentTier{
		CompanyID: companyID, TierName: "old 5k", ViewCountThreshold: 5000, Amount: decimal.RequireFromString("10"),
	})
	staleUnpaidTier := tierRepo.add(&models.PaymentTier{
		CompanyID: companyID, TierName: "old 20k", ViewCountThreshold: 20000, Amount: decimal.RequireFromString("40"),
	})

	video := &models.Video{CompanyID: companyID, CreatorID: creator.ID, Title: "clip", Views: 6000}
	videoRepo.add(video)

	paidRow := &models.VideoTierPayment{
		VideoID: video.ID, TierID: oldTier.ID, Reached: true, Paid: true, PaymentAmount: decPtr("10"),
	}
	tierPaymentRepo.add(paidRow)
	unpaidRow := &models.VideoTierPayment{
		VideoID: video.ID, TierID: staleUnpaidTier.ID, Reached: false, Paid: false,
	}
	tierPaymentRepo.add(unpaidRow)

	// The creator moves to a creator-specific tier set that includes neither
	// old tier.
	newTier := tierRepo.add(&models.PaymentTier{
		CompanyID: companyID, CreatorID: uuidPtr(creator.ID), TierName: "new 1k", ViewCountThreshold: 1000, Amount: decimal.RequireFromString("5"),
	})

	tiers, err := svc.ApplicableTiers(creator)
	require.NoError(t, err)
	require.NoError(t, svc.RegenerateForVideo(video, tiers))

	rows, err := tierPaymentRepo.ListTierPaymentsByVideo(video.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byTier := map[uuid.UUID]*models.VideoTierPayment{}
	for _, row := range rows {
		byTier[row.TierID] = row
	}

	// The paid row survives with its frozen amount; the stale unpaid row is
	// gone; the new tier got a fresh unpaid row.
	require.Contains(t, byTier, oldTier.ID)
	assert.True(t, byTier[oldTier.ID].Paid)
	require.NotNil(t, byTier[oldTier.ID].PaymentAmount)
	assert.True(t, byTier[oldTier.ID].PaymentAmount.Equal(decimal.RequireFromString("10")))

	assert.NotContains(t, byTier, staleUnpaidTier.ID)

	require.Contains(t, byTier, newTier.ID)
	assert.False(t, byTier[newTier.ID].Paid)
	assert.True(t, byTier[newTier.ID].Reached)
}

func TestRegenerateForVideo_DropsPaidHistoryWhenDisabled(t *testing.T) {
	tierRepo, tierPaymentRepo, creatorRepo, videoRepo, svc := newTierServiceFixture(t, false)

	companyID := uuid.New()
	creator := &models.Creator{CompanyID: companyID, Name: "Eli"}
	require.NoError(t, creatorRepo.CreateCreator(creator))

	oldTier := tierRepo.add(&models.PaymentTier{
		CompanyID: companyID, TierName: "old", ViewCountThreshold: 5000, Amount: decimal.RequireFromString("10"),
	})
	video := &models.Video{CompanyID: companyID, CreatorID: creator.ID, Title: "clip", Views: 6000}
	videoRepo.add(video)

	tierPaymentRepo.add(&models.VideoTierPayment{
		VideoID: video.ID, TierID: oldTier.ID, Reached: true, Paid: true, PaymentAmount: decPtr("10"),
	})

	newTier := tierRepo.add(&models.PaymentTier{
		CompanyID: companyID, CreatorID: uuidPtr(creator.ID), TierName: "new", ViewCountThreshold: 1000, Amount: decimal.RequireFromString("5"),
	})

	tiers, err := svc.ApplicableTiers(creator)
	require.NoError(t, err)
	require.NoError(t, svc.RegenerateForVideo(video, tiers))

	rows, err := tierPaymentRepo.ListTierPaymentsByVideo(video.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, newTier.ID, rows[0].TierID)
}

func TestRegenerateForVideo_RefreshesReachedFlag(t *testing.T) {
	tierRepo, tierPaymentRepo, creatorRepo, videoRepo, svc := newTierServiceFixture(t, true)

	companyID := uuid.New()
	creator := &models.Creator{CompanyID: companyID, Name: "Fay"}
	require.NoError(t, creatorRepo.CreateCreator(creator))

	tier := tierRepo.add(&models.PaymentTier{
		CompanyID: companyID, TierName: "10k", ViewCountThreshold: 10000, Amount: decimal.RequireFromString("25"),
	})
	video := &models.Video{CompanyID: companyID, CreatorID: creator.ID, Title: "clip", Views: 2000}
	videoRepo.add(video)

	tiers, err := svc.ApplicableTiers(creator)
	require.NoError(t, err)
	require.NoError(t, svc.RegenerateForVideo(video, tiers))

	rows, _ := tierPaymentRepo.ListTierPaymentsByVideo(video.ID)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].Reached)

	video.Views = 15000
	require.NoError(t, svc.RegenerateForVideo(video, tiers))

	rows, _ = tierPaymentRepo.ListTierPaymentsByVideo(video.ID)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Reached)
	assert.Equal(t, tier.ID, rows[0].TierID)
	assert.False(t, rows[0].Paid, "reached never implies paid")
}

func TestCreateTier_Validation(t *testing.T) {
	_, _, _, _, svc := newTierServiceFixture(t, true)

	err := svc.CreateTier(&models.PaymentTier{
		CompanyID: uuid.New(), TierName: "bad", ViewCountThreshold: -1, Amount: decimal.Zero,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = svc.CreateTier(&models.PaymentTier{
		CompanyID: uuid.New(), TierName: "bad", Amount: decimal.RequireFromString("-5"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = svc.CreateTier(&models.PaymentTier{
		CompanyID: uuid.New(), NicheID: uuidPtr(uuid.New()), CreatorID: uuidPtr(uuid.New()),
		TierName: "bad", Amount: decimal.Zero,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
