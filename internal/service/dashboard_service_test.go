package service

import (
	"testing"

	"creatorpay-be-svc/internal/models"
	"creatorpay-be-svc/internal/models/response"
	"creatorpay-be-svc/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDashboardRepo struct {
	rows []*response.PaymentExportRow
}

func (f *fakeDashboardRepo) GetPaymentExportRows(companyID uuid.UUID) ([]*response.PaymentExportRow, error) {
	return f.rows, nil
}

type dashboardFixture struct {
	companyRepo     *fakeCompanyRepo
	creatorRepo     *fakeCreatorRepo
	tierRepo        *fakeTierRepo
	tierPaymentRepo *fakeTierPaymentRepo
	videoRepo       *fakeVideoRepo
	svc             DashboardService
	payments        PaymentService

	company *models.Company
	creator *models.Creator
}

func newDashboardFixture(t *testing.T) *dashboardFixture {
	t.Helper()

	f := &dashboardFixture{
		companyRepo: newFakeCompanyRepo(),
		creatorRepo: newFakeCreatorRepo(),
		tierRepo:    newFakeTierRepo(),
		videoRepo:   newFakeVideoRepo(),
	}
	f.tierPaymentRepo = newFakeTierPaymentRepo(f.tierRepo)

	f.company = &models.Company{ID: uuid.New(), Name: "Acme", BasePay: decPtr("20"), DefaultCPM: decPtr("2")}
	f.companyRepo.companies[f.company.ID] = f.company

	f.creator = &models.Creator{CompanyID: f.company.ID, Name: "Hana"}
	require.NoError(t, f.creatorRepo.CreateCreator(f.creator))

	log := logger.NewLogger("error", "text")
	f.svc = NewDashboardService(f.creatorRepo, f.videoRepo, f.tierPaymentRepo, &fakeDashboardRepo{}, log)
	f.payments = NewPaymentService(f.videoRepo, f.tierPaymentRepo, f.creatorRepo, newFakeNicheRepo(), f.companyRepo, log)

	return f
}

func TestGetCreatorTotals_SumsOnlyFrozenFacts(t *testing.T) {
	f := newDashboardFixture(t)

	// Video paid at 5000 views: base 20 + cpm 10 frozen, plus a 5 tier bonus.
	video := &models.Video{CompanyID: f.company.ID, CreatorID: f.creator.ID, Title: "clip", Views: 5000}
	f.videoRepo.add(video)

	tier := f.tierRepo.add(&models.PaymentTier{
		CompanyID: f.company.ID, TierName: "1k", ViewCountThreshold: 1000, Amount: decimal.RequireFromString("5"),
	})
	row := f.tierPaymentRepo.add(&models.VideoTierPayment{VideoID: video.ID, TierID: tier.ID, Reached: true})

	_, err := f.payments.SetBaseCPMPaid(video.ID, true)
	require.NoError(t, err)
	_, err = f.payments.SetTierPaid(row.ID, true)
	require.NoError(t, err)

	// Rates and views move on after the freeze; live would now be far higher.
	f.company.BasePay = decPtr("50")
	f.company.DefaultCPM = decPtr("5")
	require.NoError(t, f.videoRepo.UpdateVideoViews(video.ID, 20000))

	totals, err := f.svc.GetCreatorTotals(f.creator.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, totals.VideoCount)
	assert.True(t, totals.BaseCPMPaidTotal.Equal(decimal.RequireFromString("30")))
	assert.True(t, totals.TierPaidTotal.Equal(decimal.RequireFromString("5")))
	assert.True(t, totals.TotalPaid.Equal(decimal.RequireFromString("35")),
		"totals report the frozen 35, not the recomputed live amount")
}

func TestGetCreatorTotals_UnpaidVideosContributeNothing(t *testing.T) {
	f := newDashboardFixture(t)

	video := &models.Video{CompanyID: f.company.ID, CreatorID: f.creator.ID, Title: "clip", Views: 500000}
	f.videoRepo.add(video)

	tier := f.tierRepo.add(&models.PaymentTier{
		CompanyID: f.company.ID, TierName: "1k", ViewCountThreshold: 1000, Amount: decimal.RequireFromString("5"),
	})
	f.tierPaymentRepo.add(&models.VideoTierPayment{VideoID: video.ID, TierID: tier.ID, Reached: true})

	totals, err := f.svc.GetCreatorTotals(f.creator.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, totals.VideoCount)
	assert.True(t, totals.TotalPaid.IsZero(), "reached but unpaid rows never count")
}

func TestGetCompanyTotals_RollsUpAcrossCreators(t *testing.T) {
	f := newDashboardFixture(t)

	second := &models.Creator{CompanyID: f.company.ID, Name: "Ivo"}
	require.NoError(t, f.creatorRepo.CreateCreator(second))

	videoA := &models.Video{CompanyID: f.company.ID, CreatorID: f.creator.ID, Title: "a", Views: 1000}
	f.videoRepo.add(videoA)
	videoB := &models.Video{CompanyID: f.company.ID, CreatorID: second.ID, Title: "b", Views: 3000}
	f.videoRepo.add(videoB)

	_, err := f.payments.SetBaseCPMPaid(videoA.ID, true) // 20 + 2
	require.NoError(t, err)
	_, err = f.payments.SetBaseCPMPaid(videoB.ID, true) // 20 + 6
	require.NoError(t, err)

	totals, err := f.svc.GetCompanyTotals(f.company.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, totals.CreatorCount)
	assert.Equal(t, 2, totals.VideoCount)
	assert.True(t, totals.BaseCPMPaidTotal.Equal(decimal.RequireFromString("48")))
	assert.True(t, totals.TotalPaid.Equal(decimal.RequireFromString("48")))
	require.Len(t, totals.Creators, 2)
}

func TestGetCreatorTotals_SurfacesInconsistentRows(t *testing.T) {
	f := newDashboardFixture(t)

	video := &models.Video{CompanyID: f.company.ID, CreatorID: f.creator.ID, Title: "clip", Views: 1000}
	f.videoRepo.add(video)
	f.videoRepo.videos[video.ID].BaseCPMPaid = true

	_, err := f.svc.GetCreatorTotals(f.creator.ID)
	assert.ErrorIs(t, err, ErrInconsistentPayment)
}
