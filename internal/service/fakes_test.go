package service

import (
	"sort"
	"time"

	"creatorpay-be-svc/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory repository fakes used across the service tests.

type fakeCompanyRepo struct {
	companies map[uuid.UUID]*models.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[uuid.UUID]*models.Company)}
}

func (f *fakeCompanyRepo) GetCompanyByID(id uuid.UUID) (*models.Company, error) {
	company, ok := f.companies[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *company
	return &copied, nil
}

func (f *fakeCompanyRepo) UpdateCompany(company *models.Company) error {
	copied := *company
	f.companies[company.ID] = &copied
	return nil
}

type fakeNicheRepo struct {
	niches map[uuid.UUID]*models.Niche
}

func newFakeNicheRepo() *fakeNicheRepo {
	return &fakeNicheRepo{niches: make(map[uuid.UUID]*models.Niche)}
}

func (f *fakeNicheRepo) GetNicheByID(id uuid.UUID) (*models.Niche, error) {
	niche, ok := f.niches[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *niche
	return &copied, nil
}

func (f *fakeNicheRepo) ListNichesByCompany(companyID uuid.UUID) ([]*models.Niche, error) {
	var out []*models.Niche
	for _, niche := range f.niches {
		if niche.CompanyID == companyID {
			copied := *niche
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeNicheRepo) CreateNiche(niche *models.Niche) error {
	if niche.ID == uuid.Nil {
		niche.ID = uuid.New()
	}
	copied := *niche
	f.niches[niche.ID] = &copied
	return nil
}

func (f *fakeNicheRepo) UpdateNiche(niche *models.Niche) error {
	copied := *niche
	f.niches[niche.ID] = &copied
	return nil
}

func (f *fakeNicheRepo) DeleteNiche(id uuid.UUID) error {
	delete(f.niches, id)
	return nil
}

type fakeCreatorRepo struct {
	creators map[uuid.UUID]*models.Creator
}

func newFakeCreatorRepo() *fakeCreatorRepo {
	return &fakeCreatorRepo{creators: make(map[uuid.UUID]*models.Creator)}
}

func (f *fakeCreatorRepo) GetCreatorByID(id uuid.UUID) (*models.Creator, error) {
	creator, ok := f.creators[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *creator
	return &copied, nil
}

func (f *fakeCreatorRepo) ListCreatorsByCompany(companyID uuid.UUID) ([]*models.Creator, error) {
	var out []*models.Creator
	for _, creator := range f.creators {
		if creator.CompanyID == companyID {
			copied := *creator
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeCreatorRepo) ListCreatorsByNiche(nicheID uuid.UUID) ([]*models.Creator, error) {
	var out []*models.Creator
	for _, creator := range f.creators {
		if creator.NicheID != nil && *creator.NicheID == nicheID {
			copied := *creator
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeCreatorRepo) CreateCreator(creator *models.Creator) error {
	if creator.ID == uuid.Nil {
		creator.ID = uuid.New()
	}
	copied := *creator
	f.creators[creator.ID] = &copied
	return nil
}

func (f *fakeCreatorRepo) UpdateCreator(creator *models.Creator) error {
	copied := *creator
	f.creators[creator.ID] = &copied
	return nil
}

func (f *fakeCreatorRepo) DeleteCreatorCascade(id uuid.UUID) error {
	delete(f.creators, id)
	return nil
}

type fakeTierRepo struct {
	tiers map[uuid.UUID]*models.PaymentTier
}

func newFakeTierRepo() *fakeTierRepo {
	return &fakeTierRepo{tiers: make(map[uuid.UUID]*models.PaymentTier)}
}

func (f *fakeTierRepo) add(tier *models.PaymentTier) *models.PaymentTier {
	if tier.ID == uuid.Nil {
		tier.ID = uuid.New()
	}
	copied := *tier
	f.tiers[tier.ID] = &copied
	return tier
}

func (f *fakeTierRepo) GetTierByID(id uuid.UUID) (*models.PaymentTier, error) {
	tier, ok := f.tiers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *tier
	return &copied, nil
}

func (f *fakeTierRepo) list(match func(*models.PaymentTier) bool) []*models.PaymentTier {
	var out []*models.PaymentTier
	for _, tier := range f.tiers {
		if match(tier) {
			copied := *tier
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ViewCountThreshold < out[j].ViewCountThreshold })
	return out
}

func (f *fakeTierRepo) ListTiersByCreator(creatorID uuid.UUID) ([]*models.PaymentTier, error) {
	return f.list(func(t *models.PaymentTier) bool {
		return t.CreatorID != nil && *t.CreatorID == creatorID
	}), nil
}

func (f *fakeTierRepo) ListTiersByNiche(nicheID uuid.UUID) ([]*models.PaymentTier, error) {
	return f.list(func(t *models.PaymentTier) bool {
		return t.NicheID != nil && *t.NicheID == nicheID && t.CreatorID == nil
	}), nil
}

func (f *fakeTierRepo) ListCompanyWideTiers(companyID uuid.UUID) ([]*models.PaymentTier, error) {
	return f.list(func(t *models.PaymentTier) bool {
		return t.CompanyID == companyID && t.NicheID == nil && t.CreatorID == nil
	}), nil
}

func (f *fakeTierRepo) CreateTier(tier *models.PaymentTier) error {
	f.add(tier)
	return nil
}

func (f *fakeTierRepo) UpdateTier(tier *models.PaymentTier) error {
	copied := *tier
	f.tiers[tier.ID] = &copied
	return nil
}

func (f *fakeTierRepo) DeleteTierCascade(id uuid.UUID) error {
	delete(f.tiers, id)
	return nil
}

type fakeVideoRepo struct {
	videos map[uuid.UUID]*models.Video

	// getOverride, when set, is returned by GetVideoByID instead of the
	// stored row. Used to simulate a stale read racing a concurrent toggle.
	getOverride *models.Video
}

func newFakeVideoRepo() *fakeVideoRepo {
	return &fakeVideoRepo{videos: make(map[uuid.UUID]*models.Video)}
}

func (f *fakeVideoRepo) add(video *models.Video) *models.Video {
	if video.ID == uuid.Nil {
		video.ID = uuid.New()
	}
	copied := *video
	f.videos[video.ID] = &copied
	return video
}

func (f *fakeVideoRepo) GetVideoByID(id uuid.UUID) (*models.Video, error) {
	if f.getOverride != nil {
		copied := *f.getOverride
		return &copied, nil
	}
	video, ok := f.videos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *video
	return &copied, nil
}

func (f *fakeVideoRepo) ListVideosByCompany(companyID uuid.UUID, page, limit int) ([]*models.Video, int64, error) {
	var out []*models.Video
	for _, video := range f.videos {
		if video.CompanyID == companyID {
			copied := *video
			out = append(out, &copied)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeVideoRepo) ListVideosByCreator(creatorID uuid.UUID) ([]*models.Video, error) {
	var out []*models.Video
	for _, video := range f.videos {
		if video.CreatorID == creatorID {
			copied := *video
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (f *fakeVideoRepo) ListRecentVideosWithURL(companyID *uuid.UUID, since time.Time, limit int) ([]*models.Video, error) {
	var out []*models.Video
	for _, video := range f.videos {
		if video.VideoURL == nil {
			continue
		}
		if companyID != nil && video.CompanyID != *companyID {
			continue
		}
		if video.CreatedAt != nil && video.CreatedAt.Before(since) {
			continue
		}
		copied := *video
		out = append(out, &copied)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeVideoRepo) CreateVideo(video *models.Video) error {
	f.add(video)
	return nil
}

func (f *fakeVideoRepo) UpdateVideo(video *models.Video) error {
	copied := *video
	f.videos[video.ID] = &copied
	return nil
}

func (f *fakeVideoRepo) UpdateVideoStatus(id uuid.UUID, status string, approvedAt *time.Time) error {
	video, ok := f.videos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	video.Status = status
	video.ApprovedAt = approvedAt
	return nil
}

func (f *fakeVideoRepo) UpdateVideoViews(id uuid.UUID, views int64) error {
	video, ok := f.videos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	video.Views = views
	return nil
}

func (f *fakeVideoRepo) UpdateVideoMetrics(id uuid.UUID, views, likes, comments int64) error {
	video, ok := f.videos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	video.Views = views
	video.Likes = likes
	video.Comments = comments
	return nil
}

func (f *fakeVideoRepo) UpdateBaseCPMPaymentState(id uuid.UUID, expectPaid, paid bool, paidAt *time.Time, baseAmount, cpmAmount *decimal.Decimal) (int64, error) {
	video, ok := f.videos[id]
	if !ok {
		return 0, nil
	}
	if video.BaseCPMPaid != expectPaid {
		return 0, nil
	}
	video.BaseCPMPaid = paid
	video.BaseCPMPaidAt = paidAt
	video.BasePaymentAmount = baseAmount
	video.CPMPaymentAmount = cpmAmount
	return 1, nil
}

func (f *fakeVideoRepo) DeleteVideoCascade(id uuid.UUID) error {
	delete(f.videos, id)
	return nil
}

type fakeTierPaymentRepo struct {
	rows  map[uuid.UUID]*models.VideoTierPayment
	tiers *fakeTierRepo
}

func newFakeTierPaymentRepo(tiers *fakeTierRepo) *fakeTierPaymentRepo {
	return &fakeTierPaymentRepo{
		rows:  make(map[uuid.UUID]*models.VideoTierPayment),
		tiers: tiers,
	}
}

func (f *fakeTierPaymentRepo) add(row *models.VideoTierPayment) *models.VideoTierPayment {
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	copied := *row
	copied.Tier = nil
	f.rows[row.ID] = &copied
	return row
}

func (f *fakeTierPaymentRepo) withTier(row models.VideoTierPayment) *models.VideoTierPayment {
	if tier, ok := f.tiers.tiers[row.TierID]; ok {
		copied := *tier
		row.Tier = &copied
	}
	return &row
}

func (f *fakeTierPaymentRepo) GetTierPaymentByID(id uuid.UUID) (*models.VideoTierPayment, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return f.withTier(*row), nil
}

func (f *fakeTierPaymentRepo) ListTierPaymentsByVideo(videoID uuid.UUID) ([]*models.VideoTierPayment, error) {
	var out []*models.VideoTierPayment
	for _, row := range f.rows {
		if row.VideoID == videoID {
			out = append(out, f.withTier(*row))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		var ti, tj int64
		if out[i].Tier != nil {
			ti = out[i].Tier.ViewCountThreshold
		}
		if out[j].Tier != nil {
			tj = out[j].Tier.ViewCountThreshold
		}
		return ti < tj
	})
	return out, nil
}

func (f *fakeTierPaymentRepo) InsertTierPayments(rows []*models.VideoTierPayment) error {
	for _, row := range rows {
		f.add(row)
	}
	return nil
}

func (f *fakeTierPaymentRepo) ReplaceTierPaymentsForVideo(videoID uuid.UUID, toInsert []*models.VideoTierPayment, deleteIDs []uuid.UUID) error {
	for _, id := range deleteIDs {
		delete(f.rows, id)
	}
	for _, row := range toInsert {
		f.add(row)
	}
	return nil
}

func (f *fakeTierPaymentRepo) UpdateTierPaymentState(id uuid.UUID, expectPaid, paid bool, paidAt *time.Time, amount *decimal.Decimal) (int64, error) {
	row, ok := f.rows[id]
	if !ok {
		return 0, nil
	}
	if row.Paid != expectPaid {
		return 0, nil
	}
	row.Paid = paid
	row.PaidAt = paidAt
	row.PaymentAmount = amount
	return 1, nil
}

func (f *fakeTierPaymentRepo) UpdateReached(id uuid.UUID, reached bool) error {
	row, ok := f.rows[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	row.Reached = reached
	return nil
}

func decPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func uuidPtr(id uuid.UUID) *uuid.UUID {
	return &id
}
