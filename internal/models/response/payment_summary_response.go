package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TierPaymentStatus is the per-tier slice of a video payment summary
type TierPaymentStatus struct {
	ID                 uuid.UUID        `json:"id"`
	TierID             uuid.UUID        `json:"tier_id"`
	TierName           string           `json:"tier_name"`
	ViewCountThreshold int64            `json:"view_count_threshold"`
	TierAmount         decimal.Decimal  `json:"tier_amount"`
	Reached            bool             `json:"reached"`
	Paid               bool             `json:"paid"`
	PaidAt             *time.Time       `json:"paid_at"`
	PaymentAmount      *decimal.Decimal `json:"payment_amount"`
}

// VideoPaymentSummary combines the live (recomputed) amounts with the frozen
// paid facts for a single video. Live figures always reflect current rates;
// frozen figures never move until the next explicit paid transition.
type VideoPaymentSummary struct {
	VideoID                uuid.UUID           `json:"video_id"`
	Views                  int64               `json:"views"`
	ResolvedBasePay        decimal.Decimal     `json:"resolved_base_pay"`
	ResolvedCPM            decimal.Decimal     `json:"resolved_cpm"`
	ThousandViewIncrements int64               `json:"thousand_view_increments"`
	LiveBasePay            decimal.Decimal     `json:"live_base_pay"`
	LiveCPMPayment         decimal.Decimal     `json:"live_cpm_payment"`
	LiveBaseCPMTotal       decimal.Decimal     `json:"live_base_cpm_total"`
	BaseCPMPaid            bool                `json:"base_cpm_paid"`
	BaseCPMPaidAt          *time.Time          `json:"base_cpm_paid_at"`
	FrozenBasePayment      *decimal.Decimal    `json:"frozen_base_payment"`
	FrozenCPMPayment       *decimal.Decimal    `json:"frozen_cpm_payment"`
	TiersReached           int                 `json:"tiers_reached"`
	TierPaidTotal          decimal.Decimal     `json:"tier_paid_total"`
	TotalPaid              decimal.Decimal     `json:"total_paid"`
	Tiers                  []TierPaymentStatus `json:"tiers"`
}

// CreatorTotals is the frozen-amount rollup for one creator's videos
type CreatorTotals struct {
	CreatorID        uuid.UUID       `json:"creator_id"`
	CreatorName      string          `json:"creator_name"`
	VideoCount       int             `json:"video_count"`
	BaseCPMPaidTotal decimal.Decimal `json:"base_cpm_paid_total"`
	TierPaidTotal    decimal.Decimal `json:"tier_paid_total"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
}

// CompanyTotals is the frozen-amount rollup across an entire company
type CompanyTotals struct {
	CompanyID        uuid.UUID       `json:"company_id"`
	CreatorCount     int             `json:"creator_count"`
	VideoCount       int             `json:"video_count"`
	BaseCPMPaidTotal decimal.Decimal `json:"base_cpm_paid_total"`
	TierPaidTotal    decimal.Decimal `json:"tier_paid_total"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	Creators         []CreatorTotals `json:"creators"`
}

// PaymentExportRow is one row of the payments Excel export
type PaymentExportRow struct {
	CreatorName      string           `json:"creator_name"`
	VideoTitle       string           `json:"video_title"`
	Platform         string           `json:"platform"`
	Status           string           `json:"status"`
	Views            int64            `json:"views"`
	BaseCPMPaid      bool             `json:"base_cpm_paid"`
	BaseCPMPaidAt    *time.Time       `json:"base_cpm_paid_at"`
	BasePayment      *decimal.Decimal `json:"base_payment"`
	CPMPayment       *decimal.Decimal `json:"cpm_payment"`
	TierPaidTotal    decimal.Decimal  `json:"tier_paid_total"`
	TotalPaid        decimal.Decimal  `json:"total_paid"`
}
