package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VideoTierPayment represents the video_tier_payments table: the per-video,
// per-tier paid/unpaid state. PaymentAmount is frozen when Paid flips to true.
// Reached is informational and never implies paid.
type VideoTierPayment struct {
	ID            uuid.UUID        `json:"id" gorm:"type:uuid;primarykey;default:gen_random_uuid()"`
	VideoID       uuid.UUID        `json:"video_id" gorm:"column:video_id;type:uuid;not null;index;constraint:OnDelete:CASCADE"`
	TierID        uuid.UUID        `json:"tier_id" gorm:"column:tier_id;type:uuid;not null;index;constraint:OnDelete:CASCADE"`
	Reached       bool             `json:"reached" gorm:"column:reached;default:false"`
	Paid          bool             `json:"paid" gorm:"column:paid;default:false"`
	PaidAt        *time.Time       `json:"paid_at" gorm:"column:paid_at"`
	PaymentAmount *decimal.Decimal `json:"payment_amount" gorm:"column:payment_amount;type:numeric(12,2)"`
	CreatedAt     *time.Time       `json:"created_at"`
	UpdatedAt     *time.Time       `json:"updated_at"`

	Tier *PaymentTier `json:"tier,omitempty" gorm:"foreignKey:TierID"`
}

// TableName sets the insert table name for VideoTierPayment
func (VideoTierPayment) TableName() string {
	return "video_tier_payments"
}
