package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentTier represents the payment_tiers table: a view-count milestone with
// a flat bonus amount. Exactly one of NicheID/CreatorID is set, or neither
// (company-wide).
type PaymentTier struct {
	ID                 uuid.UUID       `json:"id" gorm:"type:uuid;primarykey;default:gen_random_uuid()"`
	CompanyID          uuid.UUID       `json:"company_id" gorm:"column:company_id;type:uuid;not null;index"`
	NicheID            *uuid.UUID      `json:"niche_id" gorm:"column:niche_id;type:uuid;index"`
	CreatorID          *uuid.UUID      `json:"creator_id" gorm:"column:creator_id;type:uuid;index"`
	TierName           string          `json:"tier_name" gorm:"column:tier_name;not null"`
	ViewCountThreshold int64           `json:"view_count_threshold" gorm:"column:view_count_threshold;not null;default:0"`
	Amount             decimal.Decimal `json:"amount" gorm:"column:amount;type:numeric(12,2);not null"`
	Description        *string         `json:"description" gorm:"column:description"`
	CreatedAt          *time.Time      `json:"created_at"`
	UpdatedAt          *time.Time      `json:"updated_at"`
}

// TableName sets the insert table name for PaymentTier
func (PaymentTier) TableName() string {
	return "payment_tiers"
}
