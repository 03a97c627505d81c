package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Niche represents the niches table (a category of creators within a company)
type Niche struct {
	ID          uuid.UUID        `json:"id" gorm:"type:uuid;primarykey;default:gen_random_uuid()"`
	CompanyID   uuid.UUID        `json:"company_id" gorm:"column:company_id;type:uuid;not null;index"`
	Name        string           `json:"name" gorm:"column:name;not null"`
	Description *string          `json:"description" gorm:"column:description"`
	BasePay     *decimal.Decimal `json:"base_pay" gorm:"column:base_pay;type:numeric(12,2)"`
	CPM         *decimal.Decimal `json:"cpm" gorm:"column:cpm;type:numeric(12,2)"`
	CreatedAt   *time.Time       `json:"created_at"`
	UpdatedAt   *time.Time       `json:"updated_at"`
}

// TableName sets the insert table name for Niche
func (Niche) TableName() string {
	return "niches"
}
