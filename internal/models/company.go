package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Company represents the companies table (tenant root)
type Company struct {
	ID         uuid.UUID        `json:"id" gorm:"type:uuid;primarykey;default:gen_random_uuid()"`
	Name       string           `json:"name" gorm:"column:name;not null"`
	BasePay    *decimal.Decimal `json:"base_pay" gorm:"column:base_pay;type:numeric(12,2)"`
	DefaultCPM *decimal.Decimal `json:"default_cpm" gorm:"column:default_cpm;type:numeric(12,2)"`
	CreatedAt  *time.Time       `json:"created_at"`
	UpdatedAt  *time.Time       `json:"updated_at"`
}

// TableName sets the insert table name for Company
func (Company) TableName() string {
	return "companies"
}
