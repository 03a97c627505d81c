package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Creator represents the creators table
type Creator struct {
	ID               uuid.UUID        `json:"id" gorm:"type:uuid;primarykey;default:gen_random_uuid()"`
	CompanyID        uuid.UUID        `json:"company_id" gorm:"column:company_id;type:uuid;not null;index"`
	NicheID          *uuid.UUID       `json:"niche_id" gorm:"column:niche_id;type:uuid;index"`
	UserID           *uuid.UUID       `json:"user_id" gorm:"column:user_id;type:uuid"`
	Name             string           `json:"name" gorm:"column:name;not null"`
	Email            *string          `json:"email" gorm:"column:email"`
	Phone            *string          `json:"phone" gorm:"column:phone"`
	TikTokHandle     *string          `json:"tiktok_handle" gorm:"column:tiktok_handle"`
	InstagramHandle  *string          `json:"instagram_handle" gorm:"column:instagram_handle"`
	BasePay          *decimal.Decimal `json:"base_pay" gorm:"column:base_pay;type:numeric(12,2)"`
	CPM              *decimal.Decimal `json:"cpm" gorm:"column:cpm;type:numeric(12,2)"`
	IsActive         *bool            `json:"is_active" gorm:"column:is_active;default:true"`
	Notes            *string          `json:"notes" gorm:"column:notes"`
	InviteToken      *string          `json:"invite_token" gorm:"column:invite_token"`
	InviteAcceptedAt *time.Time       `json:"invite_accepted_at" gorm:"column:invite_accepted_at"`
	CreatedAt        *time.Time       `json:"created_at"`
	UpdatedAt        *time.Time       `json:"updated_at"`
}

// TableName sets the insert table name for Creator
func (Creator) TableName() string {
	return "creators"
}
