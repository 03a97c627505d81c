package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile roles
const (
	RoleCompanyAdmin = "company_admin"
	RoleCreator      = "creator"
)

// Profile represents the profiles table (an authenticated user and their role)
type Profile struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primarykey"`
	CompanyID *uuid.UUID `json:"company_id" gorm:"column:company_id;type:uuid;index"`
	Email     string     `json:"email" gorm:"column:email;not null"`
	FullName  *string    `json:"full_name" gorm:"column:full_name"`
	Role      string     `json:"role" gorm:"column:role;not null;default:creator"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// TableName sets the insert table name for Profile
func (Profile) TableName() string {
	return "profiles"
}
