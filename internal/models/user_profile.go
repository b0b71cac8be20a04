package models

import (
	"time"

	"gorm.io/gorm"
)

// UserProfile is the local record for an externally-authenticated identity.
// Profiles are created lazily on first sighting with the cashier role.
type UserProfile struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    string         `json:"user_id" gorm:"unique;not null"`
	Email     string         `json:"email" gorm:"not null"`
	Name      string         `json:"name"`
	Role      string         `json:"role" gorm:"default:'cashier'"` // owner, cashier, chef
	IsActive  bool           `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type UserRole string

const (
	RoleOwner   UserRole = "owner"
	RoleCashier UserRole = "cashier"
	RoleChef    UserRole = "chef"
)
