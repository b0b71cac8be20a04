package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	CategoryID     *uint          `json:"category_id" gorm:"index"`
	Name           string         `json:"name" gorm:"not null"`
	Description    *string        `json:"description"`
	BasePrice      float64        `json:"base_price" gorm:"not null"`
	CalculatedCOGS float64        `json:"calculated_cogs" gorm:"column:calculated_cogs;not null;default:0"`
	IsActive       bool           `json:"is_active" gorm:"default:true"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"deleted_at" gorm:"index"`

	// Filled by the catalog read join, not a stored column.
	CategoryName *string `json:"category_name,omitempty" gorm:"-:migration;->"`
}

type ProductVariant struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	ProductID uint           `json:"product_id" gorm:"not null;index"`
	Name      string         `json:"name" gorm:"not null"`
	Price     float64        `json:"price" gorm:"not null"`
	IsActive  bool           `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
