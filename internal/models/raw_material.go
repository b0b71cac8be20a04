package models

import (
	"time"

	"gorm.io/gorm"
)

type RawMaterial struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	Name             string         `json:"name" gorm:"not null"`
	BaseUnit         string         `json:"base_unit" gorm:"not null"`
	PurchaseUnit     string         `json:"purchase_unit" gorm:"not null"`
	ConversionFactor float64        `json:"conversion_factor" gorm:"not null;default:1"`
	CurrentStock     float64        `json:"current_stock" gorm:"not null;default:0"`
	CostPerBaseUnit  float64        `json:"cost_per_base_unit" gorm:"not null;default:0"`
	MinimumStock     float64        `json:"minimum_stock" gorm:"not null;default:0"`
	IsActive         bool           `json:"is_active" gorm:"default:true"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// LowStockMaterial is the dashboard view of a material at or below its minimum.
type LowStockMaterial struct {
	Name         string  `json:"name"`
	CurrentStock float64 `json:"current_stock"`
	MinimumStock float64 `json:"minimum_stock"`
	BaseUnit     string  `json:"base_unit"`
}
