package models

import (
	"time"

	"gorm.io/gorm"
)

type OrderItem struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	OrderID          uint           `json:"order_id" gorm:"not null;index"`
	ProductID        uint           `json:"product_id" gorm:"not null;index"`
	ProductVariantID *uint          `json:"product_variant_id"`
	Quantity         int            `json:"quantity" gorm:"not null"`
	UnitPrice        float64        `json:"unit_price" gorm:"not null"`
	TotalPrice       float64        `json:"total_price" gorm:"not null"`
	KitchenStatus    string         `json:"kitchen_status" gorm:"default:'pending'"` // pending, in_progress, completed
	Notes            *string        `json:"notes"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// KitchenStatus is the per-item cooking progress shown on the kitchen display.
type KitchenStatus string

const (
	KitchenPending    KitchenStatus = "pending"
	KitchenInProgress KitchenStatus = "in_progress"
	KitchenCompleted  KitchenStatus = "completed"
)

// ValidKitchenStatus reports whether s is one of the three kitchen states.
func ValidKitchenStatus(s string) bool {
	switch KitchenStatus(s) {
	case KitchenPending, KitchenInProgress, KitchenCompleted:
		return true
	}
	return false
}

// KitchenItem is an open order item enriched with its order context for the
// kitchen display. Items sharing an order_number are grouped client-side.
type KitchenItem struct {
	ItemID         uint      `json:"item_id"`
	OrderID        uint      `json:"id"`
	OrderNumber    string    `json:"order_number"`
	OrderType      string    `json:"order_type"`
	TableNumber    *int      `json:"table_number"`
	OrderCreatedAt time.Time `json:"created_at"`
	Quantity       int       `json:"quantity"`
	KitchenStatus  string    `json:"kitchen_status"`
	Notes          *string   `json:"notes"`
	ProductName    string    `json:"product_name"`
	VariantName    *string   `json:"variant_name"`
}
