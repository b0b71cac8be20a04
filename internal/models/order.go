package models

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	OrderNumber    string         `json:"order_number" gorm:"unique;not null"`
	OrderType      string         `json:"order_type" gorm:"not null"` // dine_in, takeaway
	TableNumber    *int           `json:"table_number"`
	Status         string         `json:"status" gorm:"default:'open'"` // open, closed, cancelled
	TotalAmount    float64        `json:"total_amount" gorm:"not null"`
	TaxAmount      float64        `json:"tax_amount" gorm:"not null;default:0"`
	DiscountAmount float64        `json:"discount_amount" gorm:"not null;default:0"`
	FinalAmount    float64        `json:"final_amount" gorm:"not null"`
	CashierUserID  string         `json:"cashier_user_id" gorm:"index"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type OrderType string

const (
	OrderDineIn   OrderType = "dine_in"
	OrderTakeaway OrderType = "takeaway"
)

type OrderStatus string

const (
	OrderOpen      OrderStatus = "open"
	OrderClosed    OrderStatus = "closed"
	OrderCancelled OrderStatus = "cancelled"
)
