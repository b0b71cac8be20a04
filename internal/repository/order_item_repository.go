package repository

import (
	"restaurant_pos/internal/models"

	"gorm.io/gorm"
)

type OrderItemRepository interface {
	GetByID(id uint) (*models.OrderItem, error)
	GetByOrderID(orderID uint) ([]models.OrderItem, error)
	GetOpenKitchenItems() ([]models.KitchenItem, error)
	Update(item *models.OrderItem) error
}

type orderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepository {
	return &orderItemRepository{db: db}
}

func (r *orderItemRepository) GetByID(id uint) (*models.OrderItem, error) {
	var item models.OrderItem
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *orderItemRepository) GetByOrderID(orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

// GetOpenKitchenItems returns every item of an open order that the kitchen
// has not completed, oldest order first.
func (r *orderItemRepository) GetOpenKitchenItems() ([]models.KitchenItem, error) {
	var items []models.KitchenItem
	err := r.db.Model(&models.OrderItem{}).
		Select(`order_items.id AS item_id,
			orders.id AS order_id,
			orders.order_number,
			orders.order_type,
			orders.table_number,
			orders.created_at AS order_created_at,
			order_items.quantity,
			order_items.kitchen_status,
			order_items.notes,
			products.name AS product_name,
			product_variants.name AS variant_name`).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Joins("LEFT JOIN product_variants ON product_variants.id = order_items.product_variant_id").
		Where("orders.status = ? AND order_items.kitchen_status <> ?",
			string(models.OrderOpen), string(models.KitchenCompleted)).
		Order("orders.created_at ASC").
		Scan(&items).Error
	return items, err
}

func (r *orderItemRepository) Update(item *models.OrderItem) error {
	return r.db.Save(item).Error
}
