package repository

import (
	"restaurant_pos/internal/models"

	"gorm.io/gorm"
)

type ReportRepository interface {
	GetTodaySales() (*models.TodaySales, error)
	GetTopProducts(limit int) ([]models.TopProduct, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// GetTodaySales aggregates today's closed orders. Profit subtracts each
// order's COGS, derived from the snapshot quantities and the products'
// precomputed calculated_cogs.
func (r *reportRepository) GetTodaySales() (*models.TodaySales, error) {
	var sales models.TodaySales
	err := r.db.Raw(`
		SELECT
			COUNT(*) AS total_orders,
			COALESCE(SUM(final_amount), 0) AS total_sales,
			COALESCE(SUM(final_amount - COALESCE((
				SELECT SUM(oi.quantity * p.calculated_cogs)
				FROM order_items oi
				JOIN products p ON oi.product_id = p.id
				WHERE oi.order_id = orders.id AND oi.deleted_at IS NULL
			), 0)), 0) AS total_profit
		FROM orders
		WHERE created_at::date = CURRENT_DATE
			AND status = ?
			AND deleted_at IS NULL
	`, string(models.OrderClosed)).Scan(&sales).Error
	if err != nil {
		return nil, err
	}
	return &sales, nil
}

func (r *reportRepository) GetTopProducts(limit int) ([]models.TopProduct, error) {
	var products []models.TopProduct
	err := r.db.Raw(`
		SELECT p.name, SUM(oi.quantity) AS total_sold
		FROM order_items oi
		JOIN products p ON oi.product_id = p.id
		JOIN orders o ON oi.order_id = o.id
		WHERE o.created_at::date = CURRENT_DATE
			AND o.status = ?
			AND oi.deleted_at IS NULL
			AND o.deleted_at IS NULL
		GROUP BY p.id, p.name
		ORDER BY total_sold DESC
		LIMIT ?
	`, string(models.OrderClosed), limit).Scan(&products).Error
	return products, err
}
