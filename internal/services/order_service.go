package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"restaurant_pos/internal/apperrors"
	"restaurant_pos/internal/models"
	"restaurant_pos/internal/repository"
)

type CreateOrderItemInput struct {
	ProductID        uint    `json:"product_id" binding:"required"`
	ProductVariantID *uint   `json:"product_variant_id"`
	Quantity         int     `json:"quantity" binding:"required"`
	UnitPrice        float64 `json:"unit_price"`
	Notes            *string `json:"notes"`
}

type CreateOrderInput struct {
	OrderType   string                 `json:"order_type" binding:"required"`
	TableNumber *int                   `json:"table_number"`
	Items       []CreateOrderItemInput `json:"items" binding:"required"`
}

type CreateOrderResult struct {
	OrderID     uint   `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
}

type OrderService interface {
	CreateOrder(cashierUserID string, input CreateOrderInput) (*CreateOrderResult, error)
	GetOrderByID(id uint) (*models.Order, error)
	GetOrderItems(orderID uint) ([]models.OrderItem, error)
}

type orderService struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	catalogRepo   repository.CatalogRepository
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	catalogRepo repository.CatalogRepository,
) OrderService {
	return &orderService{orderRepo: orderRepo, orderItemRepo: orderItemRepo, catalogRepo: catalogRepo}
}

// CreateOrder validates the cart, generates an order number, computes totals
// and persists the order with all its items atomically. The submitted
// unit_price is kept as the price-at-order-time snapshot.
func (s *orderService) CreateOrder(cashierUserID string, input CreateOrderInput) (*CreateOrderResult, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	totalAmount := 0.0
	items := make([]models.OrderItem, 0, len(input.Items))
	for i, in := range input.Items {
		if err := s.checkCatalogRefs(i, in); err != nil {
			return nil, err
		}

		totalPrice := in.UnitPrice * float64(in.Quantity)
		totalAmount += totalPrice
		items = append(items, models.OrderItem{
			ProductID:        in.ProductID,
			ProductVariantID: in.ProductVariantID,
			Quantity:         in.Quantity,
			UnitPrice:        in.UnitPrice,
			TotalPrice:       totalPrice,
			KitchenStatus:    string(models.KitchenPending),
			Notes:            in.Notes,
		})
	}

	order := &models.Order{
		OrderNumber:   generateOrderNumber(),
		OrderType:     input.OrderType,
		TableNumber:   input.TableNumber,
		Status:        string(models.OrderOpen),
		TotalAmount:   totalAmount,
		FinalAmount:   totalAmount,
		CashierUserID: cashierUserID,
	}

	if err := s.orderRepo.CreateWithItems(order, items); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return &CreateOrderResult{OrderID: order.ID, OrderNumber: order.OrderNumber}, nil
}

func (s *orderService) validate(input CreateOrderInput) error {
	switch models.OrderType(input.OrderType) {
	case models.OrderDineIn, models.OrderTakeaway:
	default:
		return apperrors.NewValidation("order_type", "must be dine_in or takeaway")
	}

	if models.OrderType(input.OrderType) == models.OrderDineIn && input.TableNumber == nil {
		return apperrors.NewValidation("table_number", "required for dine_in orders")
	}
	if models.OrderType(input.OrderType) == models.OrderTakeaway && input.TableNumber != nil {
		return apperrors.NewValidation("table_number", "not allowed for takeaway orders")
	}

	if len(input.Items) == 0 {
		return apperrors.NewValidation("items", "must not be empty")
	}

	for i, item := range input.Items {
		if item.Quantity <= 0 {
			return apperrors.NewValidation(fmt.Sprintf("items[%d].quantity", i), "must be positive")
		}
		if item.UnitPrice < 0 {
			return apperrors.NewValidation(fmt.Sprintf("items[%d].unit_price", i), "must not be negative")
		}
	}

	return nil
}

// checkCatalogRefs ensures the item points at a live product, and that a
// chosen variant is live and belongs to that product.
func (s *orderService) checkCatalogRefs(i int, item CreateOrderItemInput) error {
	product, err := s.catalogRepo.GetProductByID(item.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound(fmt.Sprintf("product %d", item.ProductID))
		}
		return fmt.Errorf("failed to look up product %d: %w", item.ProductID, err)
	}
	if !product.IsActive {
		return apperrors.NotFound(fmt.Sprintf("product %d", item.ProductID))
	}

	if item.ProductVariantID == nil {
		return nil
	}

	variant, err := s.catalogRepo.GetVariantByID(*item.ProductVariantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound(fmt.Sprintf("product variant %d", *item.ProductVariantID))
		}
		return fmt.Errorf("failed to look up variant %d: %w", *item.ProductVariantID, err)
	}
	if !variant.IsActive {
		return apperrors.NotFound(fmt.Sprintf("product variant %d", *item.ProductVariantID))
	}
	if variant.ProductID != item.ProductID {
		return apperrors.NewValidation(fmt.Sprintf("items[%d].product_variant_id", i), "variant does not belong to product")
	}

	return nil
}

// generateOrderNumber produces a unique, kitchen-legible number: millisecond
// timestamp plus a short random suffix against same-millisecond collisions.
func generateOrderNumber() string {
	suffix := strings.ToUpper(uuid.NewString()[:4])
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), suffix)
}

func (s *orderService) GetOrderByID(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(fmt.Sprintf("order %d", id))
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetOrderItems(orderID uint) ([]models.OrderItem, error) {
	return s.orderItemRepo.GetByOrderID(orderID)
}
