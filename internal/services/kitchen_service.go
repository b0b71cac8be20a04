package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"restaurant_pos/internal/apperrors"
	"restaurant_pos/internal/models"
	"restaurant_pos/internal/repository"
)

type KitchenService interface {
	ListOpenItems() ([]models.KitchenItem, error)
	UpdateItemStatus(itemID uint, status string) error
}

type kitchenService struct {
	orderItemRepo repository.OrderItemRepository
}

func NewKitchenService(orderItemRepo repository.OrderItemRepository) KitchenService {
	return &kitchenService{orderItemRepo: orderItemRepo}
}

// ListOpenItems returns the kitchen queue: every not-yet-completed item of an
// open order, oldest order first. Completed items drop out of this view.
func (s *kitchenService) ListOpenItems() ([]models.KitchenItem, error) {
	return s.orderItemRepo.GetOpenKitchenItems()
}

// UpdateItemStatus overwrites an item's kitchen status. Any of the three
// states is accepted as a target; chefs move items back when a dish is
// remade.
func (s *kitchenService) UpdateItemStatus(itemID uint, status string) error {
	if !models.ValidKitchenStatus(status) {
		return apperrors.NewValidation("status", "must be pending, in_progress or completed")
	}

	item, err := s.orderItemRepo.GetByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound(fmt.Sprintf("order item %d", itemID))
		}
		return err
	}

	item.KitchenStatus = status
	return s.orderItemRepo.Update(item)
}
