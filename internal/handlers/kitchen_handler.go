package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"restaurant_pos/internal/services"
)

type KitchenHandler struct {
	kitchenService services.KitchenService
}

func NewKitchenHandler(kitchenService services.KitchenService) *KitchenHandler {
	return &KitchenHandler{kitchenService: kitchenService}
}

// GetKitchenOrders returns the open-items queue. The display groups rows by
// order_number; clients re-poll on a fixed interval.
func (h *KitchenHandler) GetKitchenOrders(c *gin.Context) {
	items, err := h.kitchenService.ListOpenItems()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *KitchenHandler) UpdateKitchenStatus(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.kitchenService.UpdateItemStatus(uint(itemID), req.Status); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
