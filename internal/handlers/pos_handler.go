package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"restaurant_pos/internal/services"
)

type POSHandler struct {
	catalogService services.CatalogService
	orderService   services.OrderService
}

func NewPOSHandler(catalogService services.CatalogService, orderService services.OrderService) *POSHandler {
	return &POSHandler{catalogService: catalogService, orderService: orderService}
}

func (h *POSHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *POSHandler) GetProducts(c *gin.Context) {
	products, err := h.catalogService.ListProducts()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *POSHandler) GetProductVariants(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("productId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	variants, err := h.catalogService.ListVariants(uint(productID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, variants)
}

func (h *POSHandler) CreateOrder(c *gin.Context) {
	var input services.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	session := CurrentIdentity(c)
	result, err := h.orderService.CreateOrder(session.UserID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"orderId":     result.OrderID,
		"orderNumber": result.OrderNumber,
	})
}
