package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"showroom_manager/internal/services"
)

type InventoryHandler struct {
	inventoryService     services.InventoryService
	deliveryOrderService services.DeliveryOrderService
}

func NewInventoryHandler(
	inventoryService services.InventoryService,
	deliveryOrderService services.DeliveryOrderService,
) *InventoryHandler {
	return &InventoryHandler{
		inventoryService:     inventoryService,
		deliveryOrderService: deliveryOrderService,
	}
}

func (h *InventoryHandler) ListBikes(c *gin.Context) {
	bikes, err := h.inventoryService.ListBikes()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bikes)
}

func (h *InventoryHandler) UpdateBike(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var update services.BikeUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	bike, err := h.inventoryService.UpdateBike(id, update)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bike)
}

func (h *InventoryHandler) DeleteBike(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.inventoryService.DeleteBike(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bike deleted successfully"})
}

func (h *InventoryHandler) ReceiveDeliveryOrder(c *gin.Context) {
	var req services.ReceiveOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.deliveryOrderService.ReceiveOrder(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *InventoryHandler) ListDeliveryOrders(c *gin.Context) {
	orders, err := h.deliveryOrderService.ListOrders()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}
