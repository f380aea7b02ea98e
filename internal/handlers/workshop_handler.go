package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"showroom_manager/internal/services"
)

type WorkshopHandler struct {
	workshopService services.WorkshopService
}

func NewWorkshopHandler(workshopService services.WorkshopService) *WorkshopHandler {
	return &WorkshopHandler{workshopService: workshopService}
}

func (h *WorkshopHandler) CreateService(c *gin.Context) {
	var req services.RecordServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	service, err := h.workshopService.RecordService(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, service)
}

func (h *WorkshopHandler) ListServices(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	services, err := h.workshopService.ListServices(limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, services)
}
