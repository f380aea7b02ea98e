package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"showroom_manager/internal/repository"
	"showroom_manager/internal/services"
)

type SaleHandler struct {
	saleService services.SaleService
}

func NewSaleHandler(saleService services.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

func (h *SaleHandler) CreateSale(c *gin.Context) {
	var req services.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sale)
}

func (h *SaleHandler) ListSales(c *gin.Context) {
	filter := repository.SaleFilter{
		CNIC:          c.Query("cnic"),
		EngineNumber:  c.Query("engineNumber"),
		ChassisNumber: c.Query("chassisNumber"),
		DONumber:      c.Query("doNumber"),
	}

	sales, err := h.saleService.ListSales(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sales)
}

func (h *SaleHandler) GetSale(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	sale, err := h.saleService.GetSale(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sale)
}

func (h *SaleHandler) UpdateSale(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req services.UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	sale, err := h.saleService.UpdateSale(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sale)
}

func (h *SaleHandler) DeleteSale(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.saleService.DeleteSale(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sale deleted and bike returned to inventory"})
}
