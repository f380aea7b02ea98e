package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"showroom_manager/internal/services"
)

type ReportHandler struct {
	reportService services.ReportService
}

func NewReportHandler(reportService services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetReport answers GET /api/reports?startDate=&endDate=. Both bounds must be
// RFC 3339 instants; with either missing the report covers today.
func (h *ReportHandler) GetReport(c *gin.Context) {
	var start, end *time.Time

	startStr := c.Query("startDate")
	endStr := c.Query("endDate")
	if startStr != "" && endStr != "" {
		parsedStart, err := time.Parse(time.RFC3339, startStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid startDate, expected RFC 3339"})
			return
		}
		parsedEnd, err := time.Parse(time.RFC3339, endStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid endDate, expected RFC 3339"})
			return
		}
		start, end = &parsedStart, &parsedEnd
	}

	report, err := h.reportService.ComputeReport(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
