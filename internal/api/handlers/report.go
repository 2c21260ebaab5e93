package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"debt-planner/internal/api/models"
	"debt-planner/internal/report"
)

// ReportHandler builds month-over-month performance reports
type ReportHandler struct{}

// NewReportHandler creates a new report handler
func NewReportHandler() *ReportHandler {
	return &ReportHandler{}
}

// Generate handles POST /api/v1/report
func (h *ReportHandler) Generate(c *gin.Context) {
	var req models.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, models.CodeInvalidRequest, err.Error(), nil)
		return
	}
	if _, err := time.Parse(dateLayout, req.Current.Date); err != nil {
		respondError(c, http.StatusBadRequest, models.CodeInvalidRequest, "current.date must be YYYY-MM-DD", nil)
		return
	}

	r := report.Generate(req.Current, req.Previous)
	insights := report.Insights(r)
	log.Printf("ReportHandler: %s: %d milestones, %d insights", req.Current.Date, len(r.Milestones.Achieved), len(insights))

	c.JSON(http.StatusOK, models.ReportResponse{Report: r, Insights: insights})
}
