package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"debt-planner/internal/analysis"
	"debt-planner/internal/api/models"
	"debt-planner/internal/format"
	"debt-planner/internal/model"
)

// AnalysisHandler handles aggregate queries over a debt list
type AnalysisHandler struct{}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler() *AnalysisHandler {
	return &AnalysisHandler{}
}

// Aggregates handles POST /api/v1/aggregates
func (h *AnalysisHandler) Aggregates(c *gin.Context) {
	var req models.AggregatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, models.CodeInvalidRequest, err.Error(), nil)
		return
	}
	if err := model.ValidateDebts(req.Debts); err != nil {
		respondError(c, http.StatusBadRequest, models.CodeInvalidDebt, err.Error(), nil)
		return
	}

	resp := models.AggregatesResponse{
		TotalDebt:           format.Round2(analysis.TotalDebt(req.Debts)),
		MinimumPayments:     format.Round2(analysis.MinimumPayments(req.Debts)),
		HasHighInterestDebt: analysis.HasHighInterestDebt(req.Debts),
		HighInterestDebts:   nonNil(analysis.HighInterestDebts(req.Debts)),
		PayoffDebts:         nonNil(analysis.FilterPayoffDebts(req.Debts)),
	}
	log.Printf("AnalysisHandler: %d debts, total %.2f", len(req.Debts), resp.TotalDebt)
	c.JSON(http.StatusOK, resp)
}

func nonNil(debts []model.Debt) []model.Debt {
	if debts == nil {
		return []model.Debt{}
	}
	return debts
}
