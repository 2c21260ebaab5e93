package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"debt-planner/internal/api/models"
	"debt-planner/internal/flowchart"
	"debt-planner/internal/format"
	"debt-planner/internal/model"
)

// FlowchartHandler evaluates plans against the prioritized flowchart
type FlowchartHandler struct{}

// NewFlowchartHandler creates a new flowchart handler
func NewFlowchartHandler() *FlowchartHandler {
	return &FlowchartHandler{}
}

// Evaluate handles POST /api/v1/flowchart
func (h *FlowchartHandler) Evaluate(c *gin.Context) {
	var req models.FlowchartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, models.CodeInvalidRequest, err.Error(), nil)
		return
	}
	plan := &req.Plan
	plan.ApplyDefaults()
	if err := model.ValidateDebts(plan.Debts); err != nil {
		respondError(c, http.StatusBadRequest, models.CodeInvalidDebt, err.Error(), nil)
		return
	}

	ev := flowchart.Evaluate(plan)
	t := flowchart.Totals(plan)
	log.Printf("FlowchartHandler: current step %s (%d complete)", ev.CurrentStepID, len(ev.CompletedStepIDs))

	resp := models.FlowchartResponse{
		CurrentStepID:    ev.CurrentStepID,
		CompletedStepIDs: ev.CompletedStepIDs,
		NextActions:      ev.NextActions,
		Totals: models.MonthlyTotals{
			TotalIncome:            format.Round2(t.TotalIncome),
			EssentialOutgoings:     format.Round2(t.EssentialOutgoings),
			DiscretionaryOutgoings: format.Round2(t.DiscretionaryOutgoings),
			AnnualCostsMonthly:     format.Round2(t.AnnualCostsMonthly),
			TotalOutgoings:         format.Round2(t.TotalOutgoings),
			MinimumDebtPayments:    format.Round2(t.MinimumDebtPayments),
			Surplus:                format.Round2(t.Surplus),
		},
		Steps: make([]models.StepInfo, 0, len(ev.Steps)),
	}
	complete := make(map[string]bool, len(ev.CompletedStepIDs))
	for _, id := range ev.CompletedStepIDs {
		complete[id] = true
	}
	for _, s := range ev.Steps {
		resp.Steps = append(resp.Steps, models.StepInfo{
			ID:          s.ID,
			Title:       s.Title,
			Description: s.Description,
			Complete:    complete[s.ID],
			HelpLinks:   s.HelpLinks,
		})
	}
	c.JSON(http.StatusOK, resp)
}
