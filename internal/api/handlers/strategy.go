package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"debt-planner/internal/api/models"
	"debt-planner/internal/strategy"
)

// StrategyHandler handles strategy-related requests
type StrategyHandler struct{}

// NewStrategyHandler creates a new strategy handler
func NewStrategyHandler() *StrategyHandler {
	return &StrategyHandler{}
}

// ListStrategies handles GET /api/v1/strategies
func (h *StrategyHandler) ListStrategies(c *gin.Context) {
	log.Printf("StrategyHandler: ListStrategies called")
	strategies := []models.StrategyInfo{}
	for _, s := range strategy.Describe() {
		strategies = append(strategies, models.StrategyInfo{
			Name:        string(s.Name),
			Description: s.Description,
		})
	}

	log.Printf("StrategyHandler: Returning %d strategies", len(strategies))
	c.JSON(http.StatusOK, gin.H{"strategies": strategies})
}
