package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"debt-planner/internal/api/models"
	"debt-planner/internal/data"
	"debt-planner/internal/format"
	"debt-planner/internal/model"
	"debt-planner/internal/payoff"
	"debt-planner/internal/strategy"
)

// PayoffHandler handles simulation and comparison requests
type PayoffHandler struct {
	engine *payoff.Engine
	// cache holds comparison results by id; nil disables caching and lookups.
	cache data.Cache
	now   func() time.Time
}

// NewPayoffHandler creates a new payoff handler
func NewPayoffHandler(cache data.Cache) *PayoffHandler {
	return &PayoffHandler{
		engine: payoff.New(),
		cache:  cache,
		now:    time.Now,
	}
}

// Simulate handles POST /api/v1/simulate
func (h *PayoffHandler) Simulate(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, models.CodeInvalidRequest, err.Error(), nil)
		return
	}

	name, ok := model.ParseStrategy(req.Strategy)
	if !ok {
		respondError(c, http.StatusBadRequest, models.CodeInvalidStrategy, "unsupported strategy: "+req.Strategy,
			map[string]interface{}{"supported": model.Strategies})
		return
	}
	if err := model.ValidateDebts(req.Debts); err != nil {
		respondError(c, http.StatusBadRequest, models.CodeInvalidDebt, err.Error(), nil)
		return
	}
	start, err := parseStart(req.StartDate, h.now)
	if err != nil {
		respondError(c, http.StatusBadRequest, models.CodeInvalidRequest, err.Error(), nil)
		return
	}

	strat, err := strategy.New(name)
	if err != nil {
		respondError(c, http.StatusInternalServerError, models.CodeInternal, err.Error(), nil)
		return
	}

	debts := payoffDebts(req.Debts, req.Options)
	sum := h.engine.Simulate(debts, req.ExtraPayment, strat, start)
	log.Printf("PayoffHandler: %s over %d debts: %d months, interest %.2f", name, len(debts), sum.MonthsToPayoff, sum.TotalInterest)

	c.JSON(http.StatusOK, models.SimulateResponse{
		ID:      uuid.NewString(),
		Status:  "completed",
		Summary: buildSummary(sum, req.Options),
	})
}

// Compare handles POST /api/v1/compare
func (h *PayoffHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, models.CodeInvalidRequest, err.Error(), nil)
		return
	}
	if err := model.ValidateDebts(req.Debts); err != nil {
		respondError(c, http.StatusBadRequest, models.CodeInvalidDebt, err.Error(), nil)
		return
	}
	start, err := parseStart(req.StartDate, h.now)
	if err != nil {
		respondError(c, http.StatusBadRequest, models.CodeInvalidRequest, err.Error(), nil)
		return
	}
	// Key on the resolved date so "today" requests expire with the day.
	req.StartDate = start.Format(dateLayout)

	ctx := c.Request.Context()
	var reqKey string
	if h.cache != nil {
		reqKey, err = data.GenerateCacheKey("compare:req", req)
		if err != nil {
			respondError(c, http.StatusInternalServerError, models.CodeInternal, err.Error(), nil)
			return
		}
		if id, ok := h.cache.Get(ctx, reqKey); ok {
			if raw, ok := h.cache.Get(ctx, comparisonKey(string(id))); ok {
				log.Printf("PayoffHandler: comparison cache hit %s", id)
				c.Header("X-Cache", "HIT")
				c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
				return
			}
		}
	}

	debts := payoffDebts(req.Debts, req.Options)
	cmp := h.engine.Compare(debts, req.ExtraPayment, start)
	resp := models.CompareResponse{
		ID:            uuid.NewString(),
		Avalanche:     buildSummary(cmp.Avalanche, req.Options),
		Snowball:      buildSummary(cmp.Snowball, req.Options),
		InterestSaved: format.Round2(cmp.InterestSaved),
		MonthsSaved:   cmp.MonthsSaved,
		Recommended:   string(cmp.Recommended()),
	}
	log.Printf("PayoffHandler: compared %d debts: avalanche saves %.2f over %d months", len(debts), cmp.InterestSaved, cmp.MonthsSaved)

	raw, err := json.Marshal(resp)
	if err != nil {
		respondError(c, http.StatusInternalServerError, models.CodeInternal, err.Error(), nil)
		return
	}
	if h.cache != nil {
		if err := h.cache.Set(ctx, comparisonKey(resp.ID), raw); err != nil {
			log.Printf("PayoffHandler: failed to cache comparison %s: %v", resp.ID, err)
		} else if err := h.cache.Set(ctx, reqKey, []byte(resp.ID)); err != nil {
			log.Printf("PayoffHandler: failed to index comparison %s: %v", resp.ID, err)
		}
		c.Header("X-Cache", "MISS")
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}

// GetComparison handles GET /api/v1/compare/:id
func (h *PayoffHandler) GetComparison(c *gin.Context) {
	id := c.Param("id")
	if h.cache == nil {
		respondError(c, http.StatusNotFound, models.CodeNotFound, "comparison caching is disabled", nil)
		return
	}
	raw, ok := h.cache.Get(c.Request.Context(), comparisonKey(id))
	if !ok {
		respondError(c, http.StatusNotFound, models.CodeNotFound, "comparison not found or expired: "+id, nil)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}

func comparisonKey(id string) string {
	return "compare:id:" + id
}
