package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"debt-planner/internal/api/handlers"
	"debt-planner/internal/api/middleware"
	"debt-planner/internal/api/models"
	"debt-planner/internal/data"
)

// Options configures NewRouter. Zero values disable the optional pieces.
type Options struct {
	CORSOrigins []string
	// Limiter is applied to /api routes when non-nil.
	Limiter *middleware.RateLimiter
	// Cache stores comparison results; nil disables GET /compare/:id.
	Cache data.Cache
	// StaticDir serves a built web UI when set.
	StaticDir string
}

// NewRouter wires middleware, handlers and routes.
func NewRouter(opts Options) *gin.Engine {
	router := gin.New()

	// Apply middleware
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(opts.CORSOrigins...))

	// Initialize handlers
	payoffHandler := handlers.NewPayoffHandler(opts.Cache)
	analysisHandler := handlers.NewAnalysisHandler()
	flowchartHandler := handlers.NewFlowchartHandler()
	reportHandler := handlers.NewReportHandler()
	strategyHandler := handlers.NewStrategyHandler()

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	if opts.Limiter != nil {
		api.Use(middleware.RateLimit(opts.Limiter))
	}
	{
		api.GET("/strategies", strategyHandler.ListStrategies)

		api.POST("/simulate", payoffHandler.Simulate)
		api.POST("/compare", payoffHandler.Compare)
		api.GET("/compare/:id", payoffHandler.GetComparison)

		api.POST("/aggregates", analysisHandler.Aggregates)
		api.POST("/flowchart", flowchartHandler.Evaluate)
		api.POST("/report", reportHandler.Generate)
	}

	if opts.StaticDir != "" {
		router.Static("/assets", opts.StaticDir+"/assets")
		router.StaticFile("/favicon.ico", opts.StaticDir+"/favicon.ico")
	}

	router.NoRoute(func(c *gin.Context) {
		// Don't serve index.html for API routes
		if opts.StaticDir == "" || strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: models.ErrorDetail{Code: models.CodeNotFound, Message: "Not found"},
			})
			return
		}
		c.File(opts.StaticDir + "/index.html")
	})

	return router
}
