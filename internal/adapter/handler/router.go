package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orator-app/speech-coach/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg             *config.Config
	analysisHandler *AnalysisHandler
	slidesHandler   *SlidesHandler
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, analysisHandler *AnalysisHandler, slidesHandler *SlidesHandler) *Router {
	return &Router{
		cfg:             cfg,
		analysisHandler: analysisHandler,
		slidesHandler:   slidesHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")
	v1.POST("/analysis", rt.analysisHandler.Analyze)
	v1.POST("/slides/render", rt.slidesHandler.Render)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
