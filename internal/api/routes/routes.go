package routes

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"resumeforge/internal/api/handlers"
	"resumeforge/internal/api/middleware"
	"resumeforge/internal/config"
	"resumeforge/internal/llm"
	"resumeforge/internal/pipeline"
	"resumeforge/internal/renderer"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, p *pipeline.Pipeline, llmManager *llm.Manager, rendererService *renderer.Service, pool *renderer.BrowserPool) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig(cfg.CORS.AllowedOrigin))
	e.Use(middleware.RequestValidation(cfg.Server.MaxBodyBytes))
	// Generation endpoints block on LLM calls and rendering, give them
	// a longer timeout than everything else
	e.Use(middleware.SelectiveTimeoutConfig(cfg.Server.ReadTimeout, 2*time.Minute))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(llmManager, rendererService))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(llmManager))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		resume := v1.Group("/resume")
		{
			resume.POST("/generate", handlers.GenerateResumeHandler(cfg, p))
			resume.POST("/generate-pdf", handlers.GenerateResumePDFHandler(cfg, p))
		}

		metrics := v1.Group("/metrics")
		{
			metrics.GET("/browser", handlers.BrowserMetricsHandler(pool))
		}
	}

	// Root endpoint
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "resumeforge",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
