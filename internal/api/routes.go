package api

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/pitchlab/backend/internal/api/handlers"
	"github.com/pitchlab/backend/internal/config"
	"github.com/pitchlab/backend/internal/experiments"
	"github.com/pitchlab/backend/internal/middleware"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, store experiments.Store, cfg *config.Config) {
	router.Use(middleware.CORSMiddleware(cfg))

	if cfg.Environment != "production" {
		router.Use(func(c *gin.Context) {
			c.Header("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
			c.Header("Pragma", "no-cache")
			c.Header("Expires", "0")
			c.Next()
		})
		log.Println("[DEV MODE] No-cache headers enabled for all routes")
	}

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", handlers.HealthCheck)
		v1.GET("/config", handlers.GetConfig(cfg))

		v1.GET("/presets", handlers.ListPresets)
		v1.GET("/presets/:name", handlers.GetPreset)

		v1.POST("/simulate", handlers.Simulate(store, cfg))
		v1.GET("/simulate/stream", middleware.WebSocketCORSCheck(cfg), handlers.HandleSimulationStream(cfg))
		v1.POST("/compare", handlers.Compare(store, cfg))

		exp := v1.Group("/experiments")
		{
			exp.GET("", handlers.ListExperiments(store))
			exp.DELETE("", handlers.ClearExperiments(store))
			exp.GET("/:id", handlers.GetExperiment(store))
			exp.DELETE("/:id", handlers.DeleteExperiment(store))
		}
	}
}
