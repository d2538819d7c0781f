package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/pitchlab/backend/internal/api"
	"github.com/pitchlab/backend/internal/config"
	"github.com/pitchlab/backend/internal/experiments"
	"github.com/pitchlab/backend/internal/redis"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize configuration
	cfg := config.Load()

	// Recent experiments live in Redis when configured, otherwise in memory
	var store experiments.Store
	if cfg.RedisURL != "" {
		rdb, err := redis.Connect(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer rdb.Close()

		store = experiments.NewRedisStore(rdb, experiments.DefaultRedisKey, cfg.RecentExperimentsMax, cfg.ExperimentsTTL())
		log.Printf("[EXPERIMENTS] Using Redis store (max=%d, ttl=%s)", cfg.RecentExperimentsMax, cfg.ExperimentsTTL())
	} else {
		store = experiments.NewMemoryStore(cfg.RecentExperimentsMax)
		log.Printf("[EXPERIMENTS] REDIS_URL not set - using in-memory store (max=%d)", cfg.RecentExperimentsMax)
	}

	opts := cfg.SimulationOptions()
	log.Printf("[SIM] Defaults: dt=%g max_time=%g scheme=%s natural_aim=%t", opts.Dt, opts.MaxTime, opts.Scheme, opts.NaturalAim)

	// Set up Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Initialize API handlers
	api.SetupRoutes(router, store, cfg)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting PitchLab server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
