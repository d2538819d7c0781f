package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/pitchlab/backend/internal/physics"
)

type Config struct {
	// Environment
	Environment string

	// Redis (empty keeps experiments in memory)
	RedisURL string

	// Server
	Port        string
	FrontendURL string

	// Simulation defaults offered to clients
	SimDt           float64
	SimMaxTime      float64
	SimScheme       string
	SimNaturalAim   bool
	SimRecordForces bool
	SimMaxSteps     int

	// Recent experiments
	RecentExperimentsMax      int
	RecentExperimentsTTLHours int

	// Streaming
	StreamMaxFPS int
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		// Environment
		Environment: getEnv("APP_ENV", "development"),

		// Redis
		RedisURL: getEnv("REDIS_URL", ""),

		// Server
		Port:        getEnv("APP_PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),

		// Simulation
		SimDt:           getEnvFloat("SIM_DT", 0.01),
		SimMaxTime:      getEnvFloat("SIM_MAX_TIME", 5.0),
		SimScheme:       getEnv("SIM_SCHEME", "euler"),
		SimNaturalAim:   getEnvBool("SIM_NATURAL_AIM", true),
		SimRecordForces: getEnvBool("SIM_RECORD_FORCES", false),
		SimMaxSteps:     getEnvInt("SIM_MAX_STEPS", 100000),

		// Recent experiments
		RecentExperimentsMax:      getEnvInt("RECENT_EXPERIMENTS_MAX", 10),
		RecentExperimentsTTLHours: getEnvInt("RECENT_EXPERIMENTS_TTL_HOURS", 0),

		// Streaming
		StreamMaxFPS: getEnvInt("STREAM_MAX_FPS", 240),
	}
}

// SimulationOptions returns the default run options. An unknown SIM_SCHEME
// falls back to Euler.
func (c *Config) SimulationOptions() physics.Options {
	scheme, err := physics.ParseScheme(c.SimScheme)
	if err != nil {
		log.Printf("[CONFIG] %v, using euler", err)
		scheme = physics.SchemeEuler
	}
	return physics.Options{
		Dt:           c.SimDt,
		MaxTime:      c.SimMaxTime,
		Scheme:       scheme,
		RecordForces: c.SimRecordForces,
		NaturalAim:   c.SimNaturalAim,
	}
}

// CheckSteps rejects options whose max_time/dt exceeds SimMaxSteps. A
// non-positive SimMaxSteps disables the limit. Invalid dt or max_time values
// are left for the simulator to report.
func (c *Config) CheckSteps(opts physics.Options) error {
	if c.SimMaxSteps <= 0 || !(opts.Dt > 0) {
		return nil
	}
	if steps := opts.MaxTime / opts.Dt; steps > float64(c.SimMaxSteps) {
		return &physics.ConfigError{
			Field:  "max_time",
			Reason: fmt.Sprintf("max_time/dt gives %.0f steps, more than the limit of %d", steps, c.SimMaxSteps),
		}
	}
	return nil
}

// ExperimentsTTL is how long the recent-experiments list survives without a
// save. Zero means no expiry.
func (c *Config) ExperimentsTTL() time.Duration {
	if c.RecentExperimentsTTLHours <= 0 {
		return 0
	}
	return time.Duration(c.RecentExperimentsTTLHours) * time.Hour
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return b
		}
	}
	return defaultValue
}
