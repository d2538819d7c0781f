package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pitchlab/backend/internal/config"
	"github.com/pitchlab/backend/internal/physics"
	"github.com/pitchlab/backend/internal/presets"
)

// GetConfig returns the simulation defaults the frontend pre-fills its forms with
func GetConfig(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"options":     cfg.SimulationOptions(),
			"parameters":  presets.DefaultParameters(),
			"pitch_types": presets.Names(),
			"strike_zone": gin.H{
				"half_width":     physics.HalfPlateWidth,
				"bottom":         physics.StrikeZoneBottom,
				"top":            physics.StrikeZoneTop,
				"mound_to_plate": physics.MoundToPlate,
			},
			"recent_experiments_max": cfg.RecentExperimentsMax,
			"stream_max_fps":         cfg.StreamMaxFPS,
		})
	}
}
