package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pitchlab/backend/internal/config"
	"github.com/pitchlab/backend/internal/experiments"
	"github.com/pitchlab/backend/internal/physics"
	"github.com/pitchlab/backend/internal/presets"
)

type simulateRequest struct {
	Params  physics.PitchParameters `json:"params"`
	Options physics.Options         `json:"options"`
	Save    bool                    `json:"save"`
	Name    string                  `json:"name"`
}

// Simulate runs one pitch. Parameters and options omitted from the body keep
// the reference and configured defaults. With save=true the run is added to the recent experiments.
func Simulate(store experiments.Store, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := simulateRequest{Params: presets.DefaultParameters(), Options: cfg.SimulationOptions()}
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		if err := cfg.CheckSteps(req.Options); err != nil {
			respondError(c, err)
			return
		}

		result, err := physics.Simulate(req.Params, req.Options)
		if err != nil {
			respondError(c, err)
			return
		}

		resp := gin.H{"result": result}
		if req.Save {
			e, err := store.Save(c.Request.Context(), req.Name, req.Params, result)
			if err != nil {
				respondError(c, err)
				return
			}
			log.Printf("[SIM] Saved experiment %s (%q)", e.ID, e.Name)
			c.Header("X-Experiment-ID", e.ID)
			resp["experiment_id"] = e.ID
		}

		c.JSON(http.StatusOK, resp)
	}
}
