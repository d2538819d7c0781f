package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pitchlab/backend/internal/compare"
	"github.com/pitchlab/backend/internal/config"
	"github.com/pitchlab/backend/internal/experiments"
	"github.com/pitchlab/backend/internal/physics"
	"github.com/pitchlab/backend/internal/presets"
)

// Each side is either fresh parameters or the id of a saved experiment.
type compareRequest struct {
	A       json.RawMessage `json:"a"`
	B       json.RawMessage `json:"b"`
	AID     string          `json:"a_id"`
	BID     string          `json:"b_id"`
	Options physics.Options `json:"options"`
	Index   *int            `json:"index"`
}

// side decodes fresh parameters over the reference defaults. ok is false when
// the side was not given.
func side(raw json.RawMessage) (params physics.PitchParameters, ok bool, err error) {
	if len(raw) == 0 || string(raw) == "null" {
		return params, false, nil
	}
	params = presets.DefaultParameters()
	if err := json.Unmarshal(raw, &params); err != nil {
		return params, false, err
	}
	return params, true, nil
}

// Compare runs or loads two pitches and returns their summary table. When
// index is set the force vectors at that replay step are compared too, and
// fresh runs record forces for it.
func Compare(store experiments.Store, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := compareRequest{Options: cfg.SimulationOptions()}
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		pa, hasA, err := side(req.A)
		if err != nil {
			badRequest(c, err)
			return
		}
		pb, hasB, err := side(req.B)
		if err != nil {
			badRequest(c, err)
			return
		}
		if (!hasA && req.AID == "") || (!hasB && req.BID == "") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Both sides need params (a, b) or an experiment id (a_id, b_id)"})
			return
		}
		if err := cfg.CheckSteps(req.Options); err != nil {
			respondError(c, err)
			return
		}
		if req.Index != nil {
			req.Options.RecordForces = true
		}

		ctx := c.Request.Context()
		var ra, rb physics.SimulationResult
		if req.AID == "" && req.BID == "" {
			ra, rb, err = compare.RunPair(ctx, pa, pb, req.Options)
		} else {
			ra, err = resolveRun(ctx, store, req.AID, pa, req.Options)
			if err == nil {
				rb, err = resolveRun(ctx, store, req.BID, pb, req.Options)
			}
		}
		if err != nil {
			respondError(c, err)
			return
		}

		resp := gin.H{
			"a":          ra,
			"b":          rb,
			"comparison": compare.Compare(ra, rb),
		}
		if req.Index != nil {
			forces, err := compare.ForcesAt(ra, rb, *req.Index)
			if err != nil {
				respondError(c, err)
				return
			}
			resp["forces"] = forces
		}

		c.JSON(http.StatusOK, resp)
	}
}

func resolveRun(ctx context.Context, store experiments.Store, id string, params physics.PitchParameters, opts physics.Options) (physics.SimulationResult, error) {
	if id != "" {
		e, err := store.Get(ctx, id)
		if err != nil {
			return physics.SimulationResult{}, err
		}
		return e.Result, nil
	}
	return physics.Simulate(params, opts)
}
