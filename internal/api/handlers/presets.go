package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pitchlab/backend/internal/presets"
)

// ListPresets returns every named pitch type.
func ListPresets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"presets": presets.All()})
}

// GetPreset returns one pitch type. With ?power=1..10 the launch speed is
// taken from the simple-mode throw power instead of the preset.
func GetPreset(c *gin.Context) {
	name := presets.PitchType(c.Param("name"))
	p, err := presets.Get(name)
	if err != nil {
		respondError(c, err)
		return
	}

	if raw := c.Query("power"); raw != "" {
		power, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "power must be an integer between 1 and 10"})
			return
		}
		if p.Params, err = presets.FromSimpleInputs(name, power); err != nil {
			respondError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, p)
}
