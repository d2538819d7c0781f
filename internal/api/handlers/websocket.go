package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/pitchlab/backend/internal/config"
	"github.com/pitchlab/backend/internal/ws"
)

// HandleSimulationStream streams a simulation step by step over a WebSocket
func HandleSimulationStream(cfg *config.Config) gin.HandlerFunc {
	return ws.HandleStream(cfg)
}
