package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pitchlab/backend/internal/experiments"
)

// ListExperiments returns the recent experiments, newest first
func ListExperiments(store experiments.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := store.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"experiments": list,
			"count":       len(list),
		})
	}
}

func GetExperiment(store experiments.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		e, err := store.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, e)
	}
}

func DeleteExperiment(store experiments.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := store.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		log.Printf("[EXPERIMENTS] Deleted %s", id)
		c.JSON(http.StatusOK, gin.H{"deleted": id})
	}
}

// ClearExperiments removes every saved experiment
func ClearExperiments(store experiments.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := store.Count(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		if err := store.DeleteAll(c.Request.Context()); err != nil {
			respondError(c, err)
			return
		}
		log.Printf("[EXPERIMENTS] Cleared %d experiments", n)
		c.JSON(http.StatusOK, gin.H{"deleted": n})
	}
}
