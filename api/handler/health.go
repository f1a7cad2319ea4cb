package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fandomstats/kudoscope/dataset"
	"github.com/fandomstats/kudoscope/models"
)

// Health returns a handler for GET /api/v1/health.
//
// Reports degraded when the dataset file cannot be read; the endpoint itself
// keeps answering so probes can tell the two states apart.
func Health(store *dataset.Store, version string, startTime time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "healthy"
		count := 0
		if works, err := store.Works(); err != nil {
			status = "degraded"
		} else {
			count = len(works)
		}

		c.JSON(http.StatusOK, models.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).Round(time.Second).String(),
			Works:   count,
			Dataset: store.Path(),
			Version: version,
		})
	}
}
