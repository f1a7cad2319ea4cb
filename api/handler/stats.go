package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fandomstats/kudoscope/analyzer"
	"github.com/fandomstats/kudoscope/dataset"
	"github.com/fandomstats/kudoscope/models"
)

// Stats returns a handler for GET /api/v1/stats. The summary is recomputed
// on every request from the store's current dataset.
func Stats(store *dataset.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		works, err := store.Works()
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
				Error: "dataset unavailable: " + err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, analyzer.Summarize(works))
	}
}
