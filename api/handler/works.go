package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fandomstats/kudoscope/analyzer"
	"github.com/fandomstats/kudoscope/dataset"
	"github.com/fandomstats/kudoscope/models"
)

// Works returns a handler for GET /api/v1/works.
//
// Query parameters: fandom (case-insensitive match on the searched term),
// sort (kudos|hits|words, descending), limit (max records returned).
func Works(store *dataset.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		works, err := store.Works()
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
				Error: "dataset unavailable: " + err.Error(),
			})
			return
		}

		if fandom := c.Query("fandom"); fandom != "" {
			var filtered []models.Work
			for _, w := range works {
				if strings.EqualFold(w.FandomSearched, fandom) {
					filtered = append(filtered, w)
				}
			}
			works = filtered
		}

		if by := c.Query("sort"); by != "" {
			if !analyzer.ValidMetric(by) {
				c.JSON(http.StatusBadRequest, models.ErrorResponse{
					Error: "sort must be one of kudos, hits, words",
				})
				return
			}
			works = analyzer.TopWorks(works, by, 0)
		}

		if raw := c.Query("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil || limit < 1 {
				c.JSON(http.StatusBadRequest, models.ErrorResponse{
					Error: "limit must be a positive integer",
				})
				return
			}
			if limit < len(works) {
				works = works[:limit]
			}
		}

		if works == nil {
			works = []models.Work{}
		}
		c.JSON(http.StatusOK, models.WorksResponse{Count: len(works), Works: works})
	}
}
