package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fandomstats/kudoscope/api/handler"
	"github.com/fandomstats/kudoscope/api/middleware"
	"github.com/fandomstats/kudoscope/config"
	"github.com/fandomstats/kudoscope/dataset"
)

// NewRouter creates a configured Gin engine with all routes and middleware.
//
// Middleware chain:
//
//	Global:  Recovery → RequestLog
//
// Every endpoint is read-only over the dataset file, so there is no auth and
// no rate limiting on this surface.
func NewRouter(store *dataset.Store, cfg *config.Config, version string, startTime time.Time) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLog())

	v1 := r.Group("/api/v1")

	v1.GET("/health", handler.Health(store, version, startTime))
	v1.GET("/works", handler.Works(store))
	v1.GET("/stats", handler.Stats(store))

	return r
}
