// Package api assembles the HTTP surface: parameter binding, the
// query-string form of a run, and band/diagnostic payloads for charting
// and diagnostics views. The simulation engine itself stays a pure
// function of explicit inputs; everything clock-derived lives here.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/nestegg/wealth-projector/internal/api/handlers"
	"github.com/nestegg/wealth-projector/internal/api/middleware"
	"github.com/nestegg/wealth-projector/internal/config"
)

// NewRouter builds the gin router with middleware and routes.
func NewRouter(settings config.ServerSettings) *gin.Engine {
	if settings.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.CORS(settings.AllowedOrigins))
	router.Use(middleware.ErrorHandler())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	simHandler := handlers.NewSimulationHandler()
	v1 := router.Group("/api/v1")
	{
		v1.POST("/simulate", simHandler.Simulate)
		v1.GET("/simulate", simHandler.SimulateQuery)
		v1.GET("/simulate/paths", simHandler.RepresentativePaths)
	}

	return router
}
