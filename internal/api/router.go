package api

import (
	"github.com/Conceptual-Machines/harmonia-api/internal/api/handlers"
	apimiddleware "github.com/Conceptual-Machines/harmonia-api/internal/api/middleware"
	"github.com/Conceptual-Machines/harmonia-api/internal/config"
	"github.com/Conceptual-Machines/harmonia-api/internal/theory"
	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg *config.Config, version string) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking())

	// CORS middleware
	router.Use(apimiddleware.CORS(cfg.AllowedOrigins))

	// Health check
	router.GET("/health", handlers.HealthCheck)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(version)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	// Analysis API v1
	v1 := router.Group("/api/v1")
	{
		analyzeHandler := handlers.NewAnalyzeHandler(theory.NewAnalyzer(cfg.GlobalKey))
		v1.POST("/analyze", analyzeHandler.Analyze)

		theoryHandler := handlers.NewTheoryHandler()
		v1.POST("/chords/parse", theoryHandler.ParseChord)
		v1.GET("/modes", theoryHandler.ListModes)
		v1.GET("/scales/:tonic", theoryHandler.GetScales)
	}

	return router
}
