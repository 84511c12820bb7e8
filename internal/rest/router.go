package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/tourhive/tourhive/internal/api/v1"
	"github.com/tourhive/tourhive/internal/config"
	"github.com/tourhive/tourhive/internal/logger"
	"github.com/tourhive/tourhive/internal/rest/middleware"
	"github.com/tourhive/tourhive/internal/service"
)

// Handlers groups the HTTP handlers wired into the router.
type Handlers struct {
	Dashboard *v1.DashboardHandler
}

// NewHandlers builds all handlers from the service layer.
func NewHandlers(params service.ServiceParams, log *logger.Logger) Handlers {
	return Handlers{
		Dashboard: v1.NewDashboardHandler(service.NewDashboardService(params), log),
	}
}

// NewRouter assembles the gin engine with the standard middleware chain.
func NewRouter(cfg *config.Configuration, log *logger.Logger, handlers Handlers) *gin.Engine {
	if cfg.Deployment.Mode == config.ModeProd {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.RecoveryWithWriter(log.GetGinLogger()),
		middleware.SentryMiddleware(cfg),
		middleware.RequestIDMiddleware,
		middleware.LoggingMiddleware(log),
		middleware.ErrorHandlerMiddleware,
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	private := router.Group("/v1")
	private.Use(
		middleware.AuthMiddleware(cfg),
		middleware.SentryUserContextMiddleware,
		middleware.RateLimitMiddleware(50, 100),
	)
	private.GET("/dashboard", handlers.Dashboard.GetDashboard)
	private.GET("/dashboard/trend", handlers.Dashboard.GetBookingTrend)

	return router
}
