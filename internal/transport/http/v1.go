package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dwarvesf/satscope-backend/internal/handler"
	"github.com/dwarvesf/satscope-backend/internal/registry"
	"github.com/dwarvesf/satscope-backend/internal/utils/config"
	"github.com/dwarvesf/satscope-backend/internal/utils/logger"
)

const queryBasePath = "/api/v1/query"

func loadV1Routes(r *gin.Engine, h *handler.Handler, reg *registry.Registry, appConfig *config.AppConfig, logger *logger.Logger) {
	v1 := r.Group("/api/v1")

	query := v1.Group("/query")
	{
		reg.Mount(query)
	}

	analytics := v1.Group("/analytics")
	{
		analytics.GET("/summary", h.AnalyticsHandler.Summary)
		analytics.GET("/transactions", h.AnalyticsHandler.Transactions)
		analytics.GET("/export", h.AnalyticsHandler.ExportCSV)
	}

	health := v1.Group("/health")
	{
		health.GET("/db", h.HealthHandler.Database)
		health.GET("/external", h.HealthHandler.External)
	}

	// health check
	r.GET("/healthz", h.HealthHandler.Basic)

	r.GET("/metrics", h.MetricsHandler.Handler())

	// registration document for gateways fronting the metered queries
	r.GET("/.well-known/queries.json", func(c *gin.Context) {
		c.JSON(http.StatusOK, reg.Document(queryBasePath))
	})
}
