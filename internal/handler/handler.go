package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	analyticsService "github.com/dwarvesf/satscope-backend/internal/analytics"
	"github.com/dwarvesf/satscope-backend/internal/handler/analytics"
	"github.com/dwarvesf/satscope-backend/internal/handler/health"
	"github.com/dwarvesf/satscope-backend/internal/handler/metrics"
	"github.com/dwarvesf/satscope-backend/internal/handler/query"
	queryService "github.com/dwarvesf/satscope-backend/internal/query"
	"github.com/dwarvesf/satscope-backend/internal/upstream/chainstats"
	"github.com/dwarvesf/satscope-backend/internal/upstream/mempoolspace"
	"github.com/dwarvesf/satscope-backend/internal/upstream/ticker"
	"github.com/dwarvesf/satscope-backend/internal/utils/logger"
)

type Handler struct {
	QueryHandler     query.IHandler
	AnalyticsHandler analytics.IHandler
	HealthHandler    health.IHandler
	MetricsHandler   *metrics.MetricsHandler
}

func New(logger *logger.Logger,
	querySvc queryService.IQuery,
	recorder analyticsService.IRecorder,
	db *gorm.DB,
	mempool mempoolspace.IMempool,
	chainStats chainstats.IChainStats,
	tickerClient ticker.ITicker,
	metricsRegistry *prometheus.Registry) *Handler {
	return &Handler{
		QueryHandler:     query.New(querySvc, logger),
		AnalyticsHandler: analytics.New(recorder, logger),
		HealthHandler:    health.New(logger, db, mempool, chainStats, tickerClient),
		MetricsHandler:   metrics.NewMetricsHandler(metricsRegistry),
	}
}
