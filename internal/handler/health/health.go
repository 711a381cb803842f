package health

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dwarvesf/satscope-backend/internal/upstream/chainstats"
	"github.com/dwarvesf/satscope-backend/internal/upstream/mempoolspace"
	"github.com/dwarvesf/satscope-backend/internal/upstream/ticker"
	"github.com/dwarvesf/satscope-backend/internal/utils/logger"
)

// Handler implements IHandler
type Handler struct {
	logger     *logger.Logger
	db         *gorm.DB
	mempool    mempoolspace.IMempool
	chainstats chainstats.IChainStats
	ticker     ticker.ITicker
}

func New(logger *logger.Logger, db *gorm.DB, mempool mempoolspace.IMempool, chainstats chainstats.IChainStats, ticker ticker.ITicker) IHandler {
	return &Handler{
		logger:     logger,
		db:         db,
		mempool:    mempool,
		chainstats: chainstats,
		ticker:     ticker,
	}
}

// Basic handles the basic health check endpoint (/healthz)
// @Summary Basic health check
// @Description Returns basic system availability status
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} BasicHealthResponse
// @Router /healthz [get]
func (h *Handler) Basic(c *gin.Context) {
	response := BasicHealthResponse{
		Message: "ok",
	}
	c.JSON(http.StatusOK, response)
}

// Database handles the database health check endpoint
// @Summary Database health check
// @Description Validates database connectivity
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /api/v1/health/db [get]
func (h *Handler) Database(c *gin.Context) {
	start := time.Now()

	response := HealthResponse{
		Timestamp: start,
		Checks:    make(map[string]HealthCheck),
	}

	ctx := context.Background()
	if c.Request != nil {
		ctx = c.Request.Context()
	}

	dbCheck := h.checkDatabase(ctx)
	response.Checks["database"] = dbCheck
	response.DurationMs = time.Since(start).Milliseconds()

	if dbCheck.Status == "healthy" {
		response.Status = "healthy"
		c.JSON(http.StatusOK, response)
	} else {
		response.Status = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, response)
	}
}

// External handles the external API dependencies health check endpoint
// @Summary External dependencies health check
// @Description Validates connectivity of the upstream blockchain providers
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /api/v1/health/external [get]
func (h *Handler) External(c *gin.Context) {
	start := time.Now()

	response := HealthResponse{
		Timestamp: start,
		Checks:    make(map[string]HealthCheck),
	}

	baseCtx := context.Background()
	if c.Request != nil {
		baseCtx = c.Request.Context()
	}
	ctx, cancel := context.WithTimeout(baseCtx, 10*time.Second)
	defer cancel()

	// Check external APIs in parallel
	var wg sync.WaitGroup
	var mu sync.Mutex

	checks := []struct {
		name string
		run  func(context.Context) HealthCheck
	}{
		{"mempool_api", h.checkMempoolAPI},
		{"chain_stats_api", h.checkChainStatsAPI},
		{"ticker_api", h.checkTickerAPI},
	}
	for _, check := range checks {
		check := check
		wg.Add(1)
		go func() {
			defer wg.Done()
			result := check.run(ctx)
			mu.Lock()
			response.Checks[check.name] = result
			mu.Unlock()
		}()
	}

	wg.Wait()
	response.DurationMs = time.Since(start).Milliseconds()

	allHealthy := true
	for _, check := range response.Checks {
		if check.Status != "healthy" {
			allHealthy = false
			break
		}
	}

	if allHealthy {
		response.Status = "healthy"
		c.JSON(http.StatusOK, response)
	} else {
		response.Status = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, response)
	}
}

func (h *Handler) checkDatabase(ctx context.Context) HealthCheck {
	start := time.Now()

	check := HealthCheck{
		Metadata: make(map[string]interface{}),
	}

	if h.db == nil {
		check.Status = "unhealthy"
		check.Error = "database connection not available"
		check.Latency = time.Since(start).Milliseconds()
		return check
	}

	sqlDB, err := h.db.DB()
	if err != nil {
		check.Status = "unhealthy"
		check.Error = fmt.Sprintf("failed to get underlying database: %v", err)
		check.Latency = time.Since(start).Milliseconds()
		return check
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		check.Status = "unhealthy"
		if pingCtx.Err() == context.DeadlineExceeded {
			check.Error = "timeout"
		} else {
			check.Error = err.Error()
		}
		check.Latency = time.Since(start).Milliseconds()
		return check
	}

	stats := sqlDB.Stats()

	check.Status = "healthy"
	check.Latency = time.Since(start).Milliseconds()
	check.Metadata["driver"] = "postgres"
	check.Metadata["connection_pool"] = map[string]interface{}{
		"open_connections": stats.OpenConnections,
		"in_use":           stats.InUse,
		"idle":             stats.Idle,
		"max_open":         stats.MaxOpenConnections,
	}

	return check
}

func (h *Handler) checkMempoolAPI(ctx context.Context) HealthCheck {
	return h.checkUpstream(ctx, "mempool.space", func() error {
		_, err := h.mempool.GetRecommendedFees()
		return err
	})
}

func (h *Handler) checkChainStatsAPI(ctx context.Context) HealthCheck {
	return h.checkUpstream(ctx, "api.blockchain.info", func() error {
		_, err := h.chainstats.GetStats()
		return err
	})
}

func (h *Handler) checkTickerAPI(ctx context.Context) HealthCheck {
	return h.checkUpstream(ctx, "blockchain.info", func() error {
		_, err := h.ticker.GetTicker()
		return err
	})
}

// checkUpstream runs a lightweight read against one provider under a
// per-check timeout.
func (h *Handler) checkUpstream(ctx context.Context, endpoint string, probe func() error) HealthCheck {
	start := time.Now()

	check := HealthCheck{
		Metadata: make(map[string]interface{}),
	}

	checkCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- probe()
	}()

	select {
	case err := <-done:
		if err != nil {
			check.Status = "unhealthy"
			check.Error = err.Error()
		} else {
			check.Status = "healthy"
			check.Metadata["endpoint"] = endpoint
		}
	case <-checkCtx.Done():
		check.Status = "unhealthy"
		if checkCtx.Err() == context.DeadlineExceeded {
			check.Error = "timeout"
		} else {
			check.Error = checkCtx.Err().Error()
		}
	}

	check.Latency = time.Since(start).Milliseconds()
	return check
}
