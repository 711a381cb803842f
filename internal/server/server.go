package server

import (
	"github.com/robfig/cron/v3"

	"github.com/dwarvesf/satscope-backend/internal/analytics"
	"github.com/dwarvesf/satscope-backend/internal/handler"
	"github.com/dwarvesf/satscope-backend/internal/monitoring"
	"github.com/dwarvesf/satscope-backend/internal/query"
	"github.com/dwarvesf/satscope-backend/internal/registry"
	pgstore "github.com/dwarvesf/satscope-backend/internal/store/postgres"
	"github.com/dwarvesf/satscope-backend/internal/transport/http"
	"github.com/dwarvesf/satscope-backend/internal/upstream/chainstats"
	"github.com/dwarvesf/satscope-backend/internal/upstream/mempoolspace"
	"github.com/dwarvesf/satscope-backend/internal/upstream/ticker"
	"github.com/dwarvesf/satscope-backend/internal/utils/config"
	"github.com/dwarvesf/satscope-backend/internal/utils/logger"
)

func Init() {
	appConfig := config.New()
	logger := logger.New(appConfig.Environment)

	// analytics degrades to a no-op recorder when postgres is unreachable;
	// queries must keep serving either way
	recorder := analytics.NewNoop()
	db, err := pgstore.New(appConfig, logger)
	if err != nil {
		logger.Error("[Init][pgstore.New] falling back to no-op analytics", map[string]string{
			"error": err.Error(),
		})
	} else {
		recorder = analytics.New(db, logger)
	}

	mempoolClient := mempoolspace.New(appConfig, logger)
	chainStatsClient := chainstats.New(appConfig, logger)
	tickerClient := ticker.New(appConfig, logger)

	querySvc := query.New(mempoolClient, chainStatsClient, tickerClient, logger)

	metrics := monitoring.NewMetrics()

	h := handler.New(logger, querySvc, recorder, db, mempoolClient, chainStatsClient, tickerClient, metrics.Registry())

	reg := registry.New(recorder, logger)
	reg.Register(queryEntries(h)...)

	probe := monitoring.NewProbe(mempoolClient, chainStatsClient, tickerClient, metrics, logger)
	c := cron.New()
	c.AddFunc("@every 2m", probe.Run)
	c.Start()

	httpServer := http.NewHttpServer(appConfig, logger, h, reg, metrics)

	httpServer.Run(":" + appConfig.ApiServer.Port)
}

// queryEntries declares the metered catalog: one entry per public query with
// its stable key, price in cents and input schema.
func queryEntries(h *handler.Handler) []registry.Entry {
	return []registry.Entry{
		{
			Key:         "bitcoin_overview",
			Description: "Current Bitcoin network snapshot: height, difficulty, hashrate, mempool, fee tiers, spot price and latest block",
			PriceCents:  2,
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
			Handle: h.QueryHandler.Overview,
		},
		{
			Key:         "address_balance",
			Description: "Confirmed, unconfirmed and total balance of a Bitcoin address with lifetime totals",
			PriceCents:  1,
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"address": map[string]any{"type": "string", "description": "Bitcoin address"},
				},
				"required": []string{"address"},
			},
			Handle: h.QueryHandler.AddressBalance,
		},
		{
			Key:         "transaction_detail",
			Description: "Decoded Bitcoin transaction: confirmation status, size, fee, fee rate, inputs and outputs",
			PriceCents:  1,
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"txid": map[string]any{"type": "string", "description": "Transaction id (hex)"},
				},
				"required": []string{"txid"},
			},
			Handle: h.QueryHandler.TransactionDetail,
		},
		{
			Key:         "fee_estimates",
			Description: "Fee tiers with confirmation ETAs, mempool pressure and a reference transaction cost",
			PriceCents:  1,
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
			Handle: h.QueryHandler.FeeEstimates,
		},
		{
			Key:         "recent_blocks",
			Description: "Most recently mined blocks with miner attribution, reward and total fees",
			PriceCents:  1,
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"limit": map[string]any{"type": "integer", "description": "Number of blocks (1-15, default 10)"},
				},
			},
			Handle: h.QueryHandler.RecentBlocks,
		},
		{
			Key:         "address_report",
			Description: "Full address report: balance, activity stats, whale/active/recency classification, recent transactions and USD valuation",
			PriceCents:  5,
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"address": map[string]any{"type": "string", "description": "Bitcoin address"},
				},
				"required": []string{"address"},
			},
			Handle: h.QueryHandler.AddressReport,
		},
	}
}
