package monitoring

import (
	"sync"

	"github.com/dwarvesf/satscope-backend/internal/upstream/chainstats"
	"github.com/dwarvesf/satscope-backend/internal/upstream/mempoolspace"
	"github.com/dwarvesf/satscope-backend/internal/upstream/ticker"
	"github.com/dwarvesf/satscope-backend/internal/utils/logger"
)

// Probe checks every upstream provider with a cheap read and feeds the
// availability gauge. Driven by cron; never blocks a user request.
type Probe struct {
	mempool    mempoolspace.IMempool
	chainstats chainstats.IChainStats
	ticker     ticker.ITicker
	metrics    *Metrics
	logger     *logger.Logger
}

func NewProbe(
	mempool mempoolspace.IMempool,
	chainstats chainstats.IChainStats,
	ticker ticker.ITicker,
	metrics *Metrics,
	logger *logger.Logger,
) *Probe {
	return &Probe{
		mempool:    mempool,
		chainstats: chainstats,
		ticker:     ticker,
		metrics:    metrics,
		logger:     logger,
	}
}

func (p *Probe) Run() {
	checks := []struct {
		provider string
		check    func() error
	}{
		{"mempool", func() error {
			_, err := p.mempool.GetRecommendedFees()
			return err
		}},
		{"chainstats", func() error {
			_, err := p.chainstats.GetStats()
			return err
		}},
		{"ticker", func() error {
			_, err := p.ticker.GetTicker()
			return err
		}},
	}

	var wg sync.WaitGroup
	for _, c := range checks {
		wg.Add(1)
		go func(provider string, check func() error) {
			defer wg.Done()
			err := check()
			p.metrics.SetUpstreamUp(provider, err == nil)
			if err != nil {
				p.logger.Info("[Probe] upstream unavailable", map[string]string{
					"provider": provider,
					"error":    err.Error(),
				})
			}
		}(c.provider, c.check)
	}
	wg.Wait()
}
