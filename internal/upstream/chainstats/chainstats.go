package chainstats

import (
	"fmt"

	"github.com/dwarvesf/satscope-backend/internal/upstream"
	"github.com/dwarvesf/satscope-backend/internal/utils/config"
	"github.com/dwarvesf/satscope-backend/internal/utils/logger"
)

const providerName = "chainstats"

type chainstats struct {
	baseURL string
	fetcher *upstream.Fetcher
}

func New(cfg *config.AppConfig, logger *logger.Logger) IChainStats {
	return &chainstats{
		baseURL: cfg.Upstream.ChainStatsAPIURL,
		fetcher: upstream.NewFetcher(logger),
	}
}

func (c *chainstats) GetStats() (*Stats, error) {
	url := fmt.Sprintf("%s/stats", c.baseURL)

	var stats Stats
	if err := c.fetcher.GetJSON(providerName, url, &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}
