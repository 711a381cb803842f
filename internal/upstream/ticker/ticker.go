package ticker

import (
	"fmt"

	"github.com/dwarvesf/satscope-backend/internal/upstream"
	"github.com/dwarvesf/satscope-backend/internal/utils/config"
	"github.com/dwarvesf/satscope-backend/internal/utils/logger"
)

const providerName = "ticker"

// Ticker maps currency codes to spot quotes.
type Ticker map[string]Quote

type Quote struct {
	Last   float64 `json:"last"`
	Buy    float64 `json:"buy"`
	Sell   float64 `json:"sell"`
	Symbol string  `json:"symbol"`
}

type ITicker interface {
	GetTicker() (Ticker, error)
}

type client struct {
	baseURL string
	fetcher *upstream.Fetcher
}

func New(cfg *config.AppConfig, logger *logger.Logger) ITicker {
	return &client{
		baseURL: cfg.Upstream.TickerAPIURL,
		fetcher: upstream.NewFetcher(logger),
	}
}

func (c *client) GetTicker() (Ticker, error) {
	url := fmt.Sprintf("%s/ticker", c.baseURL)

	var t Ticker
	if err := c.fetcher.GetJSON(providerName, url, &t); err != nil {
		return nil, err
	}

	return t, nil
}
