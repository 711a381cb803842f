package mempoolspace

import (
	"fmt"

	"github.com/dwarvesf/satscope-backend/internal/upstream"
	"github.com/dwarvesf/satscope-backend/internal/utils/config"
	"github.com/dwarvesf/satscope-backend/internal/utils/logger"
)

const providerName = "mempool"

type mempool struct {
	baseURL string
	fetcher *upstream.Fetcher
}

func New(cfg *config.AppConfig, logger *logger.Logger) IMempool {
	return &mempool{
		baseURL: cfg.Upstream.MempoolAPIURL,
		fetcher: upstream.NewFetcher(logger),
	}
}

func (c *mempool) GetRecommendedFees() (*RecommendedFees, error) {
	url := fmt.Sprintf("%s/v1/fees/recommended", c.baseURL)

	var fees RecommendedFees
	if err := c.fetcher.GetJSON(providerName, url, &fees); err != nil {
		return nil, err
	}

	return &fees, nil
}

func (c *mempool) GetMempoolInfo() (*MempoolInfo, error) {
	url := fmt.Sprintf("%s/mempool", c.baseURL)

	var info MempoolInfo
	if err := c.fetcher.GetJSON(providerName, url, &info); err != nil {
		return nil, err
	}

	return &info, nil
}

// GetRecentBlocks returns the newest blocks first, 15 per page.
func (c *mempool) GetRecentBlocks() ([]Block, error) {
	url := fmt.Sprintf("%s/v1/blocks", c.baseURL)

	var blocks []Block
	if err := c.fetcher.GetJSON(providerName, url, &blocks); err != nil {
		return nil, err
	}

	return blocks, nil
}

func (c *mempool) GetAddress(address string) (*Address, error) {
	url := fmt.Sprintf("%s/address/%s", c.baseURL, address)

	var addr Address
	if err := c.fetcher.GetJSON(providerName, url, &addr); err != nil {
		return nil, err
	}

	return &addr, nil
}

func (c *mempool) GetAddressTxs(address string) ([]Transaction, error) {
	url := fmt.Sprintf("%s/address/%s/txs", c.baseURL, address)

	var txs []Transaction
	if err := c.fetcher.GetJSON(providerName, url, &txs); err != nil {
		return nil, err
	}

	return txs, nil
}

func (c *mempool) GetTransaction(txid string) (*Transaction, error) {
	url := fmt.Sprintf("%s/tx/%s", c.baseURL, txid)

	var tx Transaction
	if err := c.fetcher.GetJSON(providerName, url, &tx); err != nil {
		return nil, err
	}

	return &tx, nil
}
