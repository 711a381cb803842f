package normalize

import (
	"github.com/dwarvesf/satscope-backend/internal/model"
	"github.com/dwarvesf/satscope-backend/internal/upstream/chainstats"
	"github.com/dwarvesf/satscope-backend/internal/upstream/mempoolspace"
	"github.com/dwarvesf/satscope-backend/internal/upstream/ticker"
)

// NetworkStats validates the chain-stats document. Height and difficulty come
// from this provider only; fee tiers come from the mempool provider.
func NetworkStats(raw *chainstats.Stats) (*chainstats.Stats, error) {
	if raw.NBlocksTotal <= 0 {
		return nil, missingField("chainstats", "n_blocks_total")
	}
	if raw.Difficulty <= 0 {
		return nil, missingField("chainstats", "difficulty")
	}

	return raw, nil
}

func FeeTiers(raw *mempoolspace.RecommendedFees) model.FeeTiers {
	return model.FeeTiers{
		Fastest:  raw.FastestFee,
		HalfHour: raw.HalfHourFee,
		Hour:     raw.HourFee,
		Economy:  raw.EconomyFee,
		Minimum:  raw.MinimumFee,
	}
}

// USDPrice extracts the USD spot quote from a ticker document.
func USDPrice(raw ticker.Ticker) (float64, error) {
	quote, ok := raw["USD"]
	if !ok {
		return 0, missingField("ticker", "USD")
	}

	return quote.Last, nil
}
