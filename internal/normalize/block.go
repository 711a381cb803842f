package normalize

import (
	"github.com/dwarvesf/satscope-backend/internal/model"
	"github.com/dwarvesf/satscope-backend/internal/upstream/mempoolspace"
)

// BlockSummary maps a raw provider block onto the domain entity. Pool
// attribution defaults to "Unknown"; reward and fee totals stay null when the
// provider omits them.
func BlockSummary(raw *mempoolspace.Block) (*model.BlockSummary, error) {
	if raw.ID == "" {
		return nil, missingField("mempool", "id")
	}
	if raw.Timestamp <= 0 {
		return nil, missingField("mempool", "timestamp")
	}

	summary := &model.BlockSummary{
		Height:    raw.Height,
		Hash:      raw.ID,
		Timestamp: isoTime(raw.Timestamp),
		TxCount:   raw.TxCount,
		Size:      raw.Size,
		Weight:    raw.Weight,
		Miner:     "Unknown",
	}

	if raw.Extras != nil {
		if raw.Extras.Pool != nil && raw.Extras.Pool.Name != "" {
			summary.Miner = raw.Extras.Pool.Name
		}
		if raw.Extras.Reward != nil {
			reward := model.SatAmount(*raw.Extras.Reward).BTC()
			summary.Reward = &reward
		}
		if raw.Extras.TotalFees != nil {
			fees := model.SatAmount(*raw.Extras.TotalFees).BTC()
			summary.TotalFees = &fees
		}
	}

	return summary, nil
}
