package classify

import (
	"time"

	"github.com/dwarvesf/satscope-backend/internal/consts"
	"github.com/dwarvesf/satscope-backend/internal/model"
)

// IsActive reports whether the address has seen more than 10 transactions.
// Exactly 10 is not active.
func IsActive(txCount int64) bool {
	return txCount > consts.ACTIVE_MIN_TX_COUNT
}

// IsWhale reports whether the confirmed balance exceeds 1000 BTC. Exactly
// 1000 BTC is not a whale.
func IsWhale(confirmed model.SatAmount) bool {
	return confirmed > consts.WHALE_MIN_SAT
}

// HasRecentActivity reports whether any transaction confirmed within the last
// 30 days of capture time. Capture time is the single request clock; upstream
// timestamps are only compared against it, never against each other. An
// unconfirmed transaction or one with no block time is not recent.
func HasRecentActivity(txs []model.ReportTransaction, capturedAt time.Time) bool {
	cutoff := capturedAt.Add(-consts.RECENT_ACTIVITY_WINDOW_SECONDS * time.Second)

	for _, tx := range txs {
		if !tx.Confirmed || tx.BlockTime == nil {
			continue
		}
		blockTime, err := time.Parse(time.RFC3339, *tx.BlockTime)
		if err != nil {
			continue
		}
		if blockTime.After(cutoff) {
			return true
		}
	}

	return false
}

// Classify derives all flags for an address report.
func Classify(balance *model.AddressBalance, txs []model.ReportTransaction, capturedAt time.Time) model.Classification {
	return model.Classification{
		IsActive:          IsActive(balance.Transactions.Total),
		IsWhale:           IsWhale(balance.Balance.ConfirmedSats),
		HasRecentActivity: HasRecentActivity(txs, capturedAt),
	}
}
