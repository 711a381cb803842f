package normalize

import (
	"github.com/dwarvesf/satscope-backend/internal/model"
	"github.com/dwarvesf/satscope-backend/internal/upstream/mempoolspace"
)

// AddressBalance maps the provider's chain/mempool stat pair onto the domain
// balance entity. Confirmed balance is funded minus spent; a negative result
// means the upstream data is inconsistent and is carried as-is.
func AddressBalance(raw *mempoolspace.Address, fetchedAt string) (*model.AddressBalance, error) {
	if raw.Address == "" {
		return nil, missingField("mempool", "address")
	}
	if raw.ChainStats == nil {
		return nil, missingField("mempool", "chain_stats")
	}
	if raw.MempoolStats == nil {
		return nil, missingField("mempool", "mempool_stats")
	}

	confirmed := model.SatAmount(raw.ChainStats.FundedTxoSum - raw.ChainStats.SpentTxoSum)
	unconfirmed := model.SatAmount(raw.MempoolStats.FundedTxoSum - raw.MempoolStats.SpentTxoSum)
	total := confirmed + unconfirmed

	return &model.AddressBalance{
		Address: raw.Address,
		Balance: model.BalanceBreakdown{
			Confirmed:       confirmed.BTC(),
			Unconfirmed:     unconfirmed.BTC(),
			Total:           total.BTC(),
			ConfirmedSats:   confirmed,
			UnconfirmedSats: unconfirmed,
			TotalSats:       total,
		},
		Transactions: model.TxCounts{
			Confirmed:   raw.ChainStats.TxCount,
			Unconfirmed: raw.MempoolStats.TxCount,
			Total:       raw.ChainStats.TxCount + raw.MempoolStats.TxCount,
		},
		Lifetime: model.LifetimeTotals{
			Received:     model.SatAmount(raw.ChainStats.FundedTxoSum).BTC(),
			Spent:        model.SatAmount(raw.ChainStats.SpentTxoSum).BTC(),
			ReceivedSats: model.SatAmount(raw.ChainStats.FundedTxoSum),
			SpentSats:    model.SatAmount(raw.ChainStats.SpentTxoSum),
		},
		FetchedAt: fetchedAt,
	}, nil
}
