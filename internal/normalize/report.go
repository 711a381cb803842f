package normalize

import (
	"github.com/dwarvesf/satscope-backend/internal/model"
	"github.com/dwarvesf/satscope-backend/internal/upstream/mempoolspace"
)

// ReportTransaction tags a raw transaction with its direction relative to the
// given address. The amount is the net effect on the address: outputs paying
// the address minus inputs spending from it. A non-negative net is incoming.
func ReportTransaction(raw *mempoolspace.Transaction, address string) (*model.ReportTransaction, error) {
	if raw.TxID == "" {
		return nil, missingField("mempool", "txid")
	}
	if raw.Status == nil {
		return nil, missingField("mempool", "status")
	}

	var net model.SatAmount
	for _, out := range raw.Vout {
		if out.ScriptPubkeyAddress == address {
			net += model.SatAmount(out.Value)
		}
	}
	for _, in := range raw.Vin {
		if in.Prevout != nil && in.Prevout.ScriptPubkeyAddress == address {
			net -= model.SatAmount(in.Prevout.Value)
		}
	}

	direction := model.DirectionIncoming
	if net < 0 {
		direction = model.DirectionOutgoing
	}

	entry := &model.ReportTransaction{
		TxID:       raw.TxID,
		Direction:  direction,
		AmountSats: net,
		Amount:     net.BTC(),
		Confirmed:  raw.Status.Confirmed,
	}

	if raw.Status.Confirmed {
		entry.BlockHeight = raw.Status.BlockHeight
		if raw.Status.BlockTime != nil {
			ts := isoTime(*raw.Status.BlockTime)
			entry.BlockTime = &ts
		}
	}

	return entry, nil
}
