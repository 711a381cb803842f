package normalize

import (
	"math"
	"time"

	"github.com/dwarvesf/satscope-backend/internal/model"
	"github.com/dwarvesf/satscope-backend/internal/upstream/mempoolspace"
)

const maxSideAddresses = 5

// TransactionDetail maps a raw provider transaction onto the domain entity.
// vsize is ceil(weight/4); fee rate is sat/vByte rounded to 2 decimals.
func TransactionDetail(raw *mempoolspace.Transaction, fetchedAt string) (*model.TransactionDetail, error) {
	if raw.TxID == "" {
		return nil, missingField("mempool", "txid")
	}
	if raw.Status == nil {
		return nil, missingField("mempool", "status")
	}
	if raw.Weight <= 0 {
		return nil, missingField("mempool", "weight")
	}

	vsize := (raw.Weight + 3) / 4
	feeRate := RoundTo2(float64(raw.Fee) / float64(vsize))

	detail := &model.TransactionDetail{
		TxID:      raw.TxID,
		Confirmed: raw.Status.Confirmed,
		Size:      raw.Size,
		Weight:    raw.Weight,
		VSize:     vsize,
		FeeSats:   model.SatAmount(raw.Fee),
		FeeRate:   feeRate,
		Inputs:    inputSide(raw.Vin),
		Outputs:   outputSide(raw.Vout),
		FetchedAt: fetchedAt,
	}

	if raw.Status.Confirmed {
		detail.BlockHeight = raw.Status.BlockHeight
		if raw.Status.BlockTime != nil {
			ts := isoTime(*raw.Status.BlockTime)
			detail.BlockTime = &ts
		}
	}

	return detail, nil
}

func inputSide(vins []mempoolspace.Vin) model.TxSide {
	side := model.TxSide{
		Count:     len(vins),
		Addresses: []string{},
	}
	for _, in := range vins {
		if in.Prevout == nil {
			// coinbase inputs and unresolved prevouts carry no address
			continue
		}
		side.TotalSats += model.SatAmount(in.Prevout.Value)
		if in.Prevout.ScriptPubkeyAddress != "" && len(side.Addresses) < maxSideAddresses {
			side.Addresses = append(side.Addresses, in.Prevout.ScriptPubkeyAddress)
		}
	}

	return side
}

func outputSide(vouts []mempoolspace.Vout) model.TxSide {
	side := model.TxSide{
		Count:     len(vouts),
		Addresses: []string{},
	}
	for _, out := range vouts {
		side.TotalSats += model.SatAmount(out.Value)
		if out.ScriptPubkeyAddress != "" && len(side.Addresses) < maxSideAddresses {
			side.Addresses = append(side.Addresses, out.ScriptPubkeyAddress)
		}
	}

	return side
}

// RoundTo2 rounds to 2 decimal places, half away from zero.
func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

func isoTime(unixSeconds int64) string {
	return time.Unix(unixSeconds, 0).UTC().Format(time.RFC3339)
}
