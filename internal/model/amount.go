package model

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/dwarvesf/satscope-backend/internal/consts"
)

// SatAmount is a monetary amount in satoshi. All balances and fees are
// carried as SatAmount internally; decimal BTC strings are derived at the
// presentation boundary and are never a source of truth.
type SatAmount int64

// BTC renders the amount as a fixed 8-decimal BTC string. Integer math, so
// the rendering is exact for any int64 amount.
func (s SatAmount) BTC() string {
	sats := int64(s)
	sign := ""
	if sats < 0 {
		sign = "-"
		sats = -sats
	}

	return fmt.Sprintf("%s%d.%08d", sign, sats/consts.SATS_PER_BTC, sats%consts.SATS_PER_BTC)
}

// USD values the amount at the given spot price.
func (s SatAmount) USD(priceUSD float64) float64 {
	return btcutil.Amount(s).ToBTC() * priceUSD
}

// FromBTC converts a decimal BTC quantity into satoshi, rounding to the
// nearest satoshi.
func FromBTC(btc float64) (SatAmount, error) {
	amt, err := btcutil.NewAmount(btc)
	if err != nil {
		return 0, err
	}

	return SatAmount(amt), nil
}
