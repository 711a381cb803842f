package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSatAmount_BTC(t *testing.T) {
	assert.Equal(t, "3.00000000", SatAmount(300000000).BTC())
	assert.Equal(t, "0.00000001", SatAmount(1).BTC())
	assert.Equal(t, "0.00000000", SatAmount(0).BTC())
	assert.Equal(t, "1000.00000000", SatAmount(100_000_000_000).BTC())
	assert.Equal(t, "21000000.00000000", SatAmount(2_100_000_000_000_000).BTC())

	// negative balances from inconsistent upstream data are rendered as-is
	assert.Equal(t, "-0.50000000", SatAmount(-50000000).BTC())
}

func TestSatAmount_USD(t *testing.T) {
	assert.InDelta(t, 150000.0, SatAmount(300000000).USD(50000), 0.01)
	assert.InDelta(t, 0.0, SatAmount(0).USD(50000), 0.0001)
}

func TestFromBTC_RoundTrip(t *testing.T) {
	sats, err := FromBTC(3.0)
	assert.NoError(t, err)
	assert.Equal(t, SatAmount(300000000), sats)
	assert.Equal(t, "3.00000000", sats.BTC())
}
