package consts

const (
	BTC_DECIMALS  = 8
	SATS_PER_BTC  = 100_000_000
	WHALE_MIN_SAT = 100_000_000_000 // 1000 BTC

	ACTIVE_MIN_TX_COUNT = 10

	RECENT_ACTIVITY_WINDOW_SECONDS = 86_400 * 30

	// Reference transaction size used for fee cost estimates (a typical
	// 1-in 2-out P2WPKH spend).
	REFERENCE_TX_VBYTES = 225
)
