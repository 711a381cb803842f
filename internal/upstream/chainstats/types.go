package chainstats

// Stats mirrors the provider's network-wide statistics document. HashRate is
// in GH/s as reported upstream.
type Stats struct {
	NBlocksTotal         int64   `json:"n_blocks_total"`
	Difficulty           float64 `json:"difficulty"`
	HashRate             float64 `json:"hash_rate"`
	MarketPriceUSD       float64 `json:"market_price_usd"`
	MinutesBetweenBlocks float64 `json:"minutes_between_blocks"`
	Timestamp            int64   `json:"timestamp"`
}
