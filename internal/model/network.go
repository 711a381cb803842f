package model

// NetworkSnapshot aggregates network-wide state from two providers: height,
// difficulty, hashrate and spot price from the chain-stats provider; fee
// tiers, mempool and the latest block from the mempool provider. FetchedAt is
// capture time, not provider time.
type NetworkSnapshot struct {
	BlockHeight int64           `json:"blockHeight"`
	Difficulty  float64         `json:"difficulty"`
	HashRate24h float64         `json:"hashrate24h"`
	Mempool     MempoolSnapshot `json:"mempool"`
	Fees        FeeTiers        `json:"fees"`
	PriceUSD    float64         `json:"priceUSD"`
	LatestBlock *BlockSummary   `json:"latestBlock"`
	FetchedAt   string          `json:"fetchedAt"`
}

type MempoolSnapshot struct {
	TxCount int64 `json:"txCount"`
	VSize   int64 `json:"vsize"`
}

// FeeTiers holds the raw recommended fee rates in sat/vByte.
type FeeTiers struct {
	Fastest  float64 `json:"fastest"`
	HalfHour float64 `json:"halfHour"`
	Hour     float64 `json:"hour"`
	Economy  float64 `json:"economy"`
	Minimum  float64 `json:"minimum"`
}
