package model

// BlockSummary is the normalized view of a mined block. Miner defaults to
// "Unknown" when the upstream has no pool attribution; Reward and TotalFees
// are BTC decimal strings and stay null when the upstream omits them.
type BlockSummary struct {
	Height    int64   `json:"height"`
	Hash      string  `json:"hash"`
	Timestamp string  `json:"timestamp"`
	TxCount   int64   `json:"txCount"`
	Size      int64   `json:"size"`
	Weight    int64   `json:"weight"`
	Miner     string  `json:"miner"`
	Reward    *string `json:"reward"`
	TotalFees *string `json:"totalFees"`
}

// BlockList is the payload of the recent-blocks query.
type BlockList struct {
	Blocks    []BlockSummary `json:"blocks"`
	Count     int            `json:"count"`
	FetchedAt string         `json:"fetchedAt"`
}
