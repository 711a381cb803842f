package mempoolspace

// RecommendedFees mirrors /v1/fees/recommended. Rates are sat/vByte.
type RecommendedFees struct {
	FastestFee  float64 `json:"fastestFee"`
	HalfHourFee float64 `json:"halfHourFee"`
	HourFee     float64 `json:"hourFee"`
	EconomyFee  float64 `json:"economyFee"`
	MinimumFee  float64 `json:"minimumFee"`
}

// MempoolInfo mirrors /mempool. VSize is in vBytes, TotalFee in sats.
type MempoolInfo struct {
	Count    int64 `json:"count"`
	VSize    int64 `json:"vsize"`
	TotalFee int64 `json:"total_fee"`
}

// Block mirrors one entry of /v1/blocks. Extras is only present on the v1
// endpoint and may be partially filled for very fresh blocks.
type Block struct {
	ID        string       `json:"id"`
	Height    int64        `json:"height"`
	Timestamp int64        `json:"timestamp"`
	TxCount   int64        `json:"tx_count"`
	Size      int64        `json:"size"`
	Weight    int64        `json:"weight"`
	Extras    *BlockExtras `json:"extras"`
}

type BlockExtras struct {
	Reward    *int64 `json:"reward"`    // sats
	TotalFees *int64 `json:"totalFees"` // sats
	Pool      *Pool  `json:"pool"`
}

type Pool struct {
	Name string `json:"name"`
}

// ChainStats represents the confirmed side of an address: outputs already
// committed to the chain.
type ChainStats struct {
	FundedTxoCount int64 `json:"funded_txo_count"`
	FundedTxoSum   int64 `json:"funded_txo_sum"`
	SpentTxoCount  int64 `json:"spent_txo_count"`
	SpentTxoSum    int64 `json:"spent_txo_sum"`
	TxCount        int64 `json:"tx_count"`
}

// MempoolStats represents the unconfirmed side of an address: outputs seen in
// the mempool but not yet mined.
type MempoolStats struct {
	FundedTxoCount int64 `json:"funded_txo_count"`
	FundedTxoSum   int64 `json:"funded_txo_sum"`
	SpentTxoCount  int64 `json:"spent_txo_count"`
	SpentTxoSum    int64 `json:"spent_txo_sum"`
	TxCount        int64 `json:"tx_count"`
}

type Address struct {
	Address      string        `json:"address"`
	ChainStats   *ChainStats   `json:"chain_stats"`
	MempoolStats *MempoolStats `json:"mempool_stats"`
}

type TxStatus struct {
	Confirmed   bool   `json:"confirmed"`
	BlockHeight *int64 `json:"block_height"`
	BlockTime   *int64 `json:"block_time"`
}

type Prevout struct {
	ScriptPubkeyAddress string `json:"scriptpubkey_address"`
	Value               int64  `json:"value"`
}

type Vin struct {
	TxID       string   `json:"txid"`
	Vout       uint32   `json:"vout"`
	Prevout    *Prevout `json:"prevout"`
	IsCoinbase bool     `json:"is_coinbase"`
}

type Vout struct {
	ScriptPubkeyAddress string `json:"scriptpubkey_address"`
	Value               int64  `json:"value"`
}

type Transaction struct {
	TxID   string    `json:"txid"`
	Size   int64     `json:"size"`
	Weight int64     `json:"weight"`
	Fee    int64     `json:"fee"`
	Vin    []Vin     `json:"vin"`
	Vout   []Vout    `json:"vout"`
	Status *TxStatus `json:"status"`
}
