package model

// TransactionDetail is the normalized view of a single transaction.
// VSize = ceil(Weight/4); FeeRate = FeeSats/VSize rounded to 2 decimals.
type TransactionDetail struct {
	TxID        string  `json:"txid"`
	Confirmed   bool    `json:"confirmed"`
	BlockHeight *int64  `json:"blockHeight"`
	BlockTime   *string `json:"blockTime"`

	Size    int64     `json:"size"`
	Weight  int64     `json:"weight"`
	VSize   int64     `json:"vsize"`
	FeeSats SatAmount `json:"feeSats"`
	FeeRate float64   `json:"feeRate"`

	Inputs    TxSide `json:"inputs"`
	Outputs   TxSide `json:"outputs"`
	FetchedAt string `json:"fetchedAt"`
}

// TxSide summarizes one side (inputs or outputs) of a transaction. Addresses
// holds at most 5 entries; inputs without a resolvable prevout address are
// omitted rather than null-padded.
type TxSide struct {
	Count     int       `json:"count"`
	TotalSats SatAmount `json:"totalSats"`
	Addresses []string  `json:"addresses"`
}
