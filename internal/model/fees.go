package model

// FeeEstimateReport is the payload of the fee-estimate query.
type FeeEstimateReport struct {
	Tiers                   FeeTierEstimates `json:"tiers"`
	Mempool                 MempoolSummary   `json:"mempool"`
	ReferenceTxCost         ReferenceTxCost  `json:"referenceTxCost"`
	RecentBlocks            []RecentBlock    `json:"recentBlocks"`
	AverageBlockTimeMinutes float64          `json:"averageBlockTimeMinutes"`
	FetchedAt               string           `json:"fetchedAt"`
}

// FeeTierEstimate pairs a fee rate with its estimated confirmation time. ETA
// is a number of minutes for all tiers except minimum, which carries the
// literal "variable".
type FeeTierEstimate struct {
	SatPerVByte float64 `json:"satPerVByte"`
	ETA         any     `json:"eta"`
}

type FeeTierEstimates struct {
	Fastest  FeeTierEstimate `json:"fastest"`
	HalfHour FeeTierEstimate `json:"halfHour"`
	Hour     FeeTierEstimate `json:"hour"`
	Economy  FeeTierEstimate `json:"economy"`
	Minimum  FeeTierEstimate `json:"minimum"`
}

type MempoolSummary struct {
	TxCount      int64     `json:"txCount"`
	VSize        int64     `json:"vsize"`
	TotalFeeSats SatAmount `json:"totalFeeSats"`
	SizeMB       float64   `json:"sizeMB"`
}

// ReferenceTxCost estimates what a typical 225-vByte transaction would cost
// at the fastest and economy tiers.
type ReferenceTxCost struct {
	VBytes      int64     `json:"vbytes"`
	FastestSats SatAmount `json:"fastestSats"`
	EconomySats SatAmount `json:"economySats"`
}

type RecentBlock struct {
	Height  int64 `json:"height"`
	TxCount int64 `json:"txCount"`
	Size    int64 `json:"size"`
	Weight  int64 `json:"weight"`
}
