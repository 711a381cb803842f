package model

// AddressBalance is the normalized balance view of a single address.
// Invariant: TotalSats = ConfirmedSats + UnconfirmedSats; ConfirmedSats may go
// negative when upstream funded/spent totals are inconsistent and is carried
// as-is rather than clamped.
type AddressBalance struct {
	Address      string           `json:"address"`
	Balance      BalanceBreakdown `json:"balance"`
	Transactions TxCounts         `json:"transactions"`
	Lifetime     LifetimeTotals   `json:"lifetime"`
	FetchedAt    string           `json:"fetchedAt"`
}

type BalanceBreakdown struct {
	Confirmed       string    `json:"confirmed"`
	Unconfirmed     string    `json:"unconfirmed"`
	Total           string    `json:"total"`
	ConfirmedSats   SatAmount `json:"confirmedSats"`
	UnconfirmedSats SatAmount `json:"unconfirmedSats"`
	TotalSats       SatAmount `json:"totalSats"`
}

type TxCounts struct {
	Confirmed   int64 `json:"confirmed"`
	Unconfirmed int64 `json:"unconfirmed"`
	Total       int64 `json:"total"`
}

type LifetimeTotals struct {
	Received     string    `json:"received"`
	Spent        string    `json:"spent"`
	ReceivedSats SatAmount `json:"receivedSats"`
	SpentSats    SatAmount `json:"spentSats"`
}
