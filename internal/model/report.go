package model

// AddressReport is the composite payload of the address-report query:
// balance, activity stats, classification flags, recent transactions and a
// USD valuation of the confirmed balance.
type AddressReport struct {
	Address            string              `json:"address"`
	Balance            BalanceBreakdown    `json:"balance"`
	Activity           ActivityStats       `json:"activity"`
	Classification     Classification      `json:"classification"`
	RecentTransactions []ReportTransaction `json:"recentTransactions"`
	Value              USDValuation        `json:"value"`
	FetchedAt          string              `json:"fetchedAt"`
}

type ActivityStats struct {
	TxCount      int64     `json:"txCount"`
	ReceivedSats SatAmount `json:"receivedSats"`
	SpentSats    SatAmount `json:"spentSats"`
	UTXOCount    int64     `json:"utxoCount"`
}

type Classification struct {
	IsActive          bool `json:"isActive"`
	IsWhale           bool `json:"isWhale"`
	HasRecentActivity bool `json:"hasRecentActivity"`
}

const (
	DirectionIncoming = "incoming"
	DirectionOutgoing = "outgoing"
)

// ReportTransaction is one entry of the recent-transactions list. AmountSats
// is the net effect on the address: positive for incoming, negative for
// outgoing.
type ReportTransaction struct {
	TxID        string    `json:"txid"`
	Direction   string    `json:"direction"`
	AmountSats  SatAmount `json:"amountSats"`
	Amount      string    `json:"amount"`
	Confirmed   bool      `json:"confirmed"`
	BlockHeight *int64    `json:"blockHeight"`
	BlockTime   *string   `json:"blockTime"`
}

type USDValuation struct {
	PriceUSD     float64 `json:"priceUSD"`
	ConfirmedUSD float64 `json:"confirmedUSD"`
}
