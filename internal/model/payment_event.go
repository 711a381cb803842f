package model

import "time"

// PaymentEvent records one paid query invocation, written by the entrypoint
// registry and read back through the analytics endpoints.
type PaymentEvent struct {
	ID          int       `json:"id"`
	QueryKey    string    `json:"query_key"`
	AmountCents int64     `json:"amount_cents"`
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"created_at"`
}

type PaymentSummary struct {
	Count            int64            `json:"count"`
	TotalAmountCents int64            `json:"total_amount_cents"`
	ByQuery          map[string]int64 `json:"by_query"`
}
