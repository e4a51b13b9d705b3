package domain

import "github.com/shopspring/decimal"

// Canonical order/trade sides. Exchange-native "bid"/"ask" tokens are
// normalized to these before anything leaves the adapter.
const (
	SideBuy  = "buy"
	SideSell = "sell"
)

// Trade is a single executed trade. Cost is always derived as Price*Amount,
// never read from the payload.
type Trade struct {
	ID        string `json:"id"`
	Symbol    string `json:"symbol"`
	Timestamp int64  `json:"timestamp"` // epoch milliseconds
	Datetime  string `json:"datetime"`
	Side      string `json:"side"` // "buy" | "sell"

	Price  *decimal.Decimal `json:"price,omitempty"`
	Amount *decimal.Decimal `json:"amount,omitempty"`
	Cost   *decimal.Decimal `json:"cost,omitempty"`
}
