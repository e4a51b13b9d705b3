package domain

import "github.com/shopspring/decimal"

// Canonical order lifecycle states. Unrecognized upstream states pass
// through verbatim, so Status is a string rather than a closed enum.
const (
	OrderStatusOpen      = "open"
	OrderStatusClosed    = "closed"
	OrderStatusCanceled  = "canceled"
	OrderStatusTriggered = "triggered"
)

// Order is a canonical order record. Remaining is computed as Amount-Filled
// when both are known; Cost is derived as Average*Filled, falling back to
// Average*Amount.
type Order struct {
	ID        string `json:"id"`
	Symbol    string `json:"symbol"`
	Status    string `json:"status"`
	Side      string `json:"side"` // "buy" | "sell"
	Type      string `json:"type"` // e.g. "limit", "market"
	Timestamp int64  `json:"timestamp"` // epoch milliseconds
	Datetime  string `json:"datetime"`

	Price      *decimal.Decimal `json:"price,omitempty"`
	Average    *decimal.Decimal `json:"average,omitempty"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Filled     *decimal.Decimal `json:"filled,omitempty"`
	Remaining  *decimal.Decimal `json:"remaining,omitempty"`
	Cost       *decimal.Decimal `json:"cost,omitempty"`
	TradeCount string           `json:"trade_count,omitempty"`
}

// IsOpen reports whether the order is still active on the book.
func (o *Order) IsOpen() bool {
	return o.Status == OrderStatusOpen
}
