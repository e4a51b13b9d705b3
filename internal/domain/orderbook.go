package domain

import "github.com/shopspring/decimal"

// BookLevel is one price level of an order book: (price, volume, meta).
// Meta is a slot reserved for per-level order metadata; this exchange never
// populates it, but the shape matches the generic order-book utilities.
type BookLevel struct {
	Price  decimal.Decimal `json:"price"`
	Volume decimal.Decimal `json:"volume"`
	Meta   []string        `json:"meta"`
}

// OrderBook holds bid and ask levels exactly as the upstream payload ordered
// them: bids descending by price, asks ascending. The parser performs no
// dedup or re-sort.
type OrderBook struct {
	Symbol string      `json:"symbol"`
	Bids   []BookLevel `json:"bids"`
	Asks   []BookLevel `json:"asks"`
}
