package domain

import "github.com/shopspring/decimal"

// Ticker is a 24h market statistics snapshot. Optional fields the exchange
// did not report are nil, never zero. Close always equals Last.
type Ticker struct {
	Symbol    string `json:"symbol"`
	Timestamp int64  `json:"timestamp"` // epoch milliseconds
	Datetime  string `json:"datetime"`  // upstream ISO-8601 string, verbatim

	High        *decimal.Decimal `json:"high,omitempty"`
	Low         *decimal.Decimal `json:"low,omitempty"`
	Bid         *decimal.Decimal `json:"bid,omitempty"`
	Ask         *decimal.Decimal `json:"ask,omitempty"`
	Last        *decimal.Decimal `json:"last,omitempty"`
	Close       *decimal.Decimal `json:"close,omitempty"`
	Change      *decimal.Decimal `json:"change,omitempty"` // 24h percent change
	BaseVolume  *decimal.Decimal `json:"base_volume,omitempty"`
	QuoteVolume *decimal.Decimal `json:"quote_volume,omitempty"`
}
