package domain

import "github.com/shopspring/decimal"

// OHLCV is a single candlestick bar.
type OHLCV struct {
	Timestamp int64           `json:"timestamp"` // epoch milliseconds
	Open      decimal.Decimal `json:"open"`
	High      decimal.Decimal `json:"high"`
	Low       decimal.Decimal `json:"low"`
	Close     decimal.Decimal `json:"close"`
	Volume    decimal.Decimal `json:"volume"`
}
