package domain

import "github.com/shopspring/decimal"

// Market is a tradable instrument definition in the canonical model.
// Symbol is always derived as Base + "/" + Quote using canonical currency
// codes; ID is the exchange-native market identifier.
type Market struct {
	ID      string `json:"id"`
	Symbol  string `json:"symbol"`
	Base    string `json:"base"`
	Quote   string `json:"quote"`
	BaseID  string `json:"base_id"`  // exchange-native, lower-cased
	QuoteID string `json:"quote_id"` // exchange-native, lower-cased
	Active  bool   `json:"active"`

	Precision MarketPrecision `json:"precision"`
	Limits    MarketLimits    `json:"limits"`
}

// MarketPrecision holds decimal-place precision for amounts and prices.
type MarketPrecision struct {
	Amount int `json:"amount"`
	Price  int `json:"price"`
}

// MarketLimits holds order size boundaries. Unknown boundaries are nil.
type MarketLimits struct {
	AmountMin *decimal.Decimal `json:"amount_min,omitempty"`
	AmountMax *decimal.Decimal `json:"amount_max,omitempty"`
}

// Currency is a canonical asset definition.
type Currency struct {
	ID   string `json:"id"`   // exchange-native code
	Code string `json:"code"` // canonical code, e.g. "BTC"
}
