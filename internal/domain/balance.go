package domain

import "github.com/shopspring/decimal"

// Balance holds free/used/total amounts for a single currency.
type Balance struct {
	Free  *decimal.Decimal `json:"free,omitempty"`
	Used  *decimal.Decimal `json:"used,omitempty"`
	Total *decimal.Decimal `json:"total,omitempty"`
}

// Balances maps canonical currency codes to their balances.
type Balances map[string]Balance
