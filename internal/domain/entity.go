package domain

import "time"

// MarketRecord is the persisted form of a Market for the local metadata
// cache. Decimal limits are stored as strings to stay exact.
type MarketRecord struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	Symbol          string    `gorm:"index" json:"symbol"`
	Base            string    `json:"base"`
	Quote           string    `json:"quote"`
	BaseID          string    `json:"base_id"`
	QuoteID         string    `json:"quote_id"`
	Active          bool      `gorm:"index" json:"active"`
	AmountPrecision int       `json:"amount_precision"`
	PricePrecision  int       `json:"price_precision"`
	AmountMin       string    `json:"amount_min"` // empty when unknown
	AmountMax       string    `json:"amount_max"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// AppConfig represents adapter-local key/value state (e.g. last market sync)
type AppConfig struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
