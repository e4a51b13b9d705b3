package blockbid

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Raw REST payload shapes. Numeric fields use NullDecimal so an absent or
// null field stays distinguishable from zero; the exchange emits numbers
// both bare and quoted and NullDecimal accepts either.

type marketPayload struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"` // "BTC/AUD"
	IsActive    *bool               `json:"is_active"`
	BaseMinSize decimal.NullDecimal `json:"base_min_size"`
	BaseMaxSize decimal.NullDecimal `json:"base_max_size"`
}

type tickerPayload struct {
	Market      string              `json:"market"` // "btc-aud"
	Timestamp   string              `json:"timestamp"`
	High        decimal.NullDecimal `json:"24h_high"`
	Low         decimal.NullDecimal `json:"24h_low"`
	Bid         decimal.NullDecimal `json:"highest_bid"`
	Ask         decimal.NullDecimal `json:"lowest_ask"`
	Last        decimal.NullDecimal `json:"last"`
	Change      decimal.NullDecimal `json:"percentChanged24hr"`
	BaseVolume  decimal.NullDecimal `json:"24h_volume"`
	QuoteVolume decimal.NullDecimal `json:"quote_volume"`
}

type bookLevelPayload struct {
	Price  decimal.NullDecimal `json:"price"`
	Volume decimal.NullDecimal `json:"volume"`
}

type orderBookPayload struct {
	Bids []bookLevelPayload `json:"bids"`
	Asks []bookLevelPayload `json:"asks"`
}

type tradePayload struct {
	ID        string              `json:"id"`
	Market    string              `json:"market"`
	CreatedAt string              `json:"createdAt"`
	Side      string              `json:"side"` // "bid" | "ask"
	Price     decimal.NullDecimal `json:"price"`
	Volume    decimal.NullDecimal `json:"volume"`
}

type ohlcvPayload struct {
	Timestamp string              `json:"timestamp"`
	Open      decimal.NullDecimal `json:"open"`
	High      decimal.NullDecimal `json:"high"`
	Low       decimal.NullDecimal `json:"low"`
	Close     decimal.NullDecimal `json:"close"`
	Volume    decimal.NullDecimal `json:"volume"`
}

type orderPayload struct {
	ID              string              `json:"id"`
	Market          string              `json:"market"`
	CreatedAt       string              `json:"createdAt"`
	State           string              `json:"state"`
	Side            string              `json:"side"` // "bid" | "ask"
	OrderType       string              `json:"orderType"`
	Price           decimal.NullDecimal `json:"price"`
	AveragePrice    decimal.NullDecimal `json:"averagePrice"`
	Volume          decimal.NullDecimal `json:"volume"`
	ExecutedVolume  decimal.NullDecimal `json:"executedVolume"`
	RemainingVolume decimal.NullDecimal `json:"remainingVolume"`
	TradesCount     json.Number         `json:"tradesCount"`
}

type balancePayload struct {
	Currency  string              `json:"currency"` // exchange-native, e.g. "aud"
	Available decimal.NullDecimal `json:"available"`
	Locked    decimal.NullDecimal `json:"locked"`
	Total     decimal.NullDecimal `json:"total"`
}

type transactionPayload struct {
	WithdrawID  string              `json:"withdrawID"`
	TxID        string              `json:"txid"`
	Currency    string              `json:"currency"`
	State       string              `json:"state"`
	Address     string              `json:"address"`
	TimeCreated string              `json:"timeCreated"`
	TimeUpdated string              `json:"timeUpdated"`
	Amount      decimal.NullDecimal `json:"amount"`
	Fee         decimal.NullDecimal `json:"fee"`
}

type addressPayload struct {
	Currency string `json:"currency"`
	Address  string `json:"address"`
}
