// Package blockbid implements the Blockbid exchange adapter: request
// signing plus normalization of REST payloads into the canonical trading
// entities. All parse functions are pure and safe for concurrent use.
package blockbid

import "github.com/shopspring/decimal"

const (
	// ExchangeName is the canonical adapter identifier.
	ExchangeName = "blockbid"

	// DefaultRestURL is the exchange REST API host.
	DefaultRestURL = "https://api.dev.blockbid.io"

	// DefaultPrecision is the decimal-place precision for amounts and
	// prices when the market payload does not carry one.
	DefaultPrecision = 8
)

// Timeframes maps canonical timeframe names to the exchange's period
// parameter (minutes).
var Timeframes = map[string]int{
	"1m":  1,
	"5m":  5,
	"15m": 15,
	"30m": 30,
	"1h":  60,
	"2h":  120,
	"4h":  240,
	"6h":  360,
	"12h": 720,
	"1d":  1440,
	"3d":  4280,
	"1w":  10080,
}

// SupportedFiat lists currencies routed through the fiat withdrawal
// endpoints instead of the crypto ones.
var SupportedFiat = []string{"AUD", "USD", "EUR", "JPY"}

// Flat trading fees, percentage based.
var (
	MakerFee = decimal.NewFromFloat(0.1)
	TakerFee = decimal.NewFromFloat(0.1)
)

// isFiat reports whether a canonical currency code uses the fiat endpoints.
func isFiat(code string) bool {
	for _, f := range SupportedFiat {
		if f == code {
			return true
		}
	}
	return false
}
