// Package safe provides defensive extraction helpers for exchange payloads.
// Numeric fields that are absent or malformed become nil ("unknown"), never
// zero, so downstream cost/precision arithmetic is not silently corrupted.
package safe

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Dec unwraps a NullDecimal into a pointer, nil when the source field was
// absent or JSON null.
func Dec(n decimal.NullDecimal) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	d := n.Decimal
	return &d
}

// DecFrom parses s into a decimal pointer. Empty or non-numeric input yields
// nil rather than zero.
func DecFrom(s string) *decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}

// Mul returns a*b, or nil when either operand is unknown.
func Mul(a, b *decimal.Decimal) *decimal.Decimal {
	if a == nil || b == nil {
		return nil
	}
	p := a.Mul(*b)
	return &p
}

// Sub returns a-b, or nil when either operand is unknown.
func Sub(a, b *decimal.Decimal) *decimal.Decimal {
	if a == nil || b == nil {
		return nil
	}
	d := a.Sub(*b)
	return &d
}

// iso8601Layouts covers the datetime shapes the exchange has been observed to
// emit. Layouts without a zone are interpreted as UTC.
var iso8601Layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
}

// ParseISO8601 converts an ISO-8601 datetime string to epoch milliseconds.
// An unparseable timestamp is an error, not a silent zero.
func ParseISO8601(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	for _, layout := range iso8601Layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UnixMilli(), nil
		}
	}
	return 0, fmt.Errorf("unparseable ISO-8601 timestamp %q", s)
}
