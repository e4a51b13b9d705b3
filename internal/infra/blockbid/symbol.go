package blockbid

import (
	"fmt"
	"strings"

	"blockbid_go/internal/domain"
)

// CommonCurrencies overrides exchange-native asset codes whose canonical
// form differs. Blockbid uses canonical codes already, so the table is a
// passthrough; entries can be added without touching the parsers.
var CommonCurrencies = map[string]string{}

// NormalizeCurrency maps an exchange-native asset ticker to its canonical
// code.
func NormalizeCurrency(raw string) string {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if c, ok := CommonCurrencies[code]; ok {
		return c
	}
	return code
}

// SplitPair splits a raw pair name on sep ("/" for market payloads, "-" for
// ticker market ids), canonicalizes both legs and composes the canonical
// symbol. A pair without the separator is a parse failure, not a partial
// symbol.
func SplitPair(raw, sep string) (base, quote, symbol string, err error) {
	parts := strings.Split(raw, sep)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", "", fmt.Errorf("%w: malformed market identifier %q", domain.ErrInvalidSymbol, raw)
	}
	base = NormalizeCurrency(parts[0])
	quote = NormalizeCurrency(parts[1])
	return base, quote, base + "/" + quote, nil
}
