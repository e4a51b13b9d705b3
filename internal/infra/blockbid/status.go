package blockbid

import (
	"strings"

	"blockbid_go/internal/domain"
)

// orderStatuses translates exchange order lifecycle strings into the
// canonical states.
var orderStatuses = map[string]string{
	"filled":               domain.OrderStatusClosed,
	"rejected":             domain.OrderStatusClosed,
	"partially_filled":     domain.OrderStatusOpen,
	"pending_cancellation": domain.OrderStatusOpen,
	"pending_modification": domain.OrderStatusOpen,
	"open":                 domain.OrderStatusOpen,
	"new":                  domain.OrderStatusOpen,
	"queued":               domain.OrderStatusOpen,
	"cancelled":            domain.OrderStatusCanceled,
	"triggered":            domain.OrderStatusTriggered,
}

// MapOrderStatus maps an exchange order state to its canonical form.
// Unknown states pass through unchanged so new upstream states never crash
// the parser; callers should report them (see IsKnownOrderStatus).
func MapOrderStatus(status string) string {
	if mapped, ok := orderStatuses[status]; ok {
		return mapped
	}
	return status
}

// IsKnownOrderStatus reports whether the state is in the mapping table.
func IsKnownOrderStatus(status string) bool {
	_, ok := orderStatuses[status]
	return ok
}

// transactionStatuses translates deposit/withdrawal lifecycle strings.
var transactionStatuses = map[string]string{
	"tx_pending_two_factor_auth": domain.TransactionStatusPending,
	"tx_pending_email_auth":      domain.TransactionStatusPending,
	"tx_pending_approval":        domain.TransactionStatusPending,
	"tx_approved":                domain.TransactionStatusPending,
	"tx_processing":              domain.TransactionStatusPending,
	"tx_pending":                 domain.TransactionStatusPending,
	"tx_sent":                    domain.TransactionStatusPending,
	"tx_cancelled":               domain.TransactionStatusCanceled,
	"tx_timeout":                 domain.TransactionStatusError,
	"tx_invalid":                 domain.TransactionStatusError,
	"tx_rejected":                domain.TransactionStatusError,
	"tx_confirmed":               domain.TransactionStatusOK,
}

// MapTransactionStatus maps a transaction state to its canonical form.
// Unknown states pass through lower-cased.
func MapTransactionStatus(status string) string {
	if mapped, ok := transactionStatuses[status]; ok {
		return mapped
	}
	return strings.ToLower(status)
}

// IsKnownTransactionStatus reports whether the state is in the mapping table.
func IsKnownTransactionStatus(status string) bool {
	_, ok := transactionStatuses[status]
	return ok
}

// NormalizeSide maps the exchange's bid/ask tokens to canonical buy/sell.
// invert flips the bid/ask direction only; it exists because historical API
// revisions disagree on whether a public trade's token names the taker or
// the resting maker order. Already-canonical tokens and unknown tokens pass
// through.
func NormalizeSide(token string, invert bool) string {
	switch strings.ToLower(token) {
	case "bid":
		if invert {
			return domain.SideSell
		}
		return domain.SideBuy
	case "ask":
		if invert {
			return domain.SideBuy
		}
		return domain.SideSell
	case "buy":
		return domain.SideBuy
	case "sell":
		return domain.SideSell
	default:
		return token
	}
}

// exchangeSide maps a canonical side back to the wire token used by order
// placement and cancellation requests.
func exchangeSide(side string) string {
	switch side {
	case domain.SideBuy:
		return "bid"
	case domain.SideSell:
		return "ask"
	default:
		return side
	}
}
