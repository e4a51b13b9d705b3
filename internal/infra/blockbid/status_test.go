package blockbid

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"blockbid_go/internal/domain"
)

func TestMapOrderStatus(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"filled", domain.OrderStatusClosed},
		{"rejected", domain.OrderStatusClosed},
		{"partially_filled", domain.OrderStatusOpen},
		{"pending_cancellation", domain.OrderStatusOpen},
		{"queued", domain.OrderStatusOpen},
		{"cancelled", domain.OrderStatusCanceled},
		{"triggered", domain.OrderStatusTriggered},
		// Unknown states pass through verbatim.
		{"halted_by_admin", "halted_by_admin"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MapOrderStatus(tt.in), "state %q", tt.in)
	}

	assert.True(t, IsKnownOrderStatus("filled"))
	assert.False(t, IsKnownOrderStatus("halted_by_admin"))
}

func TestMapTransactionStatus(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"tx_pending_two_factor_auth", domain.TransactionStatusPending},
		{"tx_sent", domain.TransactionStatusPending},
		{"tx_cancelled", domain.TransactionStatusCanceled},
		{"tx_timeout", domain.TransactionStatusError},
		{"tx_rejected", domain.TransactionStatusError},
		{"tx_confirmed", domain.TransactionStatusOK},
		// Unknown states pass through lower-cased.
		{"TX_FROZEN", "tx_frozen"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MapTransactionStatus(tt.in), "state %q", tt.in)
	}

	assert.True(t, IsKnownTransactionStatus("tx_confirmed"))
	assert.False(t, IsKnownTransactionStatus("tx_frozen"))
}

func TestNormalizeSide(t *testing.T) {
	tests := []struct {
		token  string
		invert bool
		want   string
	}{
		{"bid", false, domain.SideBuy},
		{"ask", false, domain.SideSell},
		{"BID", false, domain.SideBuy},
		{"bid", true, domain.SideSell},
		{"ask", true, domain.SideBuy},
		// Already-canonical tokens never flip.
		{"buy", true, domain.SideBuy},
		{"sell", true, domain.SideSell},
		// Unknown tokens pass through.
		{"crossed", false, "crossed"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeSide(tt.token, tt.invert), "token %q invert %v", tt.token, tt.invert)
	}
}

func TestExchangeSide(t *testing.T) {
	assert.Equal(t, "bid", exchangeSide(domain.SideBuy))
	assert.Equal(t, "ask", exchangeSide(domain.SideSell))
	assert.Equal(t, "other", exchangeSide("other"))
}
