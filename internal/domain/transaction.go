package domain

import "github.com/shopspring/decimal"

// Canonical transaction (deposit/withdrawal) lifecycle states. As with
// orders, unknown upstream states pass through (lower-cased).
const (
	TransactionStatusPending  = "pending"
	TransactionStatusOK       = "ok"
	TransactionStatusCanceled = "canceled"
	TransactionStatusError    = "error"
)

// DepositAddress is a funding address for one currency.
type DepositAddress struct {
	Currency string `json:"currency"`
	Address  string `json:"address"`
}

// Transaction is a deposit or withdrawal record.
type Transaction struct {
	ID        string `json:"id"`
	TxID      string `json:"txid"` // on-chain transaction id
	Currency  string `json:"currency"`
	Status    string `json:"status"`
	Address   string `json:"address"`
	Timestamp int64  `json:"timestamp"` // created, epoch milliseconds
	Datetime  string `json:"datetime"`
	Updated   string `json:"updated"` // upstream update time, verbatim

	Amount  *decimal.Decimal `json:"amount,omitempty"`
	FeeCost *decimal.Decimal `json:"fee_cost,omitempty"`
}
