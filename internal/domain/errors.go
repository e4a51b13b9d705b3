package domain

import "errors"

// RetriableError defines an interface for errors that can be retried
type RetriableError interface {
	error
	IsRetriable() bool
}

// IsRetriable checks if an error is retriable
func IsRetriable(err error) bool {
	var re RetriableError
	if errors.As(err, &re) {
		return re.IsRetriable()
	}
	return false
}

// ExchangeError carries an error message surfaced by the exchange's
// error/message response envelope. Callers decide whether to retry.
type ExchangeError struct {
	Op      string // operation that triggered it, e.g. "fetchMarkets"
	Message string // upstream message, verbatim
}

func (e *ExchangeError) Error() string {
	return "blockbid " + e.Op + ": " + e.Message
}

func (e *ExchangeError) IsRetriable() bool {
	return false
}

// ParseError is raised when a mandatory field of a payload record is absent
// or malformed. It is fatal to the single record being parsed; no default is
// substituted.
type ParseError struct {
	Entity string // "ticker", "order", ...
	Field  string
	Err    error
}

func (e *ParseError) Error() string {
	return "parse " + e.Entity + " [" + e.Field + "]: " + e.Err.Error()
}

func (e *ParseError) IsRetriable() bool {
	return false
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a parse failure for a single payload record.
func NewParseError(entity, field string, err error) *ParseError {
	return &ParseError{Entity: entity, Field: field, Err: err}
}

// NetworkError represents a transport-level error that may be retriable
type NetworkError struct {
	Op        string // operation that failed (e.g. "request", "decode")
	Err       error  // underlying error
	Retriable bool
}

func (e *NetworkError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *NetworkError) IsRetriable() bool {
	return e.Retriable
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a new retriable network error
func NewNetworkError(op string, err error) *NetworkError {
	return &NetworkError{Op: op, Err: err, Retriable: true}
}

var (
	// ErrCredentialsMissing is returned when a private call is attempted
	// without both an API key and a secret configured. Never retriable, and
	// raised before any HTTP request is made.
	ErrCredentialsMissing = errors.New("blockbid: api key and secret required")

	// ErrInvalidSymbol is returned when a market identifier is malformed or
	// unknown. Not retriable.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrConfigNotFound is returned when the configuration file is missing
	ErrConfigNotFound = errors.New("configuration not found")
)
