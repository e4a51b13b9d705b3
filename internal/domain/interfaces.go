package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// Exchange is the capability surface a per-exchange adapter implements:
// request signing plus response normalization into the canonical entities.
// Transport, retry and rate limiting live behind the implementation; there
// is no base-class inheritance, only this interface.
type Exchange interface {
	Name() string

	// Market data
	LoadMarkets(ctx context.Context, reload bool) (*Registry, error)
	FetchMarkets(ctx context.Context) ([]Market, error)
	FetchTickers(ctx context.Context) (map[string]Ticker, error)
	FetchTicker(ctx context.Context, symbol string) (*Ticker, error)
	FetchOrderBook(ctx context.Context, symbol string, limit int) (*OrderBook, error)
	FetchTrades(ctx context.Context, symbol string, limit int) ([]Trade, error)
	FetchOHLCV(ctx context.Context, symbol, timeframe string, since int64) ([]OHLCV, error)

	// Account
	FetchBalance(ctx context.Context) (Balances, error)
	FetchMyTrades(ctx context.Context, symbol string, limit int) ([]Trade, error)
	FetchDeposits(ctx context.Context, limit int) ([]Transaction, error)
	FetchWithdrawals(ctx context.Context, code string, limit int) ([]Transaction, error)

	// Trading
	CreateOrder(ctx context.Context, symbol, orderType, side string, amount decimal.Decimal, price *decimal.Decimal) (*Order, error)
	CancelOrder(ctx context.Context, id string) (*Order, error)
	CancelOrders(ctx context.Context, side string) ([]Order, error)
	FetchOrder(ctx context.Context, id string) (*Order, error)
	FetchOpenOrders(ctx context.Context, symbol string, limit int) ([]Order, error)
}

// MarketCache persists market metadata between runs so a registry can be
// served while the exchange is unreachable.
type MarketCache interface {
	UpsertMarkets(markets []Market) error
	LoadMarkets() ([]Market, error)
}
