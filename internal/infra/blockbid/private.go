package blockbid

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"blockbid_go/internal/domain"
	"blockbid_go/internal/infra"
)

// FetchIdentity retrieves the authenticated account profile verbatim. The
// payload shape is account-tier dependent, so it is not normalized.
func (c *Client) FetchIdentity(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := c.doRequest(ctx, http.MethodGet, "identity", nil, true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchBalance retrieves per-currency account balances keyed by canonical
// currency code.
func (c *Client) FetchBalance(ctx context.Context) (domain.Balances, error) {
	reg, err := c.LoadMarkets(ctx, false)
	if err != nil {
		return nil, err
	}

	var rows []balancePayload
	if err := c.doRequest(ctx, http.MethodGet, "balances", nil, true, &rows); err != nil {
		return nil, err
	}
	return parseBalances(rows, reg), nil
}

// FetchDepositAddresses retrieves the account's funding addresses.
func (c *Client) FetchDepositAddresses(ctx context.Context) ([]domain.DepositAddress, error) {
	reg, err := c.LoadMarkets(ctx, false)
	if err != nil {
		return nil, err
	}

	var rows []addressPayload
	if err := c.doRequest(ctx, http.MethodGet, "addresses", nil, true, &rows); err != nil {
		return nil, err
	}

	out := make([]domain.DepositAddress, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.DepositAddress{
			Currency: NormalizeCurrency(reg.CurrencyCode(row.Currency)),
			Address:  row.Address,
		})
	}
	return out, nil
}

// FetchDeposits retrieves the account's deposit history. limit <= 0 leaves
// the exchange default page size.
func (c *Client) FetchDeposits(ctx context.Context, limit int) ([]domain.Transaction, error) {
	reg, err := c.LoadMarkets(ctx, false)
	if err != nil {
		return nil, err
	}

	params := map[string]any{}
	if limit > 0 {
		params["limit"] = limit
	}

	var rows []transactionPayload
	if err := c.doRequest(ctx, http.MethodGet, "deposits", params, true, &rows); err != nil {
		return nil, err
	}
	return c.parseTransactions(rows, "", reg)
}

// FetchWithdrawals retrieves withdrawal history for one currency. The
// exchange splits fiat and crypto withdrawals across separate endpoints, so
// code is mandatory.
func (c *Client) FetchWithdrawals(ctx context.Context, code string, limit int) ([]domain.Transaction, error) {
	if code == "" {
		return nil, fmt.Errorf("fetching withdrawals requires a currency code")
	}
	reg, err := c.LoadMarkets(ctx, false)
	if err != nil {
		return nil, err
	}

	code = NormalizeCurrency(code)
	path := "withdraws/crypto"
	if isFiat(code) {
		path = "withdraws/fiat"
	}

	params := map[string]any{"currency": strings.ToLower(code)}
	if limit > 0 {
		params["limit"] = limit
	}

	var rows []transactionPayload
	if err := c.doRequest(ctx, http.MethodGet, path, params, true, &rows); err != nil {
		return nil, err
	}
	return c.parseTransactions(rows, code, reg)
}

// Withdraw requests a withdrawal and returns the created record. Fiat
// currencies are routed to the fiat endpoint; otherwise address is the
// destination wallet.
func (c *Client) Withdraw(ctx context.Context, code string, amount decimal.Decimal, address string) (*domain.Transaction, error) {
	reg, err := c.LoadMarkets(ctx, false)
	if err != nil {
		return nil, err
	}

	code = NormalizeCurrency(code)
	path := "withdraw/crypto"
	params := map[string]any{
		"currency": strings.ToLower(code),
		"amount":   amount.String(),
	}
	if isFiat(code) {
		path = "withdraws/fiat"
	} else {
		params["address"] = address
	}

	var row transactionPayload
	if err := c.doRequest(ctx, http.MethodPost, path, params, true, &row); err != nil {
		return nil, err
	}

	c.noteTransactionState(row.State)
	tx, err := parseTransaction(row, code, reg)
	if err != nil {
		infra.GlobalMetrics.RecordParseFailure()
		return nil, err
	}
	return &tx, nil
}

// FetchMyTrades retrieves the account's trade fills for one symbol.
func (c *Client) FetchMyTrades(ctx context.Context, symbol string, limit int) ([]domain.Trade, error) {
	reg, err := c.LoadMarkets(ctx, false)
	if err != nil {
		return nil, err
	}
	m, err := c.market(symbol)
	if err != nil {
		return nil, err
	}

	params := map[string]any{"market": m.ID}
	if limit > 0 {
		params["limit"] = limit
	}

	var rows []tradePayload
	if err := c.doRequest(ctx, http.MethodGet, "trades/my", params, true, &rows); err != nil {
		return nil, err
	}

	trades := make([]domain.Trade, 0, len(rows))
	for _, row := range rows {
		t, err := parseTrade(row, m, reg, c.invertTradeSide)
		if err != nil {
			infra.GlobalMetrics.RecordParseFailure()
			return nil, err
		}
		trades = append(trades, t)
	}
	return trades, nil
}

// CreateOrder places an order. price is required for limit orders and
// ignored for market orders. The exchange accepts a batch shape; exactly
// one order is submitted and its echo is returned.
func (c *Client) CreateOrder(ctx context.Context, symbol, orderType, side string, amount decimal.Decimal, price *decimal.Decimal) (*domain.Order, error) {
	reg, err := c.LoadMarkets(ctx, false)
	if err != nil {
		return nil, err
	}
	m, err := c.market(symbol)
	if err != nil {
		return nil, err
	}

	order := map[string]any{
		"side":     exchangeSide(side),
		"volume":   amount.String(),
		"ord_type": orderType,
	}
	if orderType != "market" {
		if price == nil {
			return nil, fmt.Errorf("%s order requires a price", orderType)
		}
		order["price"] = price.String()
	}

	params := map[string]any{
		"market": m.ID,
		"orders": []map[string]any{order},
	}

	var rows []orderPayload
	if err := c.doRequest(ctx, http.MethodPost, "orders", params, true, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &domain.ExchangeError{Op: "POST orders", Message: "empty order response"}
	}

	c.noteOrderState(rows[0].State)
	o, err := parseOrder(rows[0], m, reg)
	if err != nil {
		infra.GlobalMetrics.RecordParseFailure()
		return nil, err
	}
	return &o, nil
}

// CancelOrder cancels one order by id and returns its final record.
func (c *Client) CancelOrder(ctx context.Context, id string) (*domain.Order, error) {
	var row orderPayload
	params := map[string]any{"id": id}
	if err := c.doRequest(ctx, http.MethodDelete, "orders/{id}", params, true, &row); err != nil {
		return nil, err
	}
	if row.ID == "" {
		row.ID = id
	}

	c.noteOrderState(row.State)
	o, err := parseOrder(row, nil, c.Registry())
	if err != nil {
		infra.GlobalMetrics.RecordParseFailure()
		return nil, err
	}
	return &o, nil
}

// CancelOrders cancels all open orders, optionally one side only
// ("buy"/"sell"; empty cancels both).
func (c *Client) CancelOrders(ctx context.Context, side string) ([]domain.Order, error) {
	params := map[string]any{}
	if side != "" {
		params["side"] = exchangeSide(side)
	}

	var rows []orderPayload
	if err := c.doRequest(ctx, http.MethodDelete, "orders", params, true, &rows); err != nil {
		return nil, err
	}
	return c.parseOrders(rows)
}

// FetchOrder retrieves one order by id.
func (c *Client) FetchOrder(ctx context.Context, id string) (*domain.Order, error) {
	reg, err := c.LoadMarkets(ctx, false)
	if err != nil {
		return nil, err
	}

	var row orderPayload
	params := map[string]any{"id": id}
	if err := c.doRequest(ctx, http.MethodGet, "orders/{id}", params, true, &row); err != nil {
		return nil, err
	}

	c.noteOrderState(row.State)
	o, err := parseOrder(row, nil, reg)
	if err != nil {
		infra.GlobalMetrics.RecordParseFailure()
		return nil, err
	}
	return &o, nil
}

// FetchOpenOrders retrieves open orders for one symbol.
func (c *Client) FetchOpenOrders(ctx context.Context, symbol string, limit int) ([]domain.Order, error) {
	if _, err := c.LoadMarkets(ctx, false); err != nil {
		return nil, err
	}
	m, err := c.market(symbol)
	if err != nil {
		return nil, err
	}

	params := map[string]any{"market": m.ID}
	if limit > 0 {
		params["limit"] = limit
	}

	var rows []orderPayload
	if err := c.doRequest(ctx, http.MethodGet, "orders", params, true, &rows); err != nil {
		return nil, err
	}
	return c.parseOrders(rows)
}

func (c *Client) parseOrders(rows []orderPayload) ([]domain.Order, error) {
	reg := c.Registry()
	orders := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		c.noteOrderState(row.State)
		o, err := parseOrder(row, nil, reg)
		if err != nil {
			infra.GlobalMetrics.RecordParseFailure()
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (c *Client) parseTransactions(rows []transactionPayload, code string, reg *domain.Registry) ([]domain.Transaction, error) {
	out := make([]domain.Transaction, 0, len(rows))
	for _, row := range rows {
		c.noteTransactionState(row.State)
		tx, err := parseTransaction(row, code, reg)
		if err != nil {
			infra.GlobalMetrics.RecordParseFailure()
			return nil, err
		}
		out = append(out, tx)
	}
	return out, nil
}
