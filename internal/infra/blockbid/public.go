package blockbid

import (
	"context"
	"fmt"
	"net/http"

	"blockbid_go/internal/domain"
	"blockbid_go/internal/infra"
)

// FetchMarkets retrieves and normalizes the tradable market table.
func (c *Client) FetchMarkets(ctx context.Context) ([]domain.Market, error) {
	var rows []marketPayload
	if err := c.doRequest(ctx, http.MethodGet, "markets", nil, false, &rows); err != nil {
		return nil, err
	}

	markets := make([]domain.Market, 0, len(rows))
	for _, row := range rows {
		m, err := parseMarket(row)
		if err != nil {
			infra.GlobalMetrics.RecordParseFailure()
			return nil, err
		}
		markets = append(markets, m)
	}
	return markets, nil
}

func (c *Client) fetchTickersRaw(ctx context.Context) ([]tickerPayload, error) {
	var rows []tickerPayload
	if err := c.doRequest(ctx, http.MethodGet, "tickers", nil, false, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// FetchTickers retrieves 24h statistics for all markets, keyed by canonical
// symbol.
func (c *Client) FetchTickers(ctx context.Context) (map[string]domain.Ticker, error) {
	reg, err := c.LoadMarkets(ctx, false)
	if err != nil {
		return nil, err
	}

	rows, err := c.fetchTickersRaw(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]domain.Ticker, len(rows))
	for _, row := range rows {
		t, err := parseTicker(row, nil, reg)
		if err != nil {
			infra.GlobalMetrics.RecordParseFailure()
			return nil, err
		}
		out[t.Symbol] = t
	}
	return out, nil
}

// FetchTicker retrieves the ticker for one symbol. The exchange has no
// single-ticker endpoint; the full table is fetched and filtered.
func (c *Client) FetchTicker(ctx context.Context, symbol string) (*domain.Ticker, error) {
	reg, err := c.LoadMarkets(ctx, false)
	if err != nil {
		return nil, err
	}
	m, err := c.market(symbol)
	if err != nil {
		return nil, err
	}

	rows, err := c.fetchTickersRaw(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row.Market != m.ID {
			continue
		}
		t, err := parseTicker(row, m, reg)
		if err != nil {
			infra.GlobalMetrics.RecordParseFailure()
			return nil, err
		}
		return &t, nil
	}
	return nil, fmt.Errorf("no ticker for %q", symbol)
}

// FetchOrderBook retrieves the order book for a symbol. limit <= 0 leaves
// the exchange's default depth.
func (c *Client) FetchOrderBook(ctx context.Context, symbol string, limit int) (*domain.OrderBook, error) {
	if _, err := c.LoadMarkets(ctx, false); err != nil {
		return nil, err
	}
	m, err := c.market(symbol)
	if err != nil {
		return nil, err
	}

	params := map[string]any{"market": m.ID}
	if limit > 0 {
		params["asks_limit"] = limit
		params["bids_limit"] = limit
	}

	var raw orderBookPayload
	if err := c.doRequest(ctx, http.MethodGet, "orderbook", params, false, &raw); err != nil {
		return nil, err
	}

	book, err := parseOrderBook(raw, m.Symbol)
	if err != nil {
		infra.GlobalMetrics.RecordParseFailure()
		return nil, err
	}
	return &book, nil
}

// FetchTrades retrieves recent public trades for a symbol.
func (c *Client) FetchTrades(ctx context.Context, symbol string, limit int) ([]domain.Trade, error) {
	reg, err := c.LoadMarkets(ctx, false)
	if err != nil {
		return nil, err
	}
	m, err := c.market(symbol)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}

	var rows []tradePayload
	params := map[string]any{"market": m.ID, "limit": limit}
	if err := c.doRequest(ctx, http.MethodGet, "trades", params, false, &rows); err != nil {
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

// FetchOHLCV retrieves candlestick bars. since is epoch milliseconds;
// since <= 0 means the exchange default window.
func (c *Client) FetchOHLCV(ctx context.Context, symbol, timeframe string, since int64) ([]domain.OHLCV, error) {
	period, ok := Timeframes[timeframe]
	if !ok {
		return nil, fmt.Errorf("unsupported timeframe %q", timeframe)
	}
	if _, err := c.LoadMarkets(ctx, false); err != nil {
		return nil, err
	}
	m, err := c.market(symbol)
	if err != nil {
		return nil, err
	}

	params := map[string]any{"market": m.ID, "period": period}
	if since > 0 {
		params["timestamp"] = since
	}

	var rows []ohlcvPayload
	if err := c.doRequest(ctx, http.MethodGet, "ohlc", params, false, &rows); err != nil {
		return nil, err
	}

	bars := make([]domain.OHLCV, 0, len(rows))
	for _, row := range rows {
		bar, err := parseOHLCV(row)
		if err != nil {
			infra.GlobalMetrics.RecordParseFailure()
			return nil, err
		}
		bars = append(bars, bar)
	}
	return bars, nil
}
