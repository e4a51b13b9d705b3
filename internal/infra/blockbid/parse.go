package blockbid

import (
	"errors"
	"fmt"
	"strings"

	"blockbid_go/internal/domain"
	"blockbid_go/pkg/safe"
)

// Entity parsers: pure functions from one raw payload record (plus an
// optional market hint and the read-only registry) to one canonical record.
// cost fields are always derived, never read from the payload, and numeric
// fields stay unknown (nil) rather than defaulting to zero.

var errMissingField = errors.New("missing or non-numeric field")

// parseTimestamp applies the shared timestamp rule: absent is unknown,
// present-but-unparseable is a parse failure.
func parseTimestamp(entity, s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	ms, err := safe.ParseISO8601(s)
	if err != nil {
		return 0, domain.NewParseError(entity, "timestamp", err)
	}
	return ms, nil
}

// resolveSymbol implements the uniform symbol resolution order: an explicit
// market hint is authoritative, then the registry lookup by raw id, then
// splitting the raw id itself. strict controls whether an unresolvable id
// is a failure or an empty symbol.
func resolveSymbol(entity, marketID string, market *domain.Market, reg *domain.Registry, strict bool) (string, error) {
	if market != nil {
		return market.Symbol, nil
	}
	if m, ok := reg.MarketByID(marketID); ok {
		return m.Symbol, nil
	}
	if _, _, symbol, err := SplitPair(marketID, "-"); err == nil {
		return symbol, nil
	}
	if strict {
		return "", domain.NewParseError(entity, "market", fmt.Errorf("%w: %q", domain.ErrInvalidSymbol, marketID))
	}
	return "", nil
}

func parseMarket(raw marketPayload) (domain.Market, error) {
	base, quote, symbol, err := SplitPair(raw.Name, "/")
	if err != nil {
		return domain.Market{}, domain.NewParseError("market", "name", err)
	}
	legs := strings.SplitN(raw.Name, "/", 2)

	active := true
	if raw.IsActive != nil {
		active = *raw.IsActive
	}

	return domain.Market{
		ID:      raw.ID,
		Symbol:  symbol,
		Base:    base,
		Quote:   quote,
		BaseID:  strings.ToLower(legs[0]),
		QuoteID: strings.ToLower(legs[1]),
		Active:  active,
		Precision: domain.MarketPrecision{
			Amount: DefaultPrecision,
			Price:  DefaultPrecision,
		},
		Limits: domain.MarketLimits{
			AmountMin: safe.Dec(raw.BaseMinSize),
			AmountMax: safe.Dec(raw.BaseMaxSize),
		},
	}, nil
}

func parseTicker(raw tickerPayload, market *domain.Market, reg *domain.Registry) (domain.Ticker, error) {
	symbol, err := resolveSymbol("ticker", raw.Market, market, reg, true)
	if err != nil {
		return domain.Ticker{}, err
	}

	ts, err := parseTimestamp("ticker", raw.Timestamp)
	if err != nil {
		return domain.Ticker{}, err
	}

	last := safe.Dec(raw.Last)
	return domain.Ticker{
		Symbol:      symbol,
		Timestamp:   ts,
		Datetime:    raw.Timestamp,
		High:        safe.Dec(raw.High),
		Low:         safe.Dec(raw.Low),
		Bid:         safe.Dec(raw.Bid),
		Ask:         safe.Dec(raw.Ask),
		Last:        last,
		Close:       last, // invariant: close == last
		Change:      safe.Dec(raw.Change),
		BaseVolume:  safe.Dec(raw.BaseVolume),
		QuoteVolume: safe.Dec(raw.QuoteVolume),
	}, nil
}

func parseBookSide(field string, rows []bookLevelPayload) ([]domain.BookLevel, error) {
	levels := make([]domain.BookLevel, 0, len(rows))
	for i, row := range rows {
		if !row.Price.Valid || !row.Volume.Valid {
			return nil, domain.NewParseError("orderbook", fmt.Sprintf("%s[%d]", field, i), errMissingField)
		}
		levels = append(levels, domain.BookLevel{
			Price:  row.Price.Decimal,
			Volume: row.Volume.Decimal,
			Meta:   []string{},
		})
	}
	return levels, nil
}

// parseOrderBook reshapes the payload into (price, volume, meta) levels,
// preserving level count and upstream ordering.
func parseOrderBook(raw orderBookPayload, symbol string) (domain.OrderBook, error) {
	bids, err := parseBookSide("bids", raw.Bids)
	if err != nil {
		return domain.OrderBook{}, err
	}
	asks, err := parseBookSide("asks", raw.Asks)
	if err != nil {
		return domain.OrderBook{}, err
	}
	return domain.OrderBook{Symbol: symbol, Bids: bids, Asks: asks}, nil
}

func parseTrade(raw tradePayload, market *domain.Market, reg *domain.Registry, invertSide bool) (domain.Trade, error) {
	symbol, err := resolveSymbol("trade", raw.Market, market, reg, false)
	if err != nil {
		return domain.Trade{}, err
	}

	ts, err := parseTimestamp("trade", raw.CreatedAt)
	if err != nil {
		return domain.Trade{}, err
	}

	price := safe.Dec(raw.Price)
	amount := safe.Dec(raw.Volume)
	return domain.Trade{
		ID:        raw.ID,
		Symbol:    symbol,
		Timestamp: ts,
		Datetime:  raw.CreatedAt,
		Side:      NormalizeSide(raw.Side, invertSide),
		Price:     price,
		Amount:    amount,
		Cost:      safe.Mul(price, amount),
	}, nil
}

func parseOHLCV(raw ohlcvPayload) (domain.OHLCV, error) {
	if raw.Timestamp == "" {
		return domain.OHLCV{}, domain.NewParseError("ohlcv", "timestamp", errMissingField)
	}
	ts, err := safe.ParseISO8601(raw.Timestamp)
	if err != nil {
		return domain.OHLCV{}, domain.NewParseError("ohlcv", "timestamp", err)
	}

	for _, f := range []struct {
		name string
		ok   bool
	}{
		{"open", raw.Open.Valid},
		{"high", raw.High.Valid},
		{"low", raw.Low.Valid},
		{"close", raw.Close.Valid},
		{"volume", raw.Volume.Valid},
	} {
		if !f.ok {
			return domain.OHLCV{}, domain.NewParseError("ohlcv", f.name, errMissingField)
		}
	}

	return domain.OHLCV{
		Timestamp: ts,
		Open:      raw.Open.Decimal,
		High:      raw.High.Decimal,
		Low:       raw.Low.Decimal,
		Close:     raw.Close.Decimal,
		Volume:    raw.Volume.Decimal,
	}, nil
}

func parseOrder(raw orderPayload, market *domain.Market, reg *domain.Registry) (domain.Order, error) {
	symbol, err := resolveSymbol("order", raw.Market, market, reg, false)
	if err != nil {
		return domain.Order{}, err
	}

	ts, err := parseTimestamp("order", raw.CreatedAt)
	if err != nil {
		return domain.Order{}, err
	}

	price := safe.Dec(raw.Price)
	average := safe.Dec(raw.AveragePrice)
	amount := safe.Dec(raw.Volume)
	filled := safe.Dec(raw.ExecutedVolume)

	// remaining == amount - filled whenever both are known; the payload's
	// own remainingVolume is only trusted when the derivation is impossible.
	remaining := safe.Sub(amount, filled)
	if remaining == nil {
		remaining = safe.Dec(raw.RemainingVolume)
	}

	cost := safe.Mul(average, filled)
	if cost == nil {
		cost = safe.Mul(average, amount)
	}

	return domain.Order{
		ID:         raw.ID,
		Symbol:     symbol,
		Status:     MapOrderStatus(raw.State),
		Side:       NormalizeSide(raw.Side, false),
		Type:       raw.OrderType,
		Timestamp:  ts,
		Datetime:   raw.CreatedAt,
		Price:      price,
		Average:    average,
		Amount:     amount,
		Filled:     filled,
		Remaining:  remaining,
		Cost:       cost,
		TradeCount: raw.TradesCount.String(),
	}, nil
}

func parseTransaction(raw transactionPayload, code string, reg *domain.Registry) (domain.Transaction, error) {
	if code == "" {
		code = NormalizeCurrency(reg.CurrencyCode(raw.Currency))
	}

	ts, err := parseTimestamp("transaction", raw.TimeCreated)
	if err != nil {
		return domain.Transaction{}, err
	}

	return domain.Transaction{
		ID:        raw.WithdrawID,
		TxID:      raw.TxID,
		Currency:  code,
		Status:    MapTransactionStatus(raw.State),
		Address:   raw.Address,
		Timestamp: ts,
		Datetime:  raw.TimeCreated,
		Updated:   raw.TimeUpdated,
		Amount:    safe.Dec(raw.Amount),
		FeeCost:   safe.Dec(raw.Fee),
	}, nil
}

func parseBalances(rows []balancePayload, reg *domain.Registry) domain.Balances {
	out := make(domain.Balances, len(rows))
	for _, row := range rows {
		code := NormalizeCurrency(reg.CurrencyCode(row.Currency))
		out[code] = domain.Balance{
			Free:  safe.Dec(row.Available),
			Used:  safe.Dec(row.Locked),
			Total: safe.Dec(row.Total),
		}
	}
	return out
}
