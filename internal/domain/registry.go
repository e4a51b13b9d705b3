package domain

// Registry is the read-only market/currency lookup context parsers resolve
// raw identifiers against. It is built once per market load and passed
// explicitly, so parsers stay pure functions of (payload, context) with no
// ambient global tables.
type Registry struct {
	marketsByID     map[string]*Market
	marketsBySymbol map[string]*Market
	currenciesByID  map[string]Currency
}

// NewRegistry builds a Registry from loaded markets. Currency entries are
// derived from the base/quote legs of every market.
func NewRegistry(markets []Market) *Registry {
	r := &Registry{
		marketsByID:     make(map[string]*Market, len(markets)),
		marketsBySymbol: make(map[string]*Market, len(markets)),
		currenciesByID:  make(map[string]Currency),
	}
	for i := range markets {
		m := &markets[i]
		r.marketsByID[m.ID] = m
		r.marketsBySymbol[m.Symbol] = m
		r.currenciesByID[m.BaseID] = Currency{ID: m.BaseID, Code: m.Base}
		r.currenciesByID[m.QuoteID] = Currency{ID: m.QuoteID, Code: m.Quote}
	}
	return r
}

// MarketByID resolves an exchange-native market identifier.
func (r *Registry) MarketByID(id string) (*Market, bool) {
	if r == nil {
		return nil, false
	}
	m, ok := r.marketsByID[id]
	return m, ok
}

// MarketBySymbol resolves a canonical "BASE/QUOTE" symbol.
func (r *Registry) MarketBySymbol(symbol string) (*Market, bool) {
	if r == nil {
		return nil, false
	}
	m, ok := r.marketsBySymbol[symbol]
	return m, ok
}

// CurrencyCode maps an exchange-native currency id to its canonical code.
// Unknown ids resolve to themselves.
func (r *Registry) CurrencyCode(id string) string {
	if r != nil {
		if c, ok := r.currenciesByID[id]; ok {
			return c.Code
		}
	}
	return id
}

// Markets returns all registered markets.
func (r *Registry) Markets() []Market {
	if r == nil {
		return nil
	}
	out := make([]Market, 0, len(r.marketsByID))
	for _, m := range r.marketsByID {
		out = append(out, *m)
	}
	return out
}

// Len returns the number of registered markets.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.marketsByID)
}
