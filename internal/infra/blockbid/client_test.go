package blockbid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blockbid_go/internal/domain"
	"blockbid_go/internal/infra"
)

const marketsFixture = `[
	{"id": "btc-aud", "name": "BTC/AUD", "is_active": true, "base_min_size": "0.001"},
	{"id": "eth-aud", "name": "ETH/AUD", "is_active": true}
]`

const tickersFixture = `[
	{"market": "btc-aud", "timestamp": "2018-10-01T00:00:00Z", "last": "7300.5", "highest_bid": "7300", "lowest_ask": "7301"},
	{"market": "eth-aud", "timestamp": "2018-10-01T00:00:00Z", "last": "310"}
]`

func testConfig(baseURL, key, secret string) *infra.Config {
	cfg := &infra.Config{}
	cfg.API.Blockbid.RestURL = baseURL
	cfg.API.Blockbid.APIKey = key
	cfg.API.Blockbid.Secret = secret
	cfg.API.Blockbid.AuthScheme = infra.AuthSchemeHMAC
	cfg.API.Blockbid.TradeSideConvention = infra.TradeSideTaker
	// No rate limiting in tests.
	cfg.API.Blockbid.RateLimitMS = 0
	return cfg
}

type memoryCache struct {
	markets []domain.Market
	upserts int
}

func (c *memoryCache) UpsertMarkets(markets []domain.Market) error {
	c.markets = markets
	c.upserts++
	return nil
}

func (c *memoryCache) LoadMarkets() ([]domain.Market, error) {
	return c.markets, nil
}

func TestFetchMarkets(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/markets", r.URL.Path)
		w.Write([]byte(marketsFixture))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL, "", ""), nil)
	markets, err := c.FetchMarkets(context.Background())
	require.NoError(t, err)
	require.Len(t, markets, 2)
	assert.Equal(t, "BTC/AUD", markets[0].Symbol)
}

func TestFetchTickers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/markets":
			w.Write([]byte(marketsFixture))
		case "/tickers":
			w.Write([]byte(tickersFixture))
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL, "", ""), nil)
	tickers, err := c.FetchTickers(context.Background())
	require.NoError(t, err)
	require.Len(t, tickers, 2)

	btc, ok := tickers["BTC/AUD"]
	require.True(t, ok)
	require.NotNil(t, btc.Last)
	assert.True(t, btc.Last.Equal(decimal.RequireFromString("7300.5")))
	require.NotNil(t, btc.Close)
	assert.True(t, btc.Close.Equal(*btc.Last))
}

func TestFetchOrderBookParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/markets":
			w.Write([]byte(marketsFixture))
		case "/orderbook":
			q := r.URL.Query()
			assert.Equal(t, "btc-aud", q.Get("market"))
			assert.Equal(t, "5", q.Get("asks_limit"))
			assert.Equal(t, "5", q.Get("bids_limit"))
			w.Write([]byte(`{"bids": [{"price": "7300", "volume": "1"}], "asks": []}`))
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL, "", ""), nil)
	book, err := c.FetchOrderBook(context.Background(), "BTC/AUD", 5)
	require.NoError(t, err)
	assert.Equal(t, "BTC/AUD", book.Symbol)
	require.Len(t, book.Bids, 1)
	assert.Empty(t, book.Asks)
}

func TestErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Envelope arrives with HTTP 200; the body is authoritative.
		w.Write([]byte(`{"error": {"message": "market does not exist"}}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL, "", ""), nil)
	_, err := c.FetchMarkets(context.Background())
	require.Error(t, err)

	var exErr *domain.ExchangeError
	require.ErrorAs(t, err, &exErr)
	assert.Equal(t, "market does not exist", exErr.Message)
	assert.False(t, domain.IsRetriable(err))
}

func TestHTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL, "", ""), nil)
	_, err := c.FetchMarkets(context.Background())

	var exErr *domain.ExchangeError
	require.ErrorAs(t, err, &exErr)
}

func TestPrivateWithoutCredentials(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(marketsFixture))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL, "", ""), nil)
	_, err := c.FetchIdentity(context.Background())
	require.ErrorIs(t, err, domain.ErrCredentialsMissing)
	// Rejected before any HTTP request.
	assert.Zero(t, requests)
}

func TestFetchBalanceSignsRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/markets":
			w.Write([]byte(marketsFixture))
		case "/balances":
			assert.Equal(t, "mykey", r.Header.Get("X-Blockbid-Api-Key"))
			assert.NotEmpty(t, r.Header.Get("X-Blockbid-Nonce"))
			assert.NotEmpty(t, r.Header.Get("X-Blockbid-Signature"))
			w.Write([]byte(`[{"currency": "aud", "available": "100", "locked": "0", "total": "100"}]`))
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL, "mykey", "mysecret"), nil)
	balances, err := c.FetchBalance(context.Background())
	require.NoError(t, err)

	aud, ok := balances["AUD"]
	require.True(t, ok)
	require.NotNil(t, aud.Free)
	assert.True(t, aud.Free.Equal(decimal.RequireFromString("100")))
}

func TestLoadMarketsCacheFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	cache := &memoryCache{markets: []domain.Market{
		{ID: "btc-aud", Symbol: "BTC/AUD", Base: "BTC", Quote: "AUD", BaseID: "btc", QuoteID: "aud", Active: true},
	}}

	c := NewClient(testConfig(srv.URL, "", ""), cache)
	reg, err := c.LoadMarkets(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Len())

	m, ok := reg.MarketBySymbol("BTC/AUD")
	require.True(t, ok)
	assert.Equal(t, "btc-aud", m.ID)
}

func TestLoadMarketsPersistsToCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(marketsFixture))
	}))
	defer srv.Close()

	cache := &memoryCache{}
	c := NewClient(testConfig(srv.URL, "", ""), cache)

	reg, err := c.LoadMarkets(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, 1, cache.upserts)
	assert.Len(t, cache.markets, 2)

	// A second non-reload call reuses the registry without refetching.
	_, err = c.LoadMarkets(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.upserts)
}

func TestCreateOrderBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/markets":
			w.Write([]byte(marketsFixture))
		case "/orders":
			require.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json; charset=UTF-8", r.Header.Get("Content-type"))
			w.Write([]byte(`[{
				"id": "900", "market": "btc-aud", "state": "open", "side": "bid",
				"orderType": "limit", "price": "100", "volume": "1"
			}]`))
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL, "mykey", "mysecret"), nil)

	price := decimal.RequireFromString("100")
	o, err := c.CreateOrder(context.Background(), "BTC/AUD", "limit", domain.SideBuy, decimal.RequireFromString("1"), &price)
	require.NoError(t, err)

	assert.Equal(t, "900", o.ID)
	assert.Equal(t, domain.OrderStatusOpen, o.Status)
	assert.Equal(t, domain.SideBuy, o.Side)
}

func TestCreateOrderLimitRequiresPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(marketsFixture))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL, "mykey", "mysecret"), nil)

	_, err := c.CreateOrder(context.Background(), "BTC/AUD", "limit", domain.SideBuy, decimal.RequireFromString("1"), nil)
	require.Error(t, err)
}

func TestCancelOrderBackfillsID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/markets":
			w.Write([]byte(marketsFixture))
		case "/orders/901":
			require.Equal(t, http.MethodDelete, r.Method)
			w.Write([]byte(`{"market": "btc-aud", "state": "cancelled"}`))
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL, "mykey", "mysecret"), nil)
	_, err := c.LoadMarkets(context.Background(), false)
	require.NoError(t, err)

	o, err := c.CancelOrder(context.Background(), "901")
	require.NoError(t, err)
	assert.Equal(t, "901", o.ID)
	assert.Equal(t, domain.OrderStatusCanceled, o.Status)
}

func TestFetchWithdrawalsRouting(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/markets" {
			w.Write([]byte(marketsFixture))
			return
		}
		paths = append(paths, r.URL.Path)
		assert.NotEmpty(t, r.URL.Query().Get("currency"))
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL, "mykey", "mysecret"), nil)
	ctx := context.Background()

	_, err := c.FetchWithdrawals(ctx, "AUD", 0)
	require.NoError(t, err)
	_, err = c.FetchWithdrawals(ctx, "btc", 0)
	require.NoError(t, err)

	require.Equal(t, []string{"/withdraws/fiat", "/withdraws/crypto"}, paths)

	_, err = c.FetchWithdrawals(ctx, "", 0)
	require.Error(t, err)
}
