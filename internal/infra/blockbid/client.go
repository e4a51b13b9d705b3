package blockbid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"blockbid_go/internal/domain"
	"blockbid_go/internal/infra"
)

var _ domain.Exchange = (*Client)(nil)

// Client is the Blockbid REST API client (boundary layer). It owns the
// transport, the exchange's request rate limit and the market registry; the
// parsers it feeds are pure. Safe for concurrent use.
type Client struct {
	httpClient      *http.Client
	signer          *Signer
	limiter         *rate.Limiter
	logger          *slog.Logger
	cache           domain.MarketCache
	invertTradeSide bool

	mu       sync.RWMutex
	registry *domain.Registry
}

// NewClient creates a new Blockbid API client. cache may be nil; when set,
// loaded markets are persisted and served back if the exchange is down.
func NewClient(cfg *infra.Config, cache domain.MarketCache) *Client {
	bb := cfg.API.Blockbid

	var limiter *rate.Limiter
	if bb.RateLimitMS > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Duration(bb.RateLimitMS)*time.Millisecond), 1)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:    10,
				IdleConnTimeout: 30 * time.Second,
			},
		},
		signer:          NewSigner(bb.RestURL, bb.APIKey, bb.Secret, bb.AuthScheme),
		limiter:         limiter,
		logger:          slog.Default().With("module", "blockbid_client"),
		cache:           cache,
		invertTradeSide: bb.TradeSideConvention == infra.TradeSideMaker,
	}
}

// Name returns the canonical exchange identifier.
func (c *Client) Name() string {
	return ExchangeName
}

// Registry returns the current market lookup context (nil before the first
// successful LoadMarkets).
func (c *Client) Registry() *domain.Registry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.registry
}

func (c *Client) setRegistry(reg *domain.Registry) {
	c.mu.Lock()
	c.registry = reg
	c.mu.Unlock()
}

// LoadMarkets fetches and caches the market table, building the registry
// parsers resolve symbols against. With reload=false a previously built
// registry is reused. When the exchange is unreachable and a market cache
// is configured, the cached table is served instead.
func (c *Client) LoadMarkets(ctx context.Context, reload bool) (*domain.Registry, error) {
	if !reload {
		if reg := c.Registry(); reg.Len() > 0 {
			return reg, nil
		}
	}

	markets, err := c.FetchMarkets(ctx)
	if err != nil {
		if c.cache != nil {
			cached, cacheErr := c.cache.LoadMarkets()
			if cacheErr == nil && len(cached) > 0 {
				c.logger.Warn("exchange unreachable, serving markets from cache",
					slog.Int("markets", len(cached)), slog.Any("error", err))
				reg := domain.NewRegistry(cached)
				c.setRegistry(reg)
				return reg, nil
			}
		}
		return nil, err
	}

	if c.cache != nil {
		if cacheErr := c.cache.UpsertMarkets(markets); cacheErr != nil {
			c.logger.Warn("failed to persist market cache", slog.Any("error", cacheErr))
		}
	}

	reg := domain.NewRegistry(markets)
	c.setRegistry(reg)
	return reg, nil
}

// market resolves a canonical symbol against the loaded registry.
func (c *Client) market(symbol string) (*domain.Market, error) {
	reg := c.Registry()
	if reg.Len() == 0 {
		return nil, fmt.Errorf("markets not loaded, call LoadMarkets first")
	}
	m, ok := reg.MarketBySymbol(symbol)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSymbol, symbol)
	}
	return m, nil
}

// doRequest signs and performs one HTTP exchange, honoring the rate limit,
// surfacing the error/message envelope and decoding the response into out.
func (c *Client) doRequest(ctx context.Context, method, path string, params map[string]any, private bool, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	signed, err := c.signer.Sign(method, path, params, private)
	if err != nil {
		return err
	}

	var bodyReader io.Reader
	if signed.Body != nil {
		bodyReader = bytes.NewReader(signed.Body)
	}

	req, err := http.NewRequestWithContext(ctx, signed.Method, signed.URL, bodyReader)
	if err != nil {
		return err
	}
	for k, v := range signed.Headers {
		req.Header.Set(k, v)
	}

	op := method + " " + path
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		infra.GlobalMetrics.RecordRequestError()
		return domain.NewNetworkError(op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	infra.GlobalMetrics.RecordRequest(time.Since(start).Nanoseconds())
	if err != nil {
		infra.GlobalMetrics.RecordRequestError()
		return domain.NewNetworkError(op, err)
	}

	if msg := apiErrorMessage(body); msg != "" {
		infra.GlobalMetrics.RecordRequestError()
		return &domain.ExchangeError{Op: op, Message: msg}
	}
	if resp.StatusCode != http.StatusOK {
		infra.GlobalMetrics.RecordRequestError()
		return &domain.ExchangeError{Op: op, Message: fmt.Sprintf("status %d", resp.StatusCode)}
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decode %s response: %w", path, err)
		}
	}
	return nil
}

// noteOrderState reports upstream order states missing from the mapping
// table; they pass through unchanged but must be visible.
func (c *Client) noteOrderState(state string) {
	if state != "" && !IsKnownOrderStatus(state) {
		infra.GlobalMetrics.RecordUnknownStatus()
		c.logger.Warn("unknown order state passed through", slog.String("state", state))
	}
}

func (c *Client) noteTransactionState(state string) {
	if state != "" && !IsKnownTransactionStatus(state) {
		infra.GlobalMetrics.RecordUnknownStatus()
		c.logger.Warn("unknown transaction state passed through", slog.String("state", state))
	}
}
