package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"blockbid_go/internal/app"
	"blockbid_go/internal/domain"
	"blockbid_go/internal/infra"
)

func main() {
	// 1. Local overrides (.env is optional)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to load .env", slog.Any("error", err))
	}

	// 2. System Bootstrapping
	bootstrap := app.NewBootstrap()
	if err := bootstrap.Initialize(); err != nil {
		slog.Error("❌ Bootstrapping failed", slog.Any("error", err))
		os.Exit(1)
	}

	// 3. Graceful Shutdown Context
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Market Sync
	if err := bootstrap.SyncMarkets(ctx); err != nil {
		slog.Error("❌ Market sync failed", slog.Any("error", err))
		os.Exit(1)
	}

	client := bootstrap.Client

	// 5. Public market data round
	tickers, err := client.FetchTickers(ctx)
	if err != nil {
		slog.Error("Failed to fetch tickers", slog.Any("error", err))
	} else {
		slog.InfoContext(ctx, "✅ Tickers fetched", slog.Int("count", len(tickers)))
		for symbol, t := range tickers {
			if t.Last == nil {
				continue
			}
			slog.Info("Ticker", slog.String("symbol", symbol), slog.String("last", t.Last.String()))
		}
	}

	if reg := client.Registry(); reg.Len() > 0 {
		symbol := reg.Markets()[0].Symbol
		book, err := client.FetchOrderBook(ctx, symbol, 5)
		if err != nil {
			slog.Error("Failed to fetch order book", slog.String("symbol", symbol), slog.Any("error", err))
		} else {
			slog.InfoContext(ctx, "✅ Order book fetched",
				slog.String("symbol", symbol),
				slog.Int("bids", len(book.Bids)),
				slog.Int("asks", len(book.Asks)))
		}
	}

	// 6. Private round (only when credentials are configured)
	balances, err := client.FetchBalance(ctx)
	switch {
	case errors.Is(err, domain.ErrCredentialsMissing):
		slog.Info("No API credentials configured, skipping account data")
	case err != nil:
		slog.Error("Failed to fetch balances", slog.Any("error", err))
	default:
		slog.InfoContext(ctx, "✅ Balances fetched", slog.Int("currencies", len(balances)))
	}

	snap := infra.GlobalMetrics.Snapshot()
	slog.InfoContext(ctx, "👋 Done",
		slog.Uint64("requests", snap.RequestsTotal),
		slog.Uint64("request_errors", snap.RequestErrors),
		slog.Uint64("parse_failures", snap.ParseFailures))
}
