package app

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"blockbid_go/internal/domain"
	"blockbid_go/internal/infra"
	"blockbid_go/internal/infra/blockbid"
	"blockbid_go/internal/infra/storage"
)

// Bootstrap orchestrates the application startup sequence
type Bootstrap struct {
	Config  *infra.Config
	Storage *storage.Storage
	Client  *blockbid.Client
}

// NewBootstrap creates a new Bootstrap instance
func NewBootstrap() *Bootstrap {
	return &Bootstrap{}
}

// Initialize performs core system initialization (config, logger, cache, client)
func (b *Bootstrap) Initialize() error {
	slog.Info("🚀 Bootstrapping Blockbid adapter...")

	// 1. Load Config
	cfg, err := infra.LoadConfig("configs/config.yaml")
	if err != nil {
		return err // Let main handle the error
	}
	b.Config = cfg

	// 2. Setup Logger
	logger := infra.NewLogger(cfg)
	slog.SetDefault(logger)

	// 3. Initialize market cache (optional)
	var cache domain.MarketCache
	if cfg.Cache.Enabled {
		path := cfg.Cache.Path
		if path == "" {
			path, err = defaultCachePath()
			if err != nil {
				return err
			}
		}
		store, err := storage.NewStorage(path)
		if err != nil {
			return err
		}
		b.Storage = store
		cache = store
		slog.Info("✅ Market cache initialized", slog.String("path", path))
	}

	// 4. Initialize exchange client
	b.Client = blockbid.NewClient(cfg, cache)
	slog.Info("✅ Blockbid client ready", slog.String("rest_url", cfg.API.Blockbid.RestURL))

	return nil
}

// defaultCachePath resolves the cache file location in the OS config dir.
func defaultCachePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "BlockbidGo", "data", "markets.db"), nil
}

// SyncMarkets loads the market table (refreshing the cache as a side effect)
// and records the sync time.
func (b *Bootstrap) SyncMarkets(ctx context.Context) error {
	slog.Info("🔄 Synchronizing markets...")

	reg, err := b.Client.LoadMarkets(ctx, true)
	if err != nil {
		return err
	}

	if b.Storage != nil {
		if err := b.Storage.SaveConfig("last_market_sync", time.Now().UTC().Format(time.RFC3339)); err != nil {
			slog.Warn("Failed to record sync time", slog.Any("error", err))
		}
	}

	slog.Info("✨ Market synchronization completed", slog.Int("markets", reg.Len()))
	return nil
}
