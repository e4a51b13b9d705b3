package storage

import (
	"path/filepath"
	"testing"

	"blockbid_go/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *Storage {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := db.AutoMigrate(&domain.MarketRecord{}, &domain.AppConfig{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return &Storage{db: db}
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestUpsertAndLoadMarkets(t *testing.T) {
	s := setupTestDB(t)

	markets := []domain.Market{
		{
			ID:      "btc-aud",
			Symbol:  "BTC/AUD",
			Base:    "BTC",
			Quote:   "AUD",
			BaseID:  "btc",
			QuoteID: "aud",
			Active:  true,
			Precision: domain.MarketPrecision{
				Amount: 8,
				Price:  8,
			},
			Limits: domain.MarketLimits{
				AmountMin: decPtr("0.001"),
			},
		},
		{
			ID:      "eth-aud",
			Symbol:  "ETH/AUD",
			Base:    "ETH",
			Quote:   "AUD",
			BaseID:  "eth",
			QuoteID: "aud",
			Active:  false,
		},
	}

	if err := s.UpsertMarkets(markets); err != nil {
		t.Fatalf("UpsertMarkets failed: %v", err)
	}

	loaded, err := s.LoadMarkets()
	if err != nil {
		t.Fatalf("LoadMarkets failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 markets, got %d", len(loaded))
	}

	byID := map[string]domain.Market{}
	for _, m := range loaded {
		byID[m.ID] = m
	}

	btc := byID["btc-aud"]
	if btc.Symbol != "BTC/AUD" {
		t.Errorf("expected symbol BTC/AUD, got %s", btc.Symbol)
	}
	if btc.Limits.AmountMin == nil || !btc.Limits.AmountMin.Equal(decimal.RequireFromString("0.001")) {
		t.Errorf("amount min did not survive the round trip: %v", btc.Limits.AmountMin)
	}

	eth := byID["eth-aud"]
	if eth.Active {
		t.Error("expected eth-aud to be inactive")
	}
	if eth.Limits.AmountMin != nil {
		t.Errorf("expected unknown amount min to stay nil, got %v", eth.Limits.AmountMin)
	}
}

func TestUpsertMarketsReplaces(t *testing.T) {
	s := setupTestDB(t)

	m := domain.Market{ID: "btc-aud", Symbol: "BTC/AUD", Active: true}
	if err := s.UpsertMarkets([]domain.Market{m}); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}

	m.Active = false
	if err := s.UpsertMarkets([]domain.Market{m}); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	loaded, err := s.LoadMarkets()
	if err != nil {
		t.Fatalf("LoadMarkets failed: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("expected 1 market after replace, got %d", len(loaded))
	}
	if loaded[0].Active {
		t.Error("expected upsert to overwrite the active flag")
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	s := setupTestDB(t)

	if err := s.SaveConfig("last_market_sync", "2026-08-28T00:00:00Z"); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}
	if err := s.SaveConfig("last_market_sync", "2026-08-28T01:00:00Z"); err != nil {
		t.Fatalf("SaveConfig update failed: %v", err)
	}

	cfg, err := s.LoadConfigMap()
	if err != nil {
		t.Fatalf("LoadConfigMap failed: %v", err)
	}
	if cfg["last_market_sync"] != "2026-08-28T01:00:00Z" {
		t.Errorf("expected updated value, got %q", cfg["last_market_sync"])
	}
}
