package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"blockbid_go/internal/domain"
	"blockbid_go/pkg/safe"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Storage is the local SQLite-backed market metadata cache. It implements
// domain.MarketCache so a registry can be rebuilt while the exchange is
// unreachable.
type Storage struct {
	db *gorm.DB
}

// NewStorage opens (or creates) the SQLite cache at path.
func NewStorage(path string) (*Storage, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	// Pure Go SQLite, no cgo.
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	if err := db.AutoMigrate(&domain.MarketRecord{}, &domain.AppConfig{}); err != nil {
		return nil, fmt.Errorf("failed to migrate cache database: %w", err)
	}

	return &Storage{db: db}, nil
}

// ======================================================================================
// Market Operations
// ======================================================================================

// UpsertMarkets replaces or inserts the market metadata rows.
func (s *Storage) UpsertMarkets(markets []domain.Market) error {
	if len(markets) == 0 {
		return nil
	}

	records := make([]domain.MarketRecord, 0, len(markets))
	for _, m := range markets {
		records = append(records, toRecord(m))
	}

	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&records).Error
}

// LoadMarkets retrieves all cached markets.
func (s *Storage) LoadMarkets() ([]domain.Market, error) {
	var records []domain.MarketRecord
	if err := s.db.Find(&records).Error; err != nil {
		return nil, err
	}

	markets := make([]domain.Market, 0, len(records))
	for _, r := range records {
		markets = append(markets, fromRecord(r))
	}
	return markets, nil
}

func toRecord(m domain.Market) domain.MarketRecord {
	r := domain.MarketRecord{
		ID:              m.ID,
		Symbol:          m.Symbol,
		Base:            m.Base,
		Quote:           m.Quote,
		BaseID:          m.BaseID,
		QuoteID:         m.QuoteID,
		Active:          m.Active,
		AmountPrecision: m.Precision.Amount,
		PricePrecision:  m.Precision.Price,
	}
	if m.Limits.AmountMin != nil {
		r.AmountMin = m.Limits.AmountMin.String()
	}
	if m.Limits.AmountMax != nil {
		r.AmountMax = m.Limits.AmountMax.String()
	}
	return r
}

func fromRecord(r domain.MarketRecord) domain.Market {
	return domain.Market{
		ID:      r.ID,
		Symbol:  r.Symbol,
		Base:    r.Base,
		Quote:   r.Quote,
		BaseID:  r.BaseID,
		QuoteID: r.QuoteID,
		Active:  r.Active,
		Precision: domain.MarketPrecision{
			Amount: r.AmountPrecision,
			Price:  r.PricePrecision,
		},
		Limits: domain.MarketLimits{
			AmountMin: safe.DecFrom(r.AmountMin),
			AmountMax: safe.DecFrom(r.AmountMax),
		},
	}
}

// ======================================================================================
// Config Operations
// ======================================================================================

// SaveConfig saves an adapter-local key/value pair (e.g. last market sync).
func (s *Storage) SaveConfig(key, value string) error {
	config := domain.AppConfig{
		Key:   key,
		Value: value,
	}
	return s.db.Save(&config).Error
}

// LoadConfigMap loads all adapter-local key/value pairs.
func (s *Storage) LoadConfigMap() (map[string]string, error) {
	var configs []domain.AppConfig
	if err := s.db.Find(&configs).Error; err != nil {
		return nil, err
	}

	result := make(map[string]string)
	for _, cfg := range configs {
		result[cfg.Key] = cfg.Value
	}
	return result, nil
}
