package infra

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Auth schemes supported by the exchange. Historical API revisions disagree,
// so both are kept behind configuration.
const (
	AuthSchemeHMAC   = "hmac"   // X-Blockbid-Signature / Nonce / Api-Key header triple
	AuthSchemeBearer = "bearer" // Authorization: Bearer + nonce header pair
)

// Trade side conventions. "taker" reads the payload's bid/ask token as the
// taker side (bid=buy); "maker" inverts it for public trades.
const (
	TradeSideTaker = "taker"
	TradeSideMaker = "maker"
)

// Config holds all application settings. Sensitive values can be overridden
// through environment variables after the file is loaded.
type Config struct {
	App struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"app"`

	API struct {
		Blockbid struct {
			RestURL             string `yaml:"rest_url"`
			APIKey              string `yaml:"api_key"`
			Secret              string `yaml:"secret"`
			AuthScheme          string `yaml:"auth_scheme"`
			TradeSideConvention string `yaml:"trade_side_convention"`
			RateLimitMS         int    `yaml:"rate_limit_ms"`
		} `yaml:"blockbid"`
	} `yaml:"api"`

	Cache struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"` // empty = OS config dir
	} `yaml:"cache"`

	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// LoadConfig reads and parses the configuration file, applies environment
// overrides and validates the result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	overrideWithEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	bb := &c.API.Blockbid
	if bb.RestURL == "" {
		bb.RestURL = "https://api.dev.blockbid.io"
	}
	if bb.AuthScheme == "" {
		bb.AuthScheme = AuthSchemeHMAC
	}
	if bb.TradeSideConvention == "" {
		bb.TradeSideConvention = TradeSideTaker
	}
	if bb.RateLimitMS == 0 {
		bb.RateLimitMS = 1000
	}
}

// Validate checks configuration validity
func (c *Config) Validate() error {
	bb := &c.API.Blockbid
	if !strings.HasPrefix(bb.RestURL, "http://") && !strings.HasPrefix(bb.RestURL, "https://") {
		return fmt.Errorf("invalid Blockbid REST URL: %s", bb.RestURL)
	}
	if bb.AuthScheme != AuthSchemeHMAC && bb.AuthScheme != AuthSchemeBearer {
		return fmt.Errorf("unknown auth scheme: %s", bb.AuthScheme)
	}
	if bb.TradeSideConvention != TradeSideTaker && bb.TradeSideConvention != TradeSideMaker {
		return fmt.Errorf("unknown trade side convention: %s", bb.TradeSideConvention)
	}
	if bb.RateLimitMS < 0 {
		return fmt.Errorf("rate limit must be non-negative")
	}
	// Key and secret are optional here: public endpoints work without them,
	// and the signer rejects private calls on its own.
	if (bb.APIKey == "") != (bb.Secret == "") {
		return fmt.Errorf("api key and secret must be configured together")
	}
	return nil
}

// overrideWithEnv replaces sensitive values when environment variables exist.
func overrideWithEnv(cfg *Config) {
	if key := os.Getenv("BLOCKBID_API_KEY"); key != "" {
		cfg.API.Blockbid.APIKey = key
	}
	if secret := os.Getenv("BLOCKBID_SECRET"); secret != "" {
		cfg.API.Blockbid.Secret = secret
	}
	if url := os.Getenv("BLOCKBID_REST_URL"); url != "" {
		cfg.API.Blockbid.RestURL = url
	}
}
