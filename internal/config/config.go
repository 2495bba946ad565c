// Package config handles application configuration from environment variables
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration. The Steam identity values
// are fixed per deployment but flow through the core as parameters.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	AppID     int    `env:"STEAM_APP_ID" envDefault:"730"`
	ContextID int    `env:"STEAM_CONTEXT_ID" envDefault:"2"`
	Lang      string `env:"STEAM_LANG" envDefault:"spanish"`
	Currency  int    `env:"STEAM_CURRENCY" envDefault:"34"`

	// DefaultPageSize is the per_page applied when a page request does
	// not specify one. WalkPageSize is the fixed size used by the full
	// walk and by cached search; the two must stay aligned or cached
	// search cannot see walked pages.
	DefaultPageSize int `env:"DEFAULT_PAGE_SIZE" envDefault:"50"`
	WalkPageSize    int `env:"WALK_PAGE_SIZE" envDefault:"100"`

	// MaxWalkPages bounds a full inventory walk against an upstream
	// that never reports the end of its data.
	MaxWalkPages int `env:"MAX_WALK_PAGES" envDefault:"200"`

	InventoryTTL time.Duration `env:"INVENTORY_TTL" envDefault:"5m"`
	PriceTTL     time.Duration `env:"PRICE_TTL" envDefault:"10m"`
	PriceTimeout time.Duration `env:"PRICE_TIMEOUT" envDefault:"10s"`

	// PriceRateLimit is requests per client per minute on the price route
	PriceRateLimit int `env:"PRICE_RATE_LIMIT" envDefault:"30"`
}

// Load reads configuration from environment variables
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the cache engine cannot operate with
func (c Config) Validate() error {
	if c.DefaultPageSize < 1 || c.DefaultPageSize > 100 {
		return fmt.Errorf("DEFAULT_PAGE_SIZE must be 1-100, got %d", c.DefaultPageSize)
	}
	if c.WalkPageSize < 1 || c.WalkPageSize > 100 {
		return fmt.Errorf("WALK_PAGE_SIZE must be 1-100, got %d", c.WalkPageSize)
	}
	if c.MaxWalkPages < 1 {
		return fmt.Errorf("MAX_WALK_PAGES must be positive, got %d", c.MaxWalkPages)
	}
	if c.InventoryTTL <= 0 || c.PriceTTL <= 0 {
		return fmt.Errorf("cache TTLs must be positive")
	}
	return nil
}
