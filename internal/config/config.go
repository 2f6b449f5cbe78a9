package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// Config holds every tunable of the storefront service. Values come from the
// environment, with a .env file honored for local development.
type Config struct {
	Port         string `envconfig:"PORT" default:"8080"`
	ReadTimeout  string `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout string `envconfig:"SERVER_WRITE_TIMEOUT" default:"10s"`

	// DataDir, when set, switches session state persistence from in-memory
	// to JSON files under the directory.
	DataDir string `envconfig:"DATA_DIR" default:""`

	// Pricing rules. Decimal strings to avoid float round-trips.
	FreeShippingThreshold string `envconfig:"FREE_SHIPPING_THRESHOLD" default:"2000"`
	FlatShippingFee       string `envconfig:"FLAT_SHIPPING_FEE" default:"50"`

	// First-order promotion.
	FirstOrderCode    string `envconfig:"FIRST_ORDER_CODE" default:"İLK10"`
	FirstOrderPercent int64  `envconfig:"FIRST_ORDER_PERCENT" default:"10"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if _, err := decimal.NewFromString(cfg.FreeShippingThreshold); err != nil {
		return nil, fmt.Errorf("invalid FREE_SHIPPING_THRESHOLD %q: %w", cfg.FreeShippingThreshold, err)
	}
	if _, err := decimal.NewFromString(cfg.FlatShippingFee); err != nil {
		return nil, fmt.Errorf("invalid FLAT_SHIPPING_FEE %q: %w", cfg.FlatShippingFee, err)
	}
	if cfg.FirstOrderPercent < 0 || cfg.FirstOrderPercent > 100 {
		return nil, fmt.Errorf("FIRST_ORDER_PERCENT out of range: %d", cfg.FirstOrderPercent)
	}
	return &cfg, nil
}

// Threshold returns the free-shipping threshold as a decimal.
func (c *Config) Threshold() decimal.Decimal {
	d, _ := decimal.NewFromString(c.FreeShippingThreshold)
	return d
}

// ShippingFee returns the flat shipping fee as a decimal.
func (c *Config) ShippingFee() decimal.Decimal {
	d, _ := decimal.NewFromString(c.FlatShippingFee)
	return d
}
