package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration. All fields come from the
// environment; with nothing set, the embedded world data and defaults are
// used.
type Config struct {
	ItemsPath    string `env:"DOORS_ITEMS_PATH"`
	RoomsPath    string `env:"DOORS_ROOMS_PATH"`
	MaxInventory int    `env:"DOORS_MAX_INVENTORY" envDefault:"10"`
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MaxInventory < 1 {
		return nil, fmt.Errorf("DOORS_MAX_INVENTORY must be at least 1, got %d", cfg.MaxInventory)
	}
	return &cfg, nil
}
