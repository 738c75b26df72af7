package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Game
	SaveFile       string `env:"SAVE_FILE" envDefault:"savegame.json" validate:"required"`
	InventoryLimit int    `env:"INVENTORY_LIMIT" envDefault:"10" validate:"min=1,max=100"`
	ClearScreen    bool   `env:"CLEAR_SCREEN" envDefault:"true"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn warning error"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	LogDir    string `env:"LOG_DIR" envDefault:"logs"`

	// Metrics textfile written on exit; empty disables it
	MetricsFile string `env:"METRICS_FILE"`

	// Application metadata
	Environment string `env:"ENVIRONMENT" envDefault:"dev" validate:"required"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"mansion" validate:"required"`
	Version     string `env:"VERSION" envDefault:"dev"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsDevelopment reports whether the app runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDev || c.Environment == EnvDevelopment
}
