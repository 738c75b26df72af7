package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"SAVE_FILE", "INVENTORY_LIMIT", "CLEAR_SCREEN",
	"LOG_LEVEL", "LOG_FORMAT", "LOG_DIR", "METRICS_FILE",
	"ENVIRONMENT", "SERVICE_NAME", "VERSION",
}

// clearEnvVars blanks every variable Load reads; t.Setenv restores them afterwards.
// caarlos0/env treats an empty value as unset and applies the default.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		t.Setenv(key, "")
	}
	// keep a stray .env in the package directory from leaking in
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "savegame.json", cfg.SaveFile)
		assert.Equal(t, 10, cfg.InventoryLimit)
		assert.True(t, cfg.ClearScreen)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "logs", cfg.LogDir)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, "mansion", cfg.ServiceName)
		assert.Empty(t, cfg.MetricsFile)
		assert.True(t, cfg.IsDevelopment())
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("SAVE_FILE", "/tmp/slot1.json")
		t.Setenv("INVENTORY_LIMIT", "3")
		t.Setenv("CLEAR_SCREEN", "false")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "prod")
		t.Setenv("METRICS_FILE", "/tmp/mansion.prom")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "/tmp/slot1.json", cfg.SaveFile)
		assert.Equal(t, 3, cfg.InventoryLimit)
		assert.False(t, cfg.ClearScreen)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "/tmp/mansion.prom", cfg.MetricsFile)
		assert.False(t, cfg.IsDevelopment())
	})

	t.Run("returns error for non-numeric inventory limit", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("INVENTORY_LIMIT", "lots")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse env:")
	})

	t.Run("returns error for zero inventory limit", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("INVENTORY_LIMIT", "0")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "INVENTORY_LIMIT")
		assert.Contains(t, err.Error(), "min=1")
	})

	t.Run("returns error for unknown log format", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("LOG_FORMAT", "xml")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "LOG_FORMAT")
	})
}

func TestWarnings(t *testing.T) {
	dir := t.TempDir()

	t.Run("no warnings for existing directories", func(t *testing.T) {
		cfg := &Config{
			SaveFile:    filepath.Join(dir, "save.json"),
			MetricsFile: filepath.Join(dir, "metrics.prom"),
			LogDir:      "logs",
		}
		assert.Empty(t, cfg.Warnings())
	})

	t.Run("warns about missing directories and disabled logs", func(t *testing.T) {
		cfg := &Config{
			SaveFile:    filepath.Join(dir, "missing", "save.json"),
			MetricsFile: filepath.Join(dir, "gone", "metrics.prom"),
		}

		warnings := cfg.Warnings()

		require.Len(t, warnings, 3)
		assert.Contains(t, warnings[0], "SAVE_FILE")
		assert.Contains(t, warnings[1], "METRICS_FILE")
		assert.Equal(t, WarnLogDirEmpty, warnings[2])
	})
}
