package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/Mansion_Go/internal/config"
	"github.com/osse101/Mansion_Go/internal/logger"
)

// SetupLogger initializes the application logger. The console belongs to the
// game, so logs go to a timestamped file under LOG_DIR (or nowhere when LOG_DIR
// is empty). Old session logs beyond the retention count are removed.
// Returns the log file handle (caller must close; nil when logging is discarded).
func SetupLogger(cfg *config.Config) (*os.File, error) {
	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDevelopment(),
	)

	if cfg.LogDir == "" {
		logger.InitLoggerWithWriter(loggerConfig, io.Discard)
		return nil, nil
	}

	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	cleanupLogs(cfg.LogDir, LogFileRetentionCount)

	timestamp := time.Now().Format(LogFileTimestampFormat)
	logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, timestamp))

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger.InitLoggerWithWriter(loggerConfig, logFile)

	slog.Info(LogMsgLoggingInitialized, "level", loggerConfig.LogLevel(), "file", logFileName)
	slog.Info(LogMsgStartingGame,
		"environment", cfg.Environment,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)
	slog.Debug("Configuration loaded",
		"save_file", cfg.SaveFile,
		"inventory_limit", cfg.InventoryLimit,
		"clear_screen", cfg.ClearScreen,
		"metrics_file", cfg.MetricsFile)

	for _, warning := range cfg.Warnings() {
		slog.Warn(LogMsgConfigWarning, "warning", warning)
	}

	return logFile, nil
}

// cleanupLogs removes the oldest log files so that at most keep remain.
// Session log names embed a sortable timestamp, so name order is age order.
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}

	if len(logFiles) <= keep {
		return
	}

	sort.Strings(logFiles)
	for _, name := range logFiles[:len(logFiles)-keep] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			slog.Warn(LogMsgDeleteLogFailed, "file", name, "error", err)
		}
	}
}
