package logger

import (
	"log/slog"
	"strings"
)

// Config represents logger configuration
type Config struct {
	Level       string // "debug", "info", "warn", "error"
	Format      string // "json", "text"
	ServiceName string
	Version     string
	Environment string // "dev", "prod", "test"
	AddSource   bool   // Include source file/line in logs
}

// NewConfig creates a config from explicit values (recommended)
func NewConfig(level, format, serviceName, version, environment string, addSource bool) Config {
	return Config{
		Level:       level,
		Format:      format,
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
		AddSource:   addSource,
	}
}

// LogLevel converts string level to slog.Level
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelWarn, LogLevelWarning:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsJSON returns true if format is JSON
func (c Config) IsJSON() bool {
	return strings.ToLower(c.Format) == LogFormatJSON
}

// BaseAttributes returns common attributes to add to all logs
func (c Config) BaseAttributes() []slog.Attr {
	return []slog.Attr{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	}
}
