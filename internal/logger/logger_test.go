package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestJSONLogging(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	config := Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
	}

	InitLoggerWithWriter(config, &buf)

	ctx := WithCommandID(WithSessionID(context.Background(), "session-1"), "command-1")
	FromContext(ctx).Info("test message", "key", "value", "number", 42)

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))

	assert.Equal(t, "test-service", logEntry["service"])
	assert.Equal(t, "1.0.0", logEntry["version"])
	assert.Equal(t, "test", logEntry["environment"])
	assert.Equal(t, "test message", logEntry["msg"])
	assert.Equal(t, "INFO", logEntry["level"])
	assert.Equal(t, "value", logEntry["key"])
	assert.Equal(t, float64(42), logEntry["number"])
	assert.Equal(t, "session-1", logEntry["session_id"])
	assert.Equal(t, "command-1", logEntry["command_id"])
}

func TestLevelFiltering(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	InitLoggerWithWriter(NewConfig("warn", "text", "svc", "v", "test", false), &buf)

	slog.Info("hidden")
	slog.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestContextIDs(t *testing.T) {
	ctx := context.Background()

	_, ok := SessionIDFromContext(ctx)
	assert.False(t, ok)

	id := NewID()
	ctx = WithSessionID(ctx, id)
	got, ok := SessionIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = CommandIDFromContext(ctx)
	assert.False(t, ok)
	assert.NotNil(t, FromContext(ctx))
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, Config{Level: tt.level}.LogLevel())
		})
	}
}

func TestNewConfig(t *testing.T) {
	config := NewConfig(LogLevelDebug, "JSON", "mansion", "v1", "dev", true)

	assert.Equal(t, slog.LevelDebug, config.LogLevel())
	assert.True(t, config.IsJSON())
	assert.True(t, config.AddSource)
	assert.Len(t, config.BaseAttributes(), 3)
	assert.False(t, Config{Format: LogFormatText}.IsJSON())
}
