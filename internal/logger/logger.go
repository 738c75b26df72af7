package logger

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

type ctxKey string

const (
	sessionIDKey ctxKey = "sessionID"
	commandIDKey ctxKey = "commandID"
)

// InitLoggerWithWriter installs the default logger writing to w.
func InitLoggerWithWriter(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	attrs := cfg.BaseAttributes()
	args := make([]any, len(attrs))
	for i, attr := range attrs {
		args[i] = attr
	}

	log := slog.New(handler).With(args...)
	slog.SetDefault(log)
	return log
}

// NewID creates a new UUID for tracing sessions and commands.
func NewID() string {
	return uuid.NewString()
}

// WithSessionID returns a new context containing the play session ID.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// WithCommandID returns a new context containing the ID of one player command.
func WithCommandID(ctx context.Context, commandID string) context.Context {
	return context.WithValue(ctx, commandIDKey, commandID)
}

// SessionIDFromContext extracts the session ID from the context, if present.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	return stringValue(ctx, sessionIDKey)
}

// CommandIDFromContext extracts the command ID from the context, if present.
func CommandIDFromContext(ctx context.Context) (string, bool) {
	return stringValue(ctx, commandIDKey)
}

func stringValue(ctx context.Context, key ctxKey) (string, bool) {
	v := ctx.Value(key)
	if v == nil {
		return "", false
	}
	if id, ok := v.(string); ok {
		return id, true
	}
	return "", false
}

// FromContext returns a logger that includes the session and command IDs when present.
func FromContext(ctx context.Context) *slog.Logger {
	log := slog.Default()
	if id, ok := SessionIDFromContext(ctx); ok {
		log = log.With(AttrKeySessionID, id)
	}
	if id, ok := CommandIDFromContext(ctx); ok {
		log = log.With(AttrKeyCommandID, id)
	}
	return log
}
