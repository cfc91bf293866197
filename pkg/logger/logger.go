package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// RequestIDKey is the context key for request ID
	RequestIDKey ContextKey = "request_id"
	// UsernameKey is the context key for the authenticated user
	UsernameKey ContextKey = "username"
)

// Config holds logger configuration
type Config struct {
	Level  string    // debug, info, warn, error
	Format string    // json, text
	Output io.Writer // defaults to os.Stdout
}

// ParseLevel maps a level name to a slog.Level, falling back to info
func ParseLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds a logger from the given configuration without installing it
func New(cfg *Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
	}

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}
	return slog.New(handler)
}

// Init initializes the global slog logger with the given configuration
func Init(cfg *Config) {
	slog.SetDefault(New(cfg))
}

// WithContext returns a logger with context values extracted
func WithContext(ctx context.Context) *slog.Logger {
	logger := slog.Default()

	if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
		logger = logger.With("request_id", requestID)
	}
	if username, ok := ctx.Value(UsernameKey).(string); ok && username != "" {
		logger = logger.With("username", username)
	}

	return logger
}

// Info logs at info level with context
func Info(ctx context.Context, msg string, args ...any) {
	WithContext(ctx).Info(msg, args...)
}

// Debug logs at debug level with context
func Debug(ctx context.Context, msg string, args ...any) {
	WithContext(ctx).Debug(msg, args...)
}

// Warn logs at warn level with context
func Warn(ctx context.Context, msg string, args ...any) {
	WithContext(ctx).Warn(msg, args...)
}

// Error logs at error level with context
func Error(ctx context.Context, msg string, args ...any) {
	WithContext(ctx).Error(msg, args...)
}
