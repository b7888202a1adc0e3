// internal/pkg/logger/logger.go
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// ContextKey represents keys for context values
type ContextKey string

const (
	ContextKeyRequestID ContextKey = "request_id"
	ContextKeyTenantID  ContextKey = "tenant_id"
	ContextKeyUserID    ContextKey = "user_id"
	ContextKeyTaskID    ContextKey = "task_id"
)

// LogConfig holds logger configuration
type LogConfig struct {
	Level          string
	Format         string // json, text
	AddSource      bool
	ServiceName    string
	ServiceVersion string
	Environment    string
	Output         io.Writer
}

// SetupLogger builds the process logger from level and format and installs it as the slog default
func SetupLogger(level string, format string) *slog.Logger {
	return NewLogger(&LogConfig{
		Level:     level,
		Format:    format,
		AddSource: strings.EqualFold(level, "debug"),
	})
}

// NewLogger creates a context-aware, sanitizing logger
func NewLogger(config *LogConfig) *slog.Logger {
	w := config.Output
	if w == nil {
		w = os.Stdout
	}

	opts := &slog.HandlerOptions{
		Level:       parseLevel(config.Level),
		AddSource:   config.AddSource,
		ReplaceAttr: replaceAttr,
	}

	var handler slog.Handler
	switch config.Format {
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	handler = NewSanitizationHandler(NewContextHandler(handler))

	logger := slog.New(handler)
	if config.ServiceName != "" {
		logger = logger.With(
			slog.String("app", config.ServiceName),
			slog.String("version", config.ServiceVersion),
			slog.String("environment", config.Environment),
		)
	}

	slog.SetDefault(logger)
	return logger
}

// WithRequestID stores the request id for log enrichment
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// WithTenant stores the tenant and acting user ids for log enrichment
func WithTenant(ctx context.Context, tenantID, userID int64) context.Context {
	ctx = context.WithValue(ctx, ContextKeyTenantID, tenantID)
	return context.WithValue(ctx, ContextKeyUserID, userID)
}

// WithTaskID stores a background task id for log enrichment
func WithTaskID(ctx context.Context, taskID string) context.Context {
	return context.WithValue(ctx, ContextKeyTaskID, taskID)
}

// RequestID returns the request id stored in ctx, if any
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ContextKeyRequestID).(string)
	return id
}

func parseLevel(level string) slog.Leveler {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func defaultContextKeys() []ContextKey {
	return []ContextKey{
		ContextKeyRequestID,
		ContextKeyTenantID,
		ContextKeyUserID,
		ContextKeyTaskID,
	}
}

func extractContextAttrs(ctx context.Context, keys []ContextKey) []slog.Attr {
	if ctx == nil {
		return nil
	}

	var attrs []slog.Attr
	for _, key := range keys {
		switch v := ctx.Value(key).(type) {
		case string:
			if v != "" {
				attrs = append(attrs, slog.String(string(key), v))
			}
		case int64:
			attrs = append(attrs, slog.Int64(string(key), v))
		}
	}
	return attrs
}

func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.String(slog.TimeKey, a.Value.Time().UTC().Format(time.RFC3339Nano))
	}
	return a
}
