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

func newBufferedLogger(t *testing.T, level string) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	return NewLogger(&LogConfig{Level: level, Format: "json", Output: &buf}), &buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestContextHandler_AddsRequestAndTenant(t *testing.T) {
	log, buf := newBufferedLogger(t, "info")

	ctx := WithRequestID(context.Background(), "req-123")
	ctx = WithTenant(ctx, 42, 7)
	log.InfoContext(ctx, "threshold updated")

	entry := decodeLine(t, buf)
	assert.Equal(t, "threshold updated", entry["msg"])
	assert.Equal(t, "req-123", entry["request_id"])
	assert.EqualValues(t, 42, entry["tenant_id"])
	assert.EqualValues(t, 7, entry["user_id"])
	assert.Equal(t, "req-123", RequestID(ctx))
}

func TestContextHandler_NoContextValues(t *testing.T) {
	log, buf := newBufferedLogger(t, "info")

	log.InfoContext(context.Background(), "plain")

	entry := decodeLine(t, buf)
	assert.NotContains(t, entry, "request_id")
	assert.NotContains(t, entry, "tenant_id")
}

func TestSanitizationHandler(t *testing.T) {
	tests := []struct {
		name     string
		log      func(*slog.Logger)
		key      string
		expected string
	}{
		{
			name:     "sensitive_attribute_key",
			log:      func(l *slog.Logger) { l.Info("connecting", slog.String("db_password", "hunter2")) },
			key:      "db_password",
			expected: "***REDACTED***",
		},
		{
			name:     "dsn_credentials",
			log:      func(l *slog.Logger) { l.Info("connecting", slog.String("dsn", "postgresql://app:hunter2@db:5432/x")) },
			key:      "dsn",
			expected: "postgresql://app:***REDACTED***@db:5432/x",
		},
		{
			name:     "inline_secret_in_message",
			log:      func(l *slog.Logger) { l.Info("token=abc123 rejected") },
			key:      "msg",
			expected: "token=***REDACTED*** rejected",
		},
		{
			name:     "with_attrs_are_sanitized",
			log:      func(l *slog.Logger) { l.With(slog.String("secret", "s")).Info("x") },
			key:      "secret",
			expected: "***REDACTED***",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, buf := newBufferedLogger(t, "info")
			tt.log(log)

			entry := decodeLine(t, buf)
			assert.Equal(t, tt.expected, entry[tt.key])
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.in).Level())
		})
	}
}

func TestNewLogger_LevelFilters(t *testing.T) {
	log, buf := newBufferedLogger(t, "warn")

	log.Info("dropped")
	assert.Zero(t, buf.Len())

	log.Warn("kept")
	assert.NotZero(t, buf.Len())
}
