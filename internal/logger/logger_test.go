package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefault(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestJSONLogging(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	InitLoggerWithWriter(NewConfig("info", "json", "arc-planner", "1.2.0", "test", false), &buf)
	Info("plan computed", "roots", 2, "item_id", "anvil_ii")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "arc-planner", entry[AttrKeyService])
	assert.Equal(t, "1.2.0", entry[AttrKeyVersion])
	assert.Equal(t, "test", entry[AttrKeyEnvironment])
	assert.Equal(t, "plan computed", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, float64(2), entry["roots"])
	assert.Equal(t, "anvil_ii", entry["item_id"])
}

func TestTextLogging_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := New(NewConfig("warn", "text", "arc-planner", "dev", "dev", false), &buf)

	log.Info("catalog refreshed")
	log.Warn("primary source empty")

	out := buf.String()
	assert.NotContains(t, out, "catalog refreshed")
	assert.Contains(t, out, "primary source empty")
	assert.Contains(t, out, "service=arc-planner")
}

func TestRequestIDContext(t *testing.T) {
	restoreDefault(t)

	_, ok := RequestIDFromContext(context.Background())
	assert.False(t, ok)
	assert.Empty(t, GetRequestID(context.Background()))

	ctx := WithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", GetRequestID(ctx))

	var buf bytes.Buffer
	InitLoggerWithWriter(DefaultConfig(), &buf)
	FromContext(ctx).Info("tree built")
	assert.Contains(t, buf.String(), AttrKeyRequestID+"=req-123")
}

func TestGenerateRequestID(t *testing.T) {
	a, b := GenerateRequestID(), GenerateRequestID()
	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	assert.NoError(t, err)
}

func TestConfig_LogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"loud":    slog.LevelInfo,
	}
	for level, want := range tests {
		assert.Equal(t, want, Config{Level: level}.LogLevel(), level)
	}
}

func TestConfigPresets(t *testing.T) {
	def := DefaultConfig()
	assert.Equal(t, DefaultServiceName, def.ServiceName)
	assert.False(t, def.IsJSON())

	prod := ProductionConfig()
	assert.True(t, prod.IsJSON())
	assert.Equal(t, LogLevelInfo, prod.Level)
	assert.Equal(t, EnvironmentProduction, prod.Environment)
	assert.False(t, prod.AddSource)

	dev := DevelopmentConfig()
	assert.Equal(t, LogFormatText, dev.Format)
	assert.Equal(t, LogLevelDebug, dev.Level)
	assert.True(t, dev.AddSource)
	assert.True(t, strings.EqualFold(dev.Environment, EnvironmentDev))
}
