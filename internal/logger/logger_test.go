package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"github.com/andresaoe/portafolio/internal/logger"
)

func TestNew_ProductionWritesJSONWithTraceIDs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, closer, err := logger.NewWithWriter(logger.Config{Env: "production", Level: "info"}, &buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer.Close() })

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	log.InfoContext(ctx, "contact stored", slog.Int64("id", 7))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "contact stored", record["msg"])
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", record["trace_id"])
	assert.Equal(t, "00f067aa0ba902b7", record["span_id"])
	assert.EqualValues(t, 7, record["id"])
}

func TestNew_LevelFilters(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, _, err := logger.NewWithWriter(logger.Config{Level: "warn"}, &buf)
	require.NoError(t, err)

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Error("visible")
	assert.Contains(t, buf.String(), "\x1b[31mvisible\x1b[0m")
	assert.NotContains(t, buf.String(), "trace_id")
}

func TestNew_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, _, err := logger.NewWithWriter(logger.Config{Level: "loud"}, &bytes.Buffer{})
	require.Error(t, err)
}

func TestNew_FileRotation(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "portafolio.log")
	var buf bytes.Buffer
	log, closer, err := logger.NewWithWriter(logger.Config{Level: "debug", File: path, MaxSizeMB: 1}, &buf)
	require.NoError(t, err)

	log.Debug("to both")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to both")
	assert.Contains(t, buf.String(), "to both")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		" warn": slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := logger.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
