package observability_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/Sumatoshi-tech/terrain/pkg/observability"
)

func decodeRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var record map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	return record
}

func TestTracingHandler_InjectsTraceContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	inner := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	handler := observability.NewTracingHandler(inner, observability.Config{
		ServiceName:    "test-svc",
		ServiceVersion: "1.0.0",
		Mode:           observability.ModeSolve,
		Engine:         "fenwick",
	})
	logger := slog.New(handler)

	traceID, err := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	require.NoError(t, err)

	spanID, err := trace.SpanIDFromHex("0102030405060708")
	require.NoError(t, err)

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	logger.InfoContext(ctx, "test message")

	record := decodeRecord(t, &buf)

	assert.Equal(t, "0102030405060708090a0b0c0d0e0f10", record["trace_id"])
	assert.Equal(t, "0102030405060708", record["span_id"])
	assert.Equal(t, "test-svc", record["service"])
	assert.Equal(t, "1.0.0", record["version"])
	assert.Equal(t, "solve", record["mode"])
	assert.Equal(t, "fenwick", record["engine"])
}

func TestTracingHandler_NoTraceContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	inner := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	handler := observability.NewTracingHandler(inner, observability.Config{ServiceName: "terrain", Mode: observability.ModeExplain})
	logger := slog.New(handler)

	logger.InfoContext(context.Background(), "no span")

	record := decodeRecord(t, &buf)

	_, hasTraceID := record["trace_id"]
	assert.False(t, hasTraceID)

	_, hasVersion := record["version"]
	assert.False(t, hasVersion)

	_, hasEngine := record["engine"]
	assert.False(t, hasEngine)

	assert.Equal(t, "terrain", record["service"])
	assert.Equal(t, "explain", record["mode"])
}

func TestTracingHandler_WithGroup(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	inner := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	handler := observability.NewTracingHandler(inner, observability.Config{ServiceName: "terrain", Mode: observability.ModeSolve})
	logger := slog.New(handler)

	grouped := logger.WithGroup("scenario")
	grouped.InfoContext(context.Background(), "parsed", slog.Int("positions", 5))

	record := decodeRecord(t, &buf)

	assert.Equal(t, "terrain", record["service"])

	scenario, ok := record["scenario"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 5, scenario["positions"], 0)
}

func TestTracingHandler_WithAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	inner := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	handler := observability.NewTracingHandler(inner, observability.Config{ServiceName: "terrain", Mode: observability.ModeSolve})
	logger := slog.New(handler)

	logger.With(slog.String("engine", "fenwick")).InfoContext(context.Background(), "started")

	record := decodeRecord(t, &buf)

	assert.Equal(t, "fenwick", record["engine"])
	assert.Equal(t, "terrain", record["service"])
}

func TestTracingHandler_RespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	inner := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})
	logger := slog.New(observability.NewTracingHandler(inner, observability.Config{ServiceName: "terrain", Mode: observability.ModeSolve}))

	logger.InfoContext(context.Background(), "dropped")
	assert.Zero(t, buf.Len())

	logger.WarnContext(context.Background(), "kept")
	assert.NotZero(t, buf.Len())
}

func TestTracingHandler_MirrorsWarningsOntoSpan(t *testing.T) {
	t.Parallel()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))

	var buf bytes.Buffer

	inner := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := slog.New(observability.NewTracingHandler(inner, observability.Config{
		ServiceName: "terrain",
		Mode:        observability.ModeSolve,
		Engine:      "difference",
	}))

	ctx, span := tp.Tracer("test").Start(context.Background(), "solve")
	logger.InfoContext(ctx, "parsed", slog.Int("positions", 5))
	logger.WithGroup("scenario").WarnContext(ctx, "operation rejected", slog.Int("index", 3))
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	require.Len(t, spans[0].Events, 1)

	event := spans[0].Events[0]
	assert.Equal(t, "log", event.Name)
	assert.Contains(t, event.Attributes, attribute.String("log.severity", "WARN"))
	assert.Contains(t, event.Attributes, attribute.String("log.message", "operation rejected"))
	assert.Contains(t, event.Attributes, attribute.String("scenario.index", "3"))
}

func TestTracingHandler_NoEventWithoutRecordingSpan(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	inner := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := slog.New(observability.NewTracingHandler(inner, observability.Config{ServiceName: "terrain"}))

	assert.NotPanics(t, func() { logger.ErrorContext(context.Background(), "solve failed") })

	record := decodeRecord(t, &buf)
	assert.Equal(t, "solve failed", record["msg"])
}
