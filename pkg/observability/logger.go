package observability

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	attrTraceID = "trace_id"
	attrSpanID  = "span_id"
	attrService = "service"
	attrVersion = "version"
	attrMode    = "mode"
	attrEngine  = "engine"

	// logEventName names the span event that mirrors a warn-or-worse record.
	logEventName     = "log"
	attrLogSeverity  = "log.severity"
	attrLogMessage   = "log.message"
	spanEventMinimum = slog.LevelWarn
)

// TracingHandler is an [slog.Handler] tying log records to the run's span.
// Every record gets the span's trace_id and span_id; records at warn or above
// are also copied onto the span as a "log" event, so a failed solve shows its
// diagnostics next to the span's error status. Run attributes (service, mode,
// version, engine) are attached once at construction and stay at the top
// level under WithGroup.
type TracingHandler struct {
	inner slog.Handler
	// group prefixes event attribute keys the same way inner prefixes record keys.
	group string
}

// NewTracingHandler wraps inner with the run attributes taken from cfg.
// Empty version and engine are omitted.
func NewTracingHandler(inner slog.Handler, cfg Config) *TracingHandler {
	attrs := []slog.Attr{
		slog.String(attrService, cfg.ServiceName),
		slog.String(attrMode, string(cfg.Mode)),
	}

	if cfg.ServiceVersion != "" {
		attrs = append(attrs, slog.String(attrVersion, cfg.ServiceVersion))
	}

	if cfg.Engine != "" {
		attrs = append(attrs, slog.String(attrEngine, cfg.Engine))
	}

	return &TracingHandler{inner: inner.WithAttrs(attrs)}
}

// Enabled delegates to the inner handler.
func (th *TracingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return th.inner.Enabled(ctx, level)
}

// Handle stamps the record with the span identity, mirrors severe records
// onto the span, then delegates.
func (th *TracingHandler) Handle(ctx context.Context, record slog.Record) error {
	span := trace.SpanFromContext(ctx)

	sc := span.SpanContext()
	if sc.IsValid() {
		record.AddAttrs(
			slog.String(attrTraceID, sc.TraceID().String()),
			slog.String(attrSpanID, sc.SpanID().String()),
		)
	}

	if record.Level >= spanEventMinimum && span.IsRecording() {
		span.AddEvent(logEventName, trace.WithAttributes(th.eventAttributes(record)...))
	}

	err := th.inner.Handle(ctx, record)
	if err != nil {
		return fmt.Errorf("tracing handler: %w", err)
	}

	return nil
}

func (th *TracingHandler) eventAttributes(record slog.Record) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, record.NumAttrs()+2)
	attrs = append(attrs,
		attribute.String(attrLogSeverity, record.Level.String()),
		attribute.String(attrLogMessage, record.Message),
	)

	record.Attrs(func(a slog.Attr) bool {
		if a.Key == attrTraceID || a.Key == attrSpanID {
			return true
		}

		attrs = append(attrs, attribute.String(th.group+a.Key, a.Value.Resolve().String()))

		return true
	})

	return attrs
}

// WithAttrs returns a new TracingHandler with additional attributes on the inner handler.
func (th *TracingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TracingHandler{inner: th.inner.WithAttrs(attrs), group: th.group}
}

// WithGroup returns a new TracingHandler with a group prefix on the inner handler.
func (th *TracingHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return th
	}

	return &TracingHandler{inner: th.inner.WithGroup(name), group: th.group + name + "."}
}
