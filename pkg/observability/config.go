// Package observability provides OpenTelemetry-based tracing, metrics, and
// structured logging for the terrain commands.
package observability

import (
	"io"
	"log/slog"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// AppMode identifies the command being run.
type AppMode string

const (
	// ModeSolve materializes a full profile.
	ModeSolve AppMode = "solve"
	// ModeExplain breaks down a single position.
	ModeExplain AppMode = "explain"
)

const (
	// defaultServiceName is the default OTel service name.
	defaultServiceName = "terrain"

	// defaultShutdownTimeoutSec is the default shutdown timeout in seconds.
	defaultShutdownTimeoutSec = 5
)

// Config holds all observability configuration.
type Config struct {
	// ServiceName is the OTel resource service name.
	ServiceName string

	// ServiceVersion is the semantic version of the running binary.
	ServiceVersion string

	// Mode identifies which command the binary was launched with.
	Mode AppMode

	// Engine names the update engine of the run; attached to every log record.
	Engine string

	// LogLevel controls the minimum slog severity.
	LogLevel slog.Level

	// LogJSON enables JSON-formatted log output.
	LogJSON bool

	// LogOutput receives log records. Nil means os.Stderr.
	LogOutput io.Writer

	// Metrics enables the Prometheus-backed meter provider. When false the
	// meter is a no-op and WriteMetrics writes nothing.
	Metrics bool

	// SpanExporter receives finished spans synchronously. Nil keeps spans
	// in-process only, which still gives log records a trace_id.
	SpanExporter sdktrace.SpanExporter

	// ShutdownTimeoutSec is the maximum seconds to wait for flush on shutdown.
	ShutdownTimeoutSec int
}

// DefaultConfig returns a Config with sensible defaults for zero-config startup.
func DefaultConfig() Config {
	return Config{
		ServiceName:        defaultServiceName,
		Mode:               ModeSolve,
		LogLevel:           slog.LevelWarn,
		ShutdownTimeoutSec: defaultShutdownTimeoutSec,
	}
}
