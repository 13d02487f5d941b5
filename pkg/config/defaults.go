package config

// Engine names.
const (
	EngineDifference = "difference"
	EngineFenwick    = "fenwick"
)

// Output defaults.
const (
	DefaultOutputFormat = "plain"
	DefaultOutputColor  = false
)

// Engine defaults.
const (
	DefaultEngine = EngineDifference
)

// Limit defaults. Sized so that n*k stays well inside int64.
const (
	DefaultMaxPositions  = 1_000_000
	DefaultMaxOperations = 1_000_000
)

// Logging defaults.
const (
	DefaultLogLevel = "warn"
	DefaultLogJSON  = false
)

// Metrics defaults.
const (
	DefaultMetricsEnabled = false
)
