// Package config provides configuration loading and validation for terrain.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/Sumatoshi-tech/terrain/pkg/alg/levenshtein"
	"github.com/Sumatoshi-tech/terrain/pkg/render"
	"github.com/Sumatoshi-tech/terrain/pkg/scenario"
)

// Sentinel validation errors.
var (
	ErrInvalidEngine   = errors.New("invalid engine")
	ErrInvalidLimit    = errors.New("limits must be positive")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

const (
	// envPrefix namespaces environment overrides, e.g. TERRAIN_OUTPUT_FORMAT.
	envPrefix = "TERRAIN"

	// suggestDistance bounds how far a typo may be from an engine name to
	// earn a hint.
	suggestDistance = 3
)

// Engines lists the accepted engine names.
var Engines = []string{EngineDifference, EngineFenwick}

// Config holds all configuration for terrain.
type Config struct {
	Output  OutputConfig  `mapstructure:"output"`
	Engine  EngineConfig  `mapstructure:"engine"`
	Limits  LimitsConfig  `mapstructure:"limits"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// EngineConfig selects the update engine.
type EngineConfig struct {
	Kind string `mapstructure:"kind"`
}

// LimitsConfig caps accepted input sizes.
type LimitsConfig struct {
	MaxPositions  int `mapstructure:"max_positions"`
	MaxOperations int `mapstructure:"max_operations"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// MetricsConfig toggles the run metrics dump.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoadConfig loads configuration from file and environment variables.
// An empty configPath searches for terrain.yaml in the usual places and
// tolerates its absence; an explicit path must exist.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("terrain")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("./config")
		viperCfg.AddConfigPath("/etc/terrain")
	}

	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := config.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("output.format", DefaultOutputFormat)
	viperCfg.SetDefault("output.color", DefaultOutputColor)

	viperCfg.SetDefault("engine.kind", DefaultEngine)

	viperCfg.SetDefault("limits.max_positions", DefaultMaxPositions)
	viperCfg.SetDefault("limits.max_operations", DefaultMaxOperations)

	viperCfg.SetDefault("logging.level", DefaultLogLevel)
	viperCfg.SetDefault("logging.json", DefaultLogJSON)

	viperCfg.SetDefault("metrics.enabled", DefaultMetricsEnabled)
}

// Validate checks the configuration. It is re-run by the CLI after flag
// overrides are applied.
func (c *Config) Validate() error {
	formatErr := render.ValidateFormat(c.Output.Format)
	if formatErr != nil {
		return formatErr
	}

	if !slices.Contains(Engines, c.Engine.Kind) {
		if best, ok := levenshtein.Closest(c.Engine.Kind, Engines, suggestDistance); ok {
			return fmt.Errorf("%w: %q, did you mean %q?", ErrInvalidEngine, c.Engine.Kind, best)
		}

		return fmt.Errorf("%w: %q (want one of %s)", ErrInvalidEngine, c.Engine.Kind, strings.Join(Engines, ", "))
	}

	if c.Limits.MaxPositions <= 0 || c.Limits.MaxOperations <= 0 {
		return fmt.Errorf("%w: max_positions=%d max_operations=%d",
			ErrInvalidLimit, c.Limits.MaxPositions, c.Limits.MaxOperations)
	}

	_, levelErr := c.LogLevel()

	return levelErr
}

// LogLevel parses Logging.Level ("debug", "info", "warn", "error").
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level

	err := level.UnmarshalText([]byte(c.Logging.Level))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}

	return level, nil
}

// ScenarioLimits converts the limits section for scenario.Parse.
func (c *Config) ScenarioLimits() scenario.Limits {
	return scenario.Limits{
		MaxPositions:  c.Limits.MaxPositions,
		MaxOperations: c.Limits.MaxOperations,
	}
}
