package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/terrain/pkg/config"
	"github.com/Sumatoshi-tech/terrain/pkg/render"
)

const (
	testMaxPositions  = 500
	testMaxOperations = 20
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "terrain.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, render.FormatPlain, cfg.Output.Format)
	assert.False(t, cfg.Output.Color)
	assert.Equal(t, config.EngineDifference, cfg.Engine.Kind)
	assert.Equal(t, config.DefaultMaxPositions, cfg.Limits.MaxPositions)
	assert.Equal(t, config.DefaultMaxOperations, cfg.Limits.MaxOperations)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
output:
  format: table
  color: true
engine:
  kind: fenwick
limits:
  max_positions: 500
  max_operations: 20
logging:
  level: debug
  json: true
metrics:
  enabled: true
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, render.FormatTable, cfg.Output.Format)
	assert.True(t, cfg.Output.Color)
	assert.Equal(t, config.EngineFenwick, cfg.Engine.Kind)
	assert.Equal(t, testMaxPositions, cfg.Limits.MaxPositions)
	assert.Equal(t, testMaxOperations, cfg.Limits.MaxOperations)
	assert.Equal(t, testMaxPositions, cfg.ScenarioLimits().MaxPositions)
	assert.Equal(t, testMaxOperations, cfg.ScenarioLimits().MaxOperations)
	assert.True(t, cfg.Logging.JSON)
	assert.True(t, cfg.Metrics.Enabled)

	level, levelErr := cfg.LogLevel()
	require.NoError(t, levelErr)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "engine:\n  kind: fenwick\n")

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, config.EngineFenwick, cfg.Engine.Kind)
	assert.Equal(t, render.FormatPlain, cfg.Output.Format)
	assert.Equal(t, config.DefaultMaxPositions, cfg.Limits.MaxPositions)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadConfigMalformedFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "output: [unterminated\n")

	_, err := config.LoadConfig(path)
	require.Error(t, err)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("TERRAIN_ENGINE_KIND", "fenwick")
	t.Setenv("TERRAIN_OUTPUT_FORMAT", "json")
	t.Setenv("TERRAIN_LIMITS_MAX_POSITIONS", "42")

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, config.EngineFenwick, cfg.Engine.Kind)
	assert.Equal(t, render.FormatJSON, cfg.Output.Format)
	assert.Equal(t, 42, cfg.Limits.MaxPositions)
}

func TestLoadConfigInvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"unknown format", "output:\n  format: xml\n", render.ErrUnknownFormat},
		{"unknown engine", "engine:\n  kind: quantum\n", config.ErrInvalidEngine},
		{"zero positions", "limits:\n  max_positions: 0\n", config.ErrInvalidLimit},
		{"negative operations", "limits:\n  max_operations: -1\n", config.ErrInvalidLimit},
		{"bad level", "logging:\n  level: loud\n", config.ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.LoadConfig(writeConfig(t, tt.content))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateAfterOverride(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	cfg.Engine.Kind = "bogus"
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalidEngine)

	cfg.Engine.Kind = "fenwik"
	err = cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalidEngine)
	assert.Contains(t, err.Error(), `did you mean "fenwick"?`)

	cfg.Engine.Kind = config.EngineFenwick
	require.NoError(t, cfg.Validate())
}
