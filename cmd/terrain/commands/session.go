package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Sumatoshi-tech/terrain/pkg/config"
	"github.com/Sumatoshi-tech/terrain/pkg/observability"
	"github.com/Sumatoshi-tech/terrain/pkg/scenario"
	"github.com/Sumatoshi-tech/terrain/pkg/version"
)

const stdinArg = "-"

// session bundles what every command needs once flags are parsed.
type session struct {
	cfg       *config.Config
	providers observability.Providers
	metrics   *observability.RunMetrics
	span      trace.Span
	started   time.Time
}

// openSession loads config, applies flag overrides, and starts telemetry
// plus a span named after the mode.
func openSession(cmd *cobra.Command, globals *globalOptions, mode observability.AppMode) (context.Context, *session, error) {
	cfg, err := config.LoadConfig(globals.configPath)
	if err != nil {
		return nil, nil, err
	}

	err = applyOverrides(cmd, globals, cfg)
	if err != nil {
		return nil, nil, err
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}

	obsCfg := observability.DefaultConfig()
	obsCfg.ServiceVersion = version.Version
	obsCfg.Mode = mode
	obsCfg.Engine = cfg.Engine.Kind
	obsCfg.LogLevel = level
	obsCfg.LogJSON = cfg.Logging.JSON
	obsCfg.LogOutput = cmd.ErrOrStderr()
	obsCfg.Metrics = cfg.Metrics.Enabled

	providers, err := observability.Init(obsCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("init observability: %w", err)
	}

	runMetrics, err := observability.NewRunMetrics(providers.Meter)
	if err != nil {
		return nil, nil, fmt.Errorf("init run metrics: %w", err)
	}

	ctx, span := providers.Tracer.Start(cmd.Context(), "terrain."+string(mode))

	return ctx, &session{
		cfg:       cfg,
		providers: providers,
		metrics:   runMetrics,
		span:      span,
		started:   time.Now(),
	}, nil
}

// applyOverrides lets explicitly set flags win over file and env values.
func applyOverrides(cmd *cobra.Command, globals *globalOptions, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed(flagFormat) {
		cfg.Output.Format, _ = flags.GetString(flagFormat)
	}

	if flags.Changed(flagEngine) {
		cfg.Engine.Kind, _ = flags.GetString(flagEngine)
	}

	if noColor, _ := flags.GetBool(flagNoColor); noColor {
		cfg.Output.Color = false
	}

	if enabled, _ := flags.GetBool(flagMetrics); enabled {
		cfg.Metrics.Enabled = true
	}

	switch {
	case globals.quiet:
		cfg.Logging.Level = "error"
	case globals.verbose:
		cfg.Logging.Level = "debug"
	}

	err := cfg.Validate()
	if err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	return nil
}

// load parses the scenario from path, or stdin when path is empty or "-".
func (s *session) load(ctx context.Context, cmd *cobra.Command, path string) (*scenario.Scenario, error) {
	var in io.Reader = cmd.InOrStdin()

	if path != "" && path != stdinArg {
		f, err := os.Open(path)
		if err != nil {
			return nil, s.fail(fmt.Errorf("open scenario: %w", err))
		}
		defer f.Close()

		in = f
	}

	scn, err := scenario.Parse(in, s.cfg.ScenarioLimits())
	if err != nil {
		return nil, s.fail(err)
	}

	s.span.SetAttributes(
		attribute.Int("terrain.positions", scn.N),
		attribute.Int("terrain.operations", len(scn.Ops)),
	)
	s.providers.Logger.DebugContext(ctx, "scenario parsed",
		"positions", scn.N, "operations", len(scn.Ops), "source", sourceName(path))

	return scn, nil
}

// fail marks the span as failed and hands err back.
func (s *session) fail(err error) error {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())

	return err
}

// record emits run metrics and, when enabled, dumps them to the command's stderr.
func (s *session) record(ctx context.Context, cmd *cobra.Command, scn *scenario.Scenario, positions int) error {
	ops := make(map[string]int64)
	for kind, count := range scn.CountByKind() {
		ops[kind.Name()] = int64(count)
	}

	elapsed := time.Since(s.started)

	s.metrics.RecordRun(ctx, observability.RunStats{
		Engine:     s.cfg.Engine.Kind,
		Positions:  int64(positions),
		Operations: ops,
		Duration:   elapsed,
	})
	s.providers.Logger.InfoContext(ctx, "run complete",
		"engine", s.cfg.Engine.Kind, "positions", positions, "elapsed", elapsed)

	if !s.cfg.Metrics.Enabled {
		return nil
	}

	return s.providers.WriteMetrics(cmd.ErrOrStderr())
}

// close ends the span and flushes telemetry.
func (s *session) close(ctx context.Context) error {
	s.span.End()

	return s.providers.Shutdown(ctx)
}

func sourceName(path string) string {
	if path == "" || path == stdinArg {
		return "stdin"
	}

	return path
}

func argOrEmpty(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}

	return ""
}
