package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/terrain/pkg/config"
	"github.com/Sumatoshi-tech/terrain/pkg/observability"
	"github.com/Sumatoshi-tech/terrain/pkg/render"
	"github.com/Sumatoshi-tech/terrain/pkg/terrain"
)

const (
	solveCmdUse   = "solve [file]"
	solveCmdShort = "Apply every update and print the height of each position"
	solveMaxArgs  = 1
)

// solveCommand runs solve either as the root default or as a subcommand.
// Flag values are read back through applyOverrides so only explicitly set
// flags win over config.
type solveCommand struct {
	globals *globalOptions
}

func newSolveCommand(globals *globalOptions) *cobra.Command {
	sc := &solveCommand{globals: globals}

	cmd := &cobra.Command{
		Use:   solveCmdUse,
		Short: solveCmdShort,
		Long: `Solve reads a scenario from file (or stdin when omitted or "-") and writes
the final profile to stdout, one height per line by default.`,
		Args: cobra.MaximumNArgs(solveMaxArgs),
		RunE: sc.run,
	}

	sc.bindFlags(cmd)

	return cmd
}

func (*solveCommand) bindFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(flagFormat, "f", config.DefaultOutputFormat,
		"Output format: plain, json, yaml, table, plot")
	cmd.Flags().StringP(flagEngine, "e", config.DefaultEngine,
		"Update engine: difference (offline, O(n+k)) or fenwick (online, O((n+k) log n))")
	cmd.Flags().Bool(flagNoColor, false, "Disable colored table output")
	cmd.Flags().Bool(flagMetrics, false, "Print run metrics in Prometheus text format to stderr")
}

func (sc *solveCommand) run(cmd *cobra.Command, args []string) (err error) {
	ctx, sess, err := openSession(cmd, sc.globals, observability.ModeSolve)
	if err != nil {
		return err
	}

	defer func() {
		err = errors.Join(err, sess.close(cmd.Context()))
	}()

	scn, err := sess.load(ctx, cmd, argOrEmpty(args, 0))
	if err != nil {
		return err
	}

	heights := scn.Run(newEngine(sess.cfg.Engine.Kind, scn.N))

	err = render.Write(cmd.OutOrStdout(), render.NewResult(heights), render.Options{
		Format: sess.cfg.Output.Format,
		Color:  sess.cfg.Output.Color,
	})
	if err != nil {
		return sess.fail(fmt.Errorf("render: %w", err))
	}

	return sess.record(ctx, cmd, scn, len(heights))
}

// newEngine maps a validated engine name to an implementation.
func newEngine(kind string, n int) terrain.Engine {
	if kind == config.EngineFenwick {
		return terrain.NewOnline(n)
	}

	return terrain.New(n)
}
