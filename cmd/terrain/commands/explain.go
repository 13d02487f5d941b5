package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/terrain/pkg/config"
	"github.com/Sumatoshi-tech/terrain/pkg/observability"
	"github.com/Sumatoshi-tech/terrain/pkg/render"
	"github.com/Sumatoshi-tech/terrain/pkg/terrain"
)

const (
	explainCmdUse   = "explain <position> [file]"
	explainCmdShort = "List the updates covering one position and what each adds"
	explainMinArgs  = 1
	explainMaxArgs  = 2
)

// ErrInvalidPosition is returned when the position argument is not an
// integer inside [1, n].
var ErrInvalidPosition = errors.New("invalid position")

type explainCommand struct {
	globals *globalOptions
}

func newExplainCommand(globals *globalOptions) *cobra.Command {
	ec := &explainCommand{globals: globals}

	cmd := &cobra.Command{
		Use:   explainCmdUse,
		Short: explainCmdShort,
		Args:  cobra.RangeArgs(explainMinArgs, explainMaxArgs),
		RunE:  ec.run,
	}

	cmd.Flags().StringP(flagFormat, "f", config.DefaultOutputFormat,
		"Output format: plain, json, yaml, table")
	cmd.Flags().Bool(flagNoColor, false, "Disable colored table output")
	cmd.Flags().Bool(flagMetrics, false, "Print run metrics in Prometheus text format to stderr")

	return cmd
}

func (ec *explainCommand) run(cmd *cobra.Command, args []string) (err error) {
	pos, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidPosition, args[0])
	}

	ctx, sess, err := openSession(cmd, ec.globals, observability.ModeExplain)
	if err != nil {
		return err
	}

	defer func() {
		err = errors.Join(err, sess.close(cmd.Context()))
	}()

	scn, err := sess.load(ctx, cmd, argOrEmpty(args, 1))
	if err != nil {
		return err
	}

	if pos < 1 || pos > scn.N {
		return sess.fail(fmt.Errorf("%w: %d is outside [1, %d]", ErrInvalidPosition, pos, scn.N))
	}

	ex := render.NewExplanation(terrain.NewIndex(scn.Ops), pos)

	err = render.WriteExplanation(cmd.OutOrStdout(), ex, render.Options{
		Format: sess.cfg.Output.Format,
		Color:  sess.cfg.Output.Color,
	})
	if err != nil {
		return sess.fail(fmt.Errorf("render: %w", err))
	}

	return sess.record(ctx, cmd, scn, 1)
}
