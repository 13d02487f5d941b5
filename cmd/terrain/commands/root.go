// Package commands implements the terrain CLI subcommands.
package commands

import (
	"github.com/spf13/cobra"
)

const (
	flagConfig  = "config"
	flagVerbose = "verbose"
	flagQuiet   = "quiet"
	flagFormat  = "format"
	flagEngine  = "engine"
	flagNoColor = "no-color"
	flagMetrics = "metrics"
)

// globalOptions are bound to the root command's persistent flags.
type globalOptions struct {
	configPath string
	verbose    bool
	quiet      bool
}

// NewRootCommand builds the terrain command tree. Without a subcommand the
// root behaves like solve.
func NewRootCommand() *cobra.Command {
	globals := &globalOptions{}
	rootSolve := &solveCommand{globals: globals}

	rootCmd := &cobra.Command{
		Use:   "terrain [file]",
		Short: "Apply raise, depress, hill and valley updates to a 1-D profile",
		Long: `Terrain reads a scenario (n, k, then k lines of "KIND start end") and
prints the resulting height of every position.

Kinds:
  R  raise every position in [start, end] by 1
  D  depress every position in [start, end] by 1
  H  add a triangular hill peaking at the interval midpoint
  V  add a triangular valley (negated hill)

Commands:
  solve     Materialize the whole profile (default)
  explain   Show which updates shape one position`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          rootSolve.run,
	}

	rootCmd.PersistentFlags().StringVarP(&globals.configPath, flagConfig, "c", "", "config file (default: terrain.yaml in ., ./config, /etc/terrain)")
	rootCmd.PersistentFlags().BoolVarP(&globals.verbose, flagVerbose, "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&globals.quiet, flagQuiet, "q", false, "suppress output")

	rootSolve.bindFlags(rootCmd)

	rootCmd.AddCommand(newSolveCommand(globals))
	rootCmd.AddCommand(newExplainCommand(globals))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
