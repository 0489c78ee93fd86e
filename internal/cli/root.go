package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/quivertools/dtkit/pkg/buildinfo"
)

// Execute runs the dtkit CLI and returns an error if any command fails.
//
// The root command wires the invariants, classes and render subcommands,
// configures logging from the --verbose flag and attaches the logger to the
// command context, where subcommands retrieve it via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:   "dtkit",
		Short: "dtkit computes motivic DT invariants of quiver moduli",
		Long: `dtkit evaluates motivic Donaldson-Thomas invariants of quivers with
stability conditions. Problems are described in TOML files pairing a quiver
with a central charge; results are exact rational expressions in the square
root R of the Lefschetz motive L.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newInvariantsCmd())
	root.AddCommand(newClassesCmd())
	root.AddCommand(newRenderCmd())

	return root.ExecuteContext(ctx)
}
