package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the sparsegraph CLI: builds the root command, wires the
// logger into the command context, and dispatches to the subcommands.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "sparsegraph",
		Short:        "Shortest paths and spanning trees on sparse graphs",
		Long:         "sparsegraph computes point-to-point shortest paths and full shortest-path spanning trees over weighted graphs loaded from JSON adjacency files or TOML edge manifests.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRouteCmd())
	root.AddCommand(newTreeCmd())

	return root.ExecuteContext(ctx)
}
