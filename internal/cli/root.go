package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all loader commands.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the root command for the dataset loader CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "sfcrime-loader",
		Short: "Load the SF police incident dataset into the analytics store",
		Long: `sfcrime-loader replaces the incident table from a local CSV export
or directly from the DataSF open data API, then prints an ingest report.

Database and Redis settings come from the environment, same as the server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewCSVCommand(opts))
	cmd.AddCommand(NewAPICommand(opts))

	return cmd
}
