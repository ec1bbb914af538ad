package cli

import (
	"github.com/spf13/cobra"
)

// NewCSVCommand creates the csv command.
func NewCSVCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csv <file>",
		Short: "Replace the dataset from a local CSV export",
		Long: `Clean a local CSV export of the incident dataset and replace the
incident table with its contents.

Example:
  sfcrime-loader csv ./Police_Department_Incident_Reports.csv`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newLoaderEnv(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer env.cleanup()

			report, err := env.ingest.LoadCSVFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printReport(report)
			return nil
		},
	}

	return cmd
}
