package cli

import (
	"github.com/spf13/cobra"
)

// APIOptions holds flags for the api command.
type APIOptions struct {
	*RootOptions
	Limit int
}

// NewAPICommand creates the api command.
func NewAPICommand(rootOpts *RootOptions) *cobra.Command {
	opts := &APIOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "api",
		Short: "Replace the dataset from the DataSF open data API",
		Long: `Fetch the incident dataset from the DataSF open data API, clean it
and replace the incident table with its contents.

Example:
  sfcrime-loader api --limit 500000`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newLoaderEnv(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer env.cleanup()

			report, err := env.ingest.LoadFromAPI(cmd.Context(), opts.Limit)
			if err != nil {
				return err
			}
			printReport(report)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", 500000, "maximum rows to fetch")

	return cmd
}
