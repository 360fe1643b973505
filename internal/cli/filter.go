package cli

import (
	"github.com/spf13/cobra"

	"spendlens/internal/services"
)

var (
	filterStart string
	filterOut   string
)

var filterCmd = &cobra.Command{
	Use:   "filter <category>",
	Short: "List expenses for a category over a 90-day window",
	Long: `List the transactions for one category inside a 90-day window starting
at --start (DD.MM.YYYY), printed as a JSON array. Without --start the
window begins today.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		src, err := openSource(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeQuietly(src.Cleanup, "transaction source")

		out, closeOut, err := openOutput(filterOut)
		if err != nil {
			return err
		}
		defer closeOut()

		return services.NewFilterService(src.Reader).Run(ctx, args[0], filterStart, out)
	},
}

func init() {
	rootCmd.AddCommand(filterCmd)

	filterCmd.Flags().StringVar(&filterStart, "start", "",
		"Window start date as DD.MM.YYYY (default: today)")
	filterCmd.Flags().StringVar(&filterOut, "out", "",
		"Write matches to this file instead of stdout")
}
