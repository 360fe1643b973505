package cli

import (
	"github.com/spf13/cobra"

	"spendlens/internal/services"
)

var searchOut string

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search transactions by keyword or field constraints",
	Long: `Search the transaction source and print matches as a JSON array.

The query is either free text, matched case-insensitively as a regular
expression against descriptions and categories, or a JSON object of exact
field constraints:

  spendlens search 'coffee'
  spendlens search '{"category": "Groceries"}'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		src, err := openSource(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeQuietly(src.Cleanup, "transaction source")

		out, closeOut, err := openOutput(searchOut)
		if err != nil {
			return err
		}
		defer closeOut()

		return services.NewSearchService(src.Reader).Run(ctx, args[0], out)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&searchOut, "out", "",
		"Write matches to this file instead of stdout")
}
