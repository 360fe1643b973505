package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"spendlens/internal/services"
)

var (
	reportCurrencies []string
	reportStocks     []string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Build the consolidated analytics report",
	Long: `Build the consolidated report: a time-of-day greeting, per-card spending
and cashback summaries, the top transactions by magnitude, and live
currency rates and stock prices for the tracked instruments.

Tracked currencies and stocks come from the user settings file and can be
overridden per run with --currencies and --stocks.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		src, err := openSource(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeQuietly(src.Cleanup, "transaction source")

		pub := newPublisher(ctx, cfg)
		if pub != nil {
			defer closeQuietly(pub.Close, "publisher")
		}

		currencies := settings.UserCurrencies
		if len(reportCurrencies) > 0 {
			currencies = reportCurrencies
		}
		stocks := settings.UserStocks
		if len(reportStocks) > 0 {
			stocks = reportStocks
		}

		svc := services.NewReportService(src.Reader, newAssembler(cfg, settings), pub)
		rep, err := svc.Run(ctx, currencies, stocks)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringSliceVar(&reportCurrencies, "currencies", nil,
		"Currency codes to quote (overrides user settings)")
	reportCmd.Flags().StringSliceVar(&reportStocks, "stocks", nil,
		"Stock symbols to quote (overrides user settings)")
}
