// Package cli defines the spendlens command tree and wires configuration,
// the transaction source and the quote providers into the services.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"spendlens/internal/config"
	"spendlens/internal/log"
)

var (
	verbose bool

	// Populated by the root PersistentPreRunE before any subcommand runs.
	cfg      *config.Config
	settings config.Settings
)

var rootCmd = &cobra.Command{
	Use:   "spendlens",
	Short: "Transaction analytics and reporting for personal finance exports",
	Long: `spendlens reads bank transaction exports (XLSX, CSV, a local SQLite
store or Google Sheets), normalizes them and produces per-card spending
summaries, top transactions, keyword search results and category rollups,
enriched with live currency rates and stock prices.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		log.SetDefault(log.New(log.Config{Level: level, Component: log.ComponentCLI}))

		// Version needs no configuration.
		if cmd.Name() == "version" {
			return nil
		}

		cfg = config.Load()
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}

		var err error
		settings, err = config.LoadSettings(cfg.UserSettingsPath)
		if err != nil {
			return fmt.Errorf("load user settings: %w", err)
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the command tree. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")
}
