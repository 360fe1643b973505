package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"spendlens/internal/backend"
	"spendlens/internal/services"
	"spendlens/internal/source"
	csvsource "spendlens/internal/source/csv"
	"spendlens/internal/source/sqlite"
	"spendlens/internal/source/xlsx"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [file]",
	Short: "Load a transaction export into the local SQLite store",
	Long: `Read an XLSX or CSV export, normalize it and replace the contents of
the local SQLite operations store. Later runs with SOURCE_BACKEND=sqlite
read the store instead of re-parsing the export.

Without an argument the configured source path is ingested. The format is
taken from the file extension.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		path := cfg.SourcePath
		if len(args) == 1 {
			path = args[0]
		}

		var reader source.RowReader
		switch strings.ToLower(filepath.Ext(path)) {
		case ".xlsx":
			reader = xlsx.New(path, cfg.SourceSheet)
		case ".csv":
			reader = csvsource.New(path, 0)
		default:
			return fmt.Errorf("cannot ingest %q: expected a .xlsx or .csv file", path)
		}

		store, err := sqlite.New(cfg.SQLiteDBPath)
		if err != nil {
			return fmt.Errorf("open operations store: %w", err)
		}
		defer closeQuietly(store.Close, "operations store")

		count, err := services.NewIngestService(reader, store).Run(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Ingested %d transaction(s) into %s\n", count, cfg.SQLiteDBPath)
		fmt.Printf("Run with SOURCE_BACKEND=%s to read the store.\n", backend.SQLite)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}
