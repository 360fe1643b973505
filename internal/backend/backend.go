// Package backend selects and constructs the transaction source for a run.
package backend

import (
	"context"
	"fmt"
	"log/slog"

	"spendlens/internal/source"
	csvsource "spendlens/internal/source/csv"
	"spendlens/internal/source/gsheet"
	"spendlens/internal/source/sqlite"
	"spendlens/internal/source/xlsx"
)

// Type names a transaction source backend.
type Type string

const (
	XLSX   Type = "xlsx"
	CSV    Type = "csv"
	SQLite Type = "sqlite"
	Sheets Type = "sheets"
)

// IsValid reports whether t names a known backend.
func (t Type) IsValid() bool {
	switch t {
	case XLSX, CSV, SQLite, Sheets:
		return true
	}
	return false
}

// Config carries what each backend needs; unused fields are ignored.
type Config struct {
	Type Type

	// File backends.
	Path         string
	Sheet        string // xlsx sheet name, empty selects the first
	CSVSeparator rune

	// SQLite operations store.
	SQLiteDBPath string
}

// Result bundles the constructed source with its cleanup, which may be nil.
type Result struct {
	Reader  source.RowReader
	Cleanup func() error
}

// Open constructs the configured transaction source.
func Open(ctx context.Context, cfg Config) (*Result, error) {
	if !cfg.Type.IsValid() {
		return nil, fmt.Errorf("invalid source backend: %q", cfg.Type)
	}

	switch cfg.Type {
	case XLSX:
		if cfg.Path == "" {
			return nil, fmt.Errorf("xlsx backend requires a source path")
		}
		slog.InfoContext(ctx, "Using XLSX transaction source", "path", cfg.Path)
		return &Result{Reader: xlsx.New(cfg.Path, cfg.Sheet)}, nil

	case CSV:
		if cfg.Path == "" {
			return nil, fmt.Errorf("csv backend requires a source path")
		}
		slog.InfoContext(ctx, "Using CSV transaction source", "path", cfg.Path)
		return &Result{Reader: csvsource.New(cfg.Path, cfg.CSVSeparator)}, nil

	case SQLite:
		if cfg.SQLiteDBPath == "" {
			return nil, fmt.Errorf("sqlite backend requires a database path")
		}
		store, err := sqlite.New(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("open operations store: %w", err)
		}
		slog.InfoContext(ctx, "Using SQLite transaction source", "path", cfg.SQLiteDBPath)
		return &Result{Reader: store, Cleanup: store.Close}, nil

	case Sheets:
		reader, err := gsheet.NewFromEnv(ctx)
		if err != nil {
			return nil, fmt.Errorf("open sheets source: %w", err)
		}
		slog.InfoContext(ctx, "Using Google Sheets transaction source")
		return &Result{Reader: reader}, nil
	}

	return nil, fmt.Errorf("unsupported source backend: %q", cfg.Type)
}
