// Package sqlite implements a local operations store. `spendlens ingest`
// loads rows from a file export into it once; later runs read transactions
// from the store instead of re-parsing the export. It is a transaction
// source, not report persistence.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"spendlens/internal/core"
	"spendlens/internal/normalize"
	"spendlens/internal/source"
)

type Store struct {
	db *sql.DB
}

var _ source.RowReader = (*Store)(nil)

// New opens (and if needed creates) the operations store at dbPath.
func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Ingest stores a batch of normalized transactions, replacing previous
// contents so the store mirrors the latest export.
func (s *Store) Ingest(ctx context.Context, records []core.Transaction) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin ingest: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return 0, fmt.Errorf("clear previous ingest: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO transactions (payment_date, description, category, amount_cents, card_id, cashback_cents)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.ExecContext(ctx,
			r.Date.String(),
			r.Description,
			r.Category,
			r.Amount.Cents,
			r.CardID,
			r.Cashback.Cents,
		)
		if err != nil {
			return 0, fmt.Errorf("insert transaction: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit ingest: %w", err)
	}

	slog.InfoContext(ctx, "Transactions ingested into operations store",
		"count", len(records))
	return len(records), nil
}

// ReadRows implements source.RowReader. Stored card identifiers are
// re-masked so the rows re-normalize exactly like the original export.
func (s *Store) ReadRows(ctx context.Context) ([]normalize.RawRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT payment_date, description, category, amount_cents, card_id, cashback_cents
		FROM transactions
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	out := make([]normalize.RawRow, 0)
	for rows.Next() {
		var (
			date, desc, category, cardID string
			amountCents, cashbackCents   int64
		)
		if err := rows.Scan(&date, &desc, &category, &amountCents, &cardID, &cashbackCents); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}

		row := normalize.RawRow{
			"date":        date,
			"description": desc,
			"category":    category,
			"amount":      core.Money{Cents: amountCents}.String(),
			"cashback":    core.Money{Cents: cashbackCents}.String(),
		}
		if cardID != core.UnknownCard {
			row["card_number"] = "*" + cardID
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return out, nil
}
