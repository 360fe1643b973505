package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"spendlens/internal/normalize"
	"spendlens/internal/source"
	"spendlens/internal/source/sqlite"
)

// IngestService loads rows from a file export into the local SQLite
// operations store, so later runs can read the store instead of the export.
type IngestService struct {
	reader source.RowReader
	store  *sqlite.Store
}

func NewIngestService(reader source.RowReader, store *sqlite.Store) *IngestService {
	return &IngestService{reader: reader, store: store}
}

// Run normalizes the source and replaces the store contents. Unlike report
// runs, an unreadable source is an error here: ingesting nothing by
// accident would silently wipe the store.
func (s *IngestService) Run(ctx context.Context) (int, error) {
	log := slog.With("run_id", uuid.NewString())

	rows, err := s.reader.ReadRows(ctx)
	if err != nil {
		return 0, fmt.Errorf("read source: %w", err)
	}

	res := normalize.Rows(rows)
	log.InfoContext(ctx, "Transactions normalized for ingest",
		"rows_read", len(rows),
		"records", len(res.Records),
		"rows_dropped", res.Dropped)

	count, err := s.store.Ingest(ctx, res.Records)
	if err != nil {
		return 0, fmt.Errorf("ingest into store: %w", err)
	}
	return count, nil
}
