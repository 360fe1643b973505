package services

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"spendlens/internal/search"
	"spendlens/internal/source"
)

// SearchService runs keyword search over the transaction source and writes
// the matches as a JSON array to a caller-specified destination.
type SearchService struct {
	reader source.RowReader
}

func NewSearchService(reader source.RowReader) *SearchService {
	return &SearchService{reader: reader}
}

// Run parses rawQuery (free text or JSON field constraints), executes it
// and writes the result. A malformed query is surfaced before any matching;
// an empty result is written as an empty array.
func (s *SearchService) Run(ctx context.Context, rawQuery string, out io.Writer) error {
	log := slog.With("run_id", uuid.NewString())

	query, err := search.Parse(rawQuery)
	if err != nil {
		return err
	}

	records := loadRecords(ctx, log, s.reader)
	matches := query.Run(records)

	log.InfoContext(ctx, "Search finished",
		"records", len(records),
		"matches", len(matches))
	return writeJSON(out, matches)
}
