package services

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"spendlens/internal/core"
	"spendlens/internal/report"
	"spendlens/internal/source"
)

// FilterService runs the category + rolling-window expense rollup and
// writes matching transactions as a JSON array.
type FilterService struct {
	reader source.RowReader
	now    func() time.Time
}

func NewFilterService(reader source.RowReader) *FilterService {
	return &FilterService{reader: reader, now: time.Now}
}

// WithClock overrides the time source used for the default window start.
func (s *FilterService) WithClock(now func() time.Time) *FilterService {
	s.now = now
	return s
}

// Run filters the source by category over [start, start+90d). An empty
// startDate defaults to the current date; an unparseable one is an invalid
// query. No match writes an empty array.
func (s *FilterService) Run(ctx context.Context, category, startDate string, out io.Writer) error {
	log := slog.With("run_id", uuid.NewString())

	start := core.DateOf(s.now())
	if startDate != "" {
		parsed, err := core.ParseDate(startDate)
		if err != nil {
			return err
		}
		start = parsed
	}

	records := loadRecords(ctx, log, s.reader)
	matches := report.FilterWindow(records, category, start)

	log.InfoContext(ctx, "Window filter finished",
		"category", category,
		"start", start.String(),
		"matches", len(matches))
	return writeJSON(out, matches)
}
