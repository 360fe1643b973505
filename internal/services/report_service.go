// Package services orchestrates the report, search and filter operations:
// source → normalize → core pipeline → output. Each run is tagged with its
// own run ID and owns all intermediate state.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"spendlens/internal/core"
	"spendlens/internal/normalize"
	"spendlens/internal/publish"
	"spendlens/internal/report"
	"spendlens/internal/source"
)

// ReportService builds the consolidated analytics report.
type ReportService struct {
	reader    source.RowReader
	assembler *report.Assembler
	publisher *publish.Publisher // optional
}

func NewReportService(reader source.RowReader, assembler *report.Assembler, publisher *publish.Publisher) *ReportService {
	return &ReportService{
		reader:    reader,
		assembler: assembler,
		publisher: publisher,
	}
}

// Run assembles one report. An unreadable source degrades to an empty
// record set; a publish failure is logged and the report still returned.
func (s *ReportService) Run(ctx context.Context, currencies, symbols []string) (report.Report, error) {
	runID := uuid.NewString()
	log := slog.With("run_id", runID)

	records := s.loadRecords(ctx, log)

	rep := s.assembler.Assemble(ctx, records, currencies, symbols)
	log.InfoContext(ctx, "Report assembled",
		"cards", len(rep.Cards),
		"top_transactions", len(rep.TopTransactions),
		"currencies", len(rep.CurrencyRates),
		"symbols", len(rep.StockPrices))

	if s.publisher != nil {
		body, err := json.Marshal(rep)
		if err != nil {
			return report.Report{}, fmt.Errorf("marshal report: %w", err)
		}
		if err := s.publisher.PublishReport(ctx, runID, body); err != nil {
			// Publishing is best effort; the caller still gets the report.
			log.ErrorContext(ctx, "Failed to publish report", "error", err)
		}
	}

	return rep, nil
}

func (s *ReportService) loadRecords(ctx context.Context, log *slog.Logger) []core.Transaction {
	return loadRecords(ctx, log, s.reader)
}

// loadRecords reads and normalizes the source. A read failure is not fatal:
// the run proceeds with an empty record set.
func loadRecords(ctx context.Context, log *slog.Logger, reader source.RowReader) []core.Transaction {
	rows, err := reader.ReadRows(ctx)
	if err != nil {
		log.WarnContext(ctx, "Transaction source unavailable, proceeding with empty record set",
			"error", err)
		return nil
	}

	res := normalize.Rows(rows)
	log.InfoContext(ctx, "Transactions normalized",
		"rows_read", len(rows),
		"records", len(res.Records),
		"rows_dropped", res.Dropped)
	return res.Records
}

// writeJSON writes v to out as indented JSON.
func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
