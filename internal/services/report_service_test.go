package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"spendlens/internal/normalize"
	"spendlens/internal/quotes"
	"spendlens/internal/report"
)

type stubSource struct {
	rows []normalize.RawRow
	err  error
}

func (s *stubSource) ReadRows(ctx context.Context) ([]normalize.RawRow, error) {
	return s.rows, s.err
}

func fixedClock() time.Time {
	return time.Date(2021, 12, 15, 20, 0, 0, 0, time.UTC)
}

func newTestAssembler() *report.Assembler {
	a := report.NewAssembler(quotes.NewFetcher(2, time.Second), nil, nil, report.DefaultAggregateOptions(), report.DefaultTopN)
	return a.WithClock(fixedClock)
}

func TestReportService_Run(t *testing.T) {
	src := &stubSource{rows: []normalize.RawRow{
		{"date": "01.12.2021", "amount": "-500", "card_number": "*7197", "category": "Rent"},
		{"date": "05.12.2021", "amount": "1000", "card_number": "*7197", "category": "Salary"},
	}}

	svc := NewReportService(src, newTestAssembler(), nil)

	rep, err := svc.Run(context.Background(), []string{"USD"}, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if rep.Greeting != "Good evening" {
		t.Errorf("Greeting = %q, want Good evening", rep.Greeting)
	}
	if len(rep.Cards) != 1 || rep.Cards[0].TotalSpent.Cents != 50000 {
		t.Errorf("unexpected cards: %+v", rep.Cards)
	}
	if len(rep.CurrencyRates) != 1 || rep.CurrencyRates[0].Rate.OK {
		t.Errorf("USD should be unavailable without a provider, got %+v", rep.CurrencyRates)
	}
}

func TestReportService_SourceFailureIsNotFatal(t *testing.T) {
	src := &stubSource{err: errors.New("file not found")}

	svc := NewReportService(src, newTestAssembler(), nil)

	rep, err := svc.Run(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("Run should degrade to an empty record set, got error: %v", err)
	}
	if len(rep.Cards) != 0 || len(rep.TopTransactions) != 0 {
		t.Errorf("report should be empty, got %+v", rep)
	}
}
