package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"spendlens/internal/core"
	"spendlens/internal/normalize"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "operations.db"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testRecords() []core.Transaction {
	return []core.Transaction{
		{
			Date:        core.NewDate(2021, 12, 20),
			Description: "Supermarket",
			Category:    "Groceries",
			Amount:      core.Money{Cents: -16089},
			CardID:      "7197",
			Cashback:    core.Money{Cents: 160},
		},
		{
			Date:        core.NewDate(2021, 12, 21),
			Description: "Salary",
			Category:    "Salary",
			Amount:      core.Money{Cents: 100000},
			CardID:      core.UnknownCard,
		},
	}
}

func TestStore_IngestAndReadRows(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	count, err := store.Ingest(ctx, testRecords())
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}

	rows, err := store.ReadRows(ctx)
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}

	// Stored rows must re-normalize into the records that were ingested.
	res := normalize.Rows(rows)
	if res.Dropped != 0 {
		t.Fatalf("dropped = %d, want 0", res.Dropped)
	}
	if len(res.Records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(res.Records))
	}

	got := res.Records[0]
	if got.CardID != "7197" || got.Amount.Cents != -16089 || got.Cashback.Cents != 160 {
		t.Errorf("first record = %+v", got)
	}
	if got.Date.String() != "20.12.2021" {
		t.Errorf("date = %s, want 20.12.2021", got.Date.String())
	}

	if res.Records[1].CardID != core.UnknownCard {
		t.Errorf("card id = %q, want %q", res.Records[1].CardID, core.UnknownCard)
	}
}

func TestStore_IngestReplacesPreviousContents(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.Ingest(ctx, testRecords()); err != nil {
		t.Fatalf("first Ingest: %v", err)
	}
	if _, err := store.Ingest(ctx, testRecords()[:1]); err != nil {
		t.Fatalf("second Ingest: %v", err)
	}

	rows, err := store.ReadRows(ctx)
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("len(rows) = %d, want 1 after replacement", len(rows))
	}
}

func TestStore_ReadRowsEmpty(t *testing.T) {
	store := newTestStore(t)

	rows, err := store.ReadRows(context.Background())
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("rows = %v, want none", rows)
	}
}
