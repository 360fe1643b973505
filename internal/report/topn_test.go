package report

import (
	"testing"

	"spendlens/internal/core"
)

func TestTopN_RanksByMagnitude(t *testing.T) {
	records := []core.Transaction{
		tx(-50000, "Rent", ""),
		tx(100000, "Salary", ""),
		tx(-15000, "Rent", ""),
	}

	got := TopN(records, 5)

	// Income ranks by magnitude exactly like expenses: 1000 > 500 > 150.
	wantCents := []int64{100000, -50000, -15000}
	if len(got) != len(wantCents) {
		t.Fatalf("len = %d, want %d", len(got), len(wantCents))
	}
	for i, want := range wantCents {
		if got[i].Amount.Cents != want {
			t.Errorf("top[%d].Amount = %d, want %d", i, got[i].Amount.Cents, want)
		}
	}
}

func TestTopN_CapsAtN(t *testing.T) {
	records := make([]core.Transaction, 8)
	for i := range records {
		records[i] = tx(int64(-100*(i+1)), "", "")
	}

	if got := TopN(records, 5); len(got) != 5 {
		t.Errorf("len = %d, want 5", len(got))
	}
}

func TestTopN_StableOnEqualMagnitudes(t *testing.T) {
	records := []core.Transaction{
		{Description: "first", Amount: core.Money{Cents: -500}},
		{Description: "second", Amount: core.Money{Cents: 500}},
		{Description: "third", Amount: core.Money{Cents: -500}},
	}

	got := TopN(records, 5)

	wantOrder := []string{"first", "second", "third"}
	for i, want := range wantOrder {
		if got[i].Description != want {
			t.Errorf("top[%d] = %q, want %q", i, got[i].Description, want)
		}
	}
}

func TestTopN_FewerThanN(t *testing.T) {
	got := TopN([]core.Transaction{tx(-100, "", "")}, 5)
	if len(got) != 1 {
		t.Errorf("len = %d, want 1", len(got))
	}
}

func TestTopN_Empty(t *testing.T) {
	if got := TopN(nil, 5); len(got) != 0 {
		t.Errorf("empty input should produce empty output, got %v", got)
	}
}

func TestTopN_DoesNotMutateInput(t *testing.T) {
	records := []core.Transaction{
		tx(-100, "", ""),
		tx(-300, "", ""),
		tx(-200, "", ""),
	}

	TopN(records, 2)

	if records[0].Amount.Cents != -100 || records[1].Amount.Cents != -300 {
		t.Error("TopN must not reorder the caller's slice")
	}
}
