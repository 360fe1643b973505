package report

import (
	"testing"

	"spendlens/internal/core"
)

func dated(category string, year, month, day int) core.Transaction {
	return core.Transaction{
		Date:     core.NewDate(year, month, day),
		Category: category,
		Amount:   core.Money{Cents: -100},
	}
}

func TestFilterWindow(t *testing.T) {
	start := core.NewDate(2021, 12, 15)
	records := []core.Transaction{
		dated("Groceries", 2021, 12, 15), // start day, inclusive
		dated("Groceries", 2022, 1, 20),
		dated("Groceries", 2022, 3, 14), // day 89, last inside
		dated("Groceries", 2022, 3, 15), // start+90, exclusive
		dated("Groceries", 2021, 12, 14), // before start
		dated("Transport", 2022, 1, 20),  // other category
	}

	got := FilterWindow(records, "Groceries", start)

	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for _, r := range got {
		if r.Category != "Groceries" {
			t.Errorf("category = %q, want Groceries", r.Category)
		}
	}
}

func TestFilterWindow_UnknownCategory(t *testing.T) {
	records := []core.Transaction{dated("Groceries", 2021, 12, 20)}

	got := FilterWindow(records, "Travel", core.NewDate(2021, 12, 15))

	if got == nil {
		t.Fatal("result must be an empty slice, not nil")
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestFilterWindow_Empty(t *testing.T) {
	if got := FilterWindow(nil, "Groceries", core.NewDate(2021, 12, 15)); len(got) != 0 {
		t.Errorf("empty input should produce empty output, got %v", got)
	}
}
