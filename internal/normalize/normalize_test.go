package normalize

import (
	"testing"

	"spendlens/internal/core"
)

func TestRows(t *testing.T) {
	rows := []RawRow{
		{
			"date":        "31.12.2021",
			"description": "Supermarket",
			"category":    "Groceries",
			"amount":      "-160.89",
			"card_number": "*7197",
			"cashback":    "1.60",
		},
		{
			// Arbitrary header spelling and casing.
			"Payment_Date": "01.01.2022",
			"Description":  "Salary",
			"AMOUNT":       "1000",
		},
		{
			// Null sentinels become absent values, not markers.
			"date":        "02.01.2022",
			"description": "nan",
			"category":    "NaN",
			"amount":      "-50",
			"cashback":    "null",
		},
	}

	res := Rows(rows)

	if res.Dropped != 0 {
		t.Fatalf("Dropped = %d, want 0", res.Dropped)
	}
	if len(res.Records) != 3 {
		t.Fatalf("len(Records) = %d, want 3", len(res.Records))
	}

	first := res.Records[0]
	if first.Amount.Cents != -16089 {
		t.Errorf("Amount = %d, want -16089", first.Amount.Cents)
	}
	if first.CardID != "7197" {
		t.Errorf("CardID = %q, want 7197", first.CardID)
	}
	if first.Cashback.Cents != 160 {
		t.Errorf("Cashback = %d, want 160", first.Cashback.Cents)
	}

	second := res.Records[1]
	if second.Amount.Cents != 100000 {
		t.Errorf("aliased amount = %d, want 100000", second.Amount.Cents)
	}
	if second.CardID != core.UnknownCard {
		t.Errorf("CardID = %q, want %q", second.CardID, core.UnknownCard)
	}
	if second.Cashback.Cents != 0 {
		t.Errorf("missing cashback = %d, want 0", second.Cashback.Cents)
	}

	third := res.Records[2]
	if third.Description != "" || third.Category != "" {
		t.Errorf("null sentinels should normalize to empty strings, got %q/%q",
			third.Description, third.Category)
	}
	if third.Cashback.Cents != 0 {
		t.Errorf("null cashback = %d, want 0", third.Cashback.Cents)
	}
}

func TestRows_DropsMalformed(t *testing.T) {
	rows := []RawRow{
		{"date": "not-a-date", "amount": "-10"},
		{"date": "01.01.2022", "amount": "ten"},
		{"date": "01.01.2022", "amount": "-10"},
	}

	res := Rows(rows)

	if res.Dropped != 2 {
		t.Errorf("Dropped = %d, want 2", res.Dropped)
	}
	if len(res.Records) != 1 {
		t.Errorf("len(Records) = %d, want 1", len(res.Records))
	}
}

func TestRows_MissingAmountDefaultsToZero(t *testing.T) {
	res := Rows([]RawRow{{"date": "01.01.2022", "description": "Note"}})

	if res.Dropped != 0 {
		t.Fatalf("Dropped = %d, want 0", res.Dropped)
	}
	if got := res.Records[0].Amount.Cents; got != 0 {
		t.Errorf("missing amount = %d, want 0", got)
	}
}

func TestRows_Empty(t *testing.T) {
	res := Rows(nil)
	if len(res.Records) != 0 || res.Dropped != 0 {
		t.Errorf("empty input should produce empty output, got %+v", res)
	}
}

func TestCardID(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"*7197", "7197"},
		{"**1234", "1234"},
		{"*123456", "3456"},
		{"7197", core.UnknownCard},
		{"", core.UnknownCard},
		{"*12", core.UnknownCard},
	}
	for _, tt := range tests {
		if got := CardID(tt.raw); got != tt.want {
			t.Errorf("CardID(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
