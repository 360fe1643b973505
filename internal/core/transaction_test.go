package core

import (
	"encoding/json"
	"testing"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "export layout", input: "31.12.2021", want: "31.12.2021"},
		{name: "export layout with time", input: "31.12.2021 16:44:00", want: "31.12.2021"},
		{name: "iso layout", input: "2021-12-31", want: "31.12.2021"},
		{name: "iso with time", input: "2021-12-31 16:44:00", want: "31.12.2021"},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "not-a-date", wantErr: true},
		{name: "impossible day", input: "32.01.2021", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseDate(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestDate_AddDays(t *testing.T) {
	start := NewDate(2021, 12, 15)
	end := start.AddDays(90)
	if got := end.String(); got != "15.03.2022" {
		t.Errorf("AddDays(90) = %s, want 15.03.2022", got)
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	orig := NewDate(2021, 12, 31)

	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"31.12.2021"` {
		t.Fatalf("marshal = %s, want \"31.12.2021\"", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(orig.Time) {
		t.Errorf("round trip = %s, want %s", back, orig)
	}
}

func TestTransaction_Magnitude(t *testing.T) {
	tx := Transaction{Amount: Money{Cents: -50000}}
	if got := tx.Magnitude(); got.Cents != 50000 {
		t.Errorf("Magnitude() = %d, want 50000", got.Cents)
	}
}
