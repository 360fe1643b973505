package core

import (
	"errors"
	"strings"
	"time"
)

// UnknownCard is the card identifier used when the raw card-number field is
// absent or malformed.
const UnknownCard = "unknown"

type (
	// Date is a calendar date with day precision. The wall-clock part is
	// always UTC midnight; transaction exports carry no timezone.
	Date struct {
		time.Time
	}

	// Transaction is one normalized financial event. The sign of Amount is
	// never altered after normalization: negative means expense, positive
	// means income or refund. Spend computations take the magnitude
	// explicitly instead of relying on sign downstream.
	Transaction struct {
		Date        Date   `json:"date"`
		Description string `json:"description"`
		Category    string `json:"category"`
		Amount      Money  `json:"amount"`
		CardID      string `json:"card_id"`
		Cashback    Money  `json:"cashback"`
	}

	// CardSummary aggregates spend and cashback over one card. Summaries are
	// built fresh per report run and never mutated after construction.
	CardSummary struct {
		CardID     string
		TotalSpent Money // non-negative, sum of expense magnitudes
		Cashback   Money
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidDate   = errors.New("invalid date")

	// ErrInvalidQuery marks a structurally invalid search query, e.g. an
	// unparseable regular expression. It is the only error the search and
	// filter operations surface to the caller.
	ErrInvalidQuery = errors.New("invalid query")
)

// Supported date layouts for transaction exports, tried in order.
var dateLayouts = []string{
	"02.01.2006 15:04:05",
	"02.01.2006",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses a transaction date in any of the supported export layouts
// and truncates it to day precision.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, ErrInvalidDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewDate(t.Year(), int(t.Month()), t.Day()), nil
		}
	}
	return Date{}, ErrInvalidDate
}

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an arbitrary timestamp to day precision.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// AddDays returns the date shifted by n calendar days.
func (d Date) AddDays(n int) Date {
	return Date{Time: d.Time.AddDate(0, 0, n)}
}

// String formats the date the way transaction exports do (DD.MM.YYYY).
func (d Date) String() string {
	return d.Time.Format("02.01.2006")
}

// MarshalJSON emits the date as a "DD.MM.YYYY" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts any supported export layout.
func (d *Date) UnmarshalJSON(data []byte) error {
	parsed, err := ParseDate(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Magnitude returns the absolute amount of the transaction.
func (t Transaction) Magnitude() Money {
	return t.Amount.Abs()
}
