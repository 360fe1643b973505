// Package core defines the canonical transaction model shared by every
// component of the reporting engine.
//
// This file contains signed money parsing and formatting. All arithmetic is
// done in cents to avoid floating-point drift; float64 appears only at the
// JSON boundary.
package core

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Money is a signed amount in cents. Negative cents mean an expense,
// positive cents mean income or a refund.
type Money struct {
	Cents int64
}

// ParseSignedCents converts a decimal string to signed cents with half-up
// rounding on the third decimal place.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators and an
// optional leading sign. Zero is a valid amount.
//
// Examples:
//   ParseSignedCents("-160.89") -> -16089, nil
//   ParseSignedCents("1 000,50") -> 100050, nil
//   ParseSignedCents("12.346")  -> 1235, nil (rounds up)
func ParseSignedCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	// Normalize decimal comma and strip thousands spacing
	s = strings.ReplaceAll(s, ",", ".")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\u00a0", "")

	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	if s == "" || s == "." {
		return 0, ErrInvalidAmount
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	// Prevent overflow when multiplying by 100
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0, ErrInvalidAmount
	}

	// Take first two fractional digits; half-up rounding on the third
	var fracCents int64
	if len(fracPart) > 0 {
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}

	cents := iv*100 + fracCents
	if neg {
		cents = -cents
	}
	return cents, nil
}

// Abs returns the magnitude of the amount as non-negative cents.
func (m Money) Abs() Money {
	if m.Cents < 0 {
		return Money{Cents: -m.Cents}
	}
	return m
}

// IsExpense reports whether the amount is negative.
func (m Money) IsExpense() bool {
	return m.Cents < 0
}

// Units returns the amount as a float64 for display purposes.
// Use cents for calculations to avoid floating-point precision issues.
func (m Money) Units() float64 {
	return float64(m.Cents) / 100.0
}

// String formats the amount with exactly two decimals, e.g. "-160.89".
func (m Money) String() string {
	c := m.Cents
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

// MarshalJSON emits the amount as a plain decimal number with two decimals.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts any JSON number and converts it to cents.
func (m *Money) UnmarshalJSON(data []byte) error {
	cents, err := ParseSignedCents(strings.Trim(string(data), `"`))
	if err != nil {
		return fmt.Errorf("parse money %q: %w", string(data), err)
	}
	m.Cents = cents
	return nil
}
