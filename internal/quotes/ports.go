// Package quotes enriches reports with externally supplied currency rates
// and stock prices. Providers are pluggable; lookups are issued concurrently
// with a bounded worker pool, and a failed lookup degrades to a per-entry
// "unavailable" sentinel instead of failing the report.
package quotes

import (
	"context"
	"strconv"
)

// Unavailable is the sentinel emitted for an entry whose lookup failed.
// It is distinct from zero.
const Unavailable = "unavailable"

// Ports for outbound quote providers.
type (
	// RateProvider returns the rate for one currency code.
	RateProvider interface {
		Rate(ctx context.Context, code string) (float64, error)
	}

	// PriceProvider returns the current price for one stock symbol.
	PriceProvider interface {
		Price(ctx context.Context, symbol string) (float64, error)
	}
)

// Amount is an externally quoted decimal that may be unavailable.
type Amount struct {
	Value float64
	OK    bool
}

// Available wraps a successfully fetched value.
func Available(v float64) Amount {
	return Amount{Value: v, OK: true}
}

// MarshalJSON emits the value as a number, or the "unavailable" sentinel
// string when the lookup did not succeed.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.OK {
		return []byte(`"` + Unavailable + `"`), nil
	}
	return []byte(strconv.FormatFloat(a.Value, 'f', -1, 64)), nil
}

// UnmarshalJSON accepts either a number or the sentinel string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == `"`+Unavailable+`"` {
		*a = Amount{}
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*a = Available(v)
	return nil
}

// Quote pairs a requested code (currency or symbol) with its fetched amount.
type Quote struct {
	Code   string
	Amount Amount
}
