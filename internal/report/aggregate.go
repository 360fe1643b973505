// Package report builds the consolidated analytics report: per-card
// summaries, the top transactions list, category window rollups and the
// assembled report object. Everything here is a pure function over a
// run-scoped record set; no state survives between runs.
package report

import (
	"spendlens/internal/core"
)

// CashbackPolicy selects how per-card cashback is computed. The two
// policies come from incompatible drafts of the original product spec, so
// the choice is explicit configuration rather than a hard-coded rule.
type CashbackPolicy string

const (
	// CashbackSupplied sums the cashback carried on the records. Cards
	// whose records never carried cashback fall back to the flat rate at
	// emission time, so no card silently reports zero.
	CashbackSupplied CashbackPolicy = "supplied"

	// CashbackFlatRate ignores record cashback and always computes the
	// flat rate over total spend.
	CashbackFlatRate CashbackPolicy = "flat"

	// DefaultFlatRateBps is 1% expressed in basis points.
	DefaultFlatRateBps = 100
)

// AggregateOptions configures the cashback policy for one aggregation run.
type AggregateOptions struct {
	Policy      CashbackPolicy
	FlatRateBps int64 // cashback rate in basis points for the flat policy and the fallback
}

// DefaultAggregateOptions returns the supplied-cashback policy with a 1%
// flat-rate fallback.
func DefaultAggregateOptions() AggregateOptions {
	return AggregateOptions{Policy: CashbackSupplied, FlatRateBps: DefaultFlatRateBps}
}

type cardAccumulator struct {
	spent        int64
	cashback     int64
	cashbackSeen bool
}

// Aggregate groups records by card and accumulates spend and cashback in a
// single pass. Summaries are emitted in first-seen card order. Only
// negative amounts contribute to TotalSpent, as positive magnitudes;
// positive amounts are never counted.
func Aggregate(records []core.Transaction, opts AggregateOptions) []core.CardSummary {
	if opts.FlatRateBps <= 0 {
		opts.FlatRateBps = DefaultFlatRateBps
	}

	order := make([]string, 0)
	byCard := make(map[string]*cardAccumulator)

	for _, r := range records {
		acc, ok := byCard[r.CardID]
		if !ok {
			acc = &cardAccumulator{}
			byCard[r.CardID] = acc
			order = append(order, r.CardID)
		}

		if r.Amount.IsExpense() {
			acc.spent += r.Amount.Abs().Cents
		}
		if r.Cashback.Cents != 0 {
			acc.cashback += r.Cashback.Cents
			acc.cashbackSeen = true
		}
	}

	summaries := make([]core.CardSummary, 0, len(order))
	for _, cardID := range order {
		acc := byCard[cardID]

		cashback := acc.cashback
		switch opts.Policy {
		case CashbackFlatRate:
			cashback = flatCashback(acc.spent, opts.FlatRateBps)
		default:
			if !acc.cashbackSeen {
				cashback = flatCashback(acc.spent, opts.FlatRateBps)
			}
		}

		summaries = append(summaries, core.CardSummary{
			CardID:     cardID,
			TotalSpent: core.Money{Cents: acc.spent},
			Cashback:   core.Money{Cents: cashback},
		})
	}
	return summaries
}

// flatCashback computes rate basis points of spentCents, rounded half up to
// the cent.
func flatCashback(spentCents, rateBps int64) int64 {
	return (spentCents*rateBps + 5000) / 10000
}
