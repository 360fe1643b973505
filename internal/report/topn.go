package report

import (
	"sort"

	"spendlens/internal/core"
)

// DefaultTopN is the report's top-transactions list capacity.
const DefaultTopN = 5

// TopN returns up to n records ranked by descending amount magnitude.
// Income counts by magnitude exactly like expenses. The sort is stable, so
// equal magnitudes keep their original input order. Empty input yields an
// empty list, not an error.
func TopN(records []core.Transaction, n int) []core.Transaction {
	if n <= 0 {
		n = DefaultTopN
	}

	ranked := make([]core.Transaction, len(records))
	copy(ranked, records)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Magnitude().Cents > ranked[j].Magnitude().Cents
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
