package report

import (
	"spendlens/internal/core"
)

// WindowDays is the length of the category rollup window.
const WindowDays = 90

// FilterWindow selects records whose category equals category and whose
// date falls in the half-open window [start, start+90 days). Comparison is
// exact-day precision. An unknown category or an empty match is an empty
// result, never an error.
func FilterWindow(records []core.Transaction, category string, start core.Date) []core.Transaction {
	end := start.AddDays(WindowDays)

	matched := make([]core.Transaction, 0)
	for _, r := range records {
		if r.Category != category {
			continue
		}
		if r.Date.Before(start.Time) || !r.Date.Before(end.Time) {
			continue
		}
		matched = append(matched, r)
	}
	return matched
}
