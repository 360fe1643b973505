// Package search implements keyword search over normalized transactions.
//
// Two query modes are supported: free-text (case-insensitive substring or
// regular expression over description and category) and exact-field (a
// field→value map where every given field must match). Both preserve input
// order and return an empty result rather than an error when nothing
// matches; only a structurally invalid query is an error.
package search

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"spendlens/internal/core"
)

// Query matches transactions. Exactly one of the two modes is active.
type Query struct {
	pattern *regexp.Regexp    // free-text mode
	fields  map[string]string // exact-field mode
}

// FreeText compiles a case-insensitive free-text query. The term is used as
// a regular expression; a term with no metacharacters degrades naturally to
// a substring match. An unparseable pattern fails with core.ErrInvalidQuery
// before any matching is attempted.
func FreeText(term string) (Query, error) {
	re, err := regexp.Compile("(?i)" + term)
	if err != nil {
		return Query{}, fmt.Errorf("%w: %v", core.ErrInvalidQuery, err)
	}
	return Query{pattern: re}, nil
}

// Exact builds an exact-field query. A record matches only if it contains
// every given field with an equal value. Unknown field names fail with
// core.ErrInvalidQuery.
func Exact(fields map[string]string) (Query, error) {
	if len(fields) == 0 {
		return Query{}, fmt.Errorf("%w: no fields given", core.ErrInvalidQuery)
	}
	for name := range fields {
		if _, ok := fieldReaders[normalizeField(name)]; !ok {
			return Query{}, fmt.Errorf("%w: unknown field %q", core.ErrInvalidQuery, name)
		}
	}

	normalized := make(map[string]string, len(fields))
	for name, value := range fields {
		normalized[normalizeField(name)] = value
	}
	return Query{fields: normalized}, nil
}

// Parse builds a query from a raw CLI string. Input that parses as a JSON
// object or an array of {field: value} objects becomes an exact-field
// query; anything else is free text.
func Parse(raw string) (Query, error) {
	trimmed := strings.TrimSpace(raw)

	if strings.HasPrefix(trimmed, "{") {
		var fields map[string]string
		if err := json.Unmarshal([]byte(trimmed), &fields); err != nil {
			return Query{}, fmt.Errorf("%w: %v", core.ErrInvalidQuery, err)
		}
		return Exact(fields)
	}

	if strings.HasPrefix(trimmed, "[") {
		var parts []map[string]string
		if err := json.Unmarshal([]byte(trimmed), &parts); err != nil {
			return Query{}, fmt.Errorf("%w: %v", core.ErrInvalidQuery, err)
		}
		merged := make(map[string]string)
		for _, part := range parts {
			for name, value := range part {
				merged[name] = value
			}
		}
		return Exact(merged)
	}

	return FreeText(trimmed)
}

// Run returns matching records in original order. No match yields an empty
// slice, never an error.
func (q Query) Run(records []core.Transaction) []core.Transaction {
	matched := make([]core.Transaction, 0)
	for _, r := range records {
		if q.matches(r) {
			matched = append(matched, r)
		}
	}
	return matched
}

func (q Query) matches(r core.Transaction) bool {
	if q.pattern != nil {
		return q.pattern.MatchString(r.Description) || q.pattern.MatchString(r.Category)
	}
	for name, want := range q.fields {
		if fieldReaders[name](r) != want {
			return false
		}
	}
	return true
}

// Searchable record fields for exact-field queries.
var fieldReaders = map[string]func(core.Transaction) string{
	"date":        func(r core.Transaction) string { return r.Date.String() },
	"description": func(r core.Transaction) string { return r.Description },
	"category":    func(r core.Transaction) string { return r.Category },
	"amount":      func(r core.Transaction) string { return r.Amount.String() },
	"card_id":     func(r core.Transaction) string { return r.CardID },
	"cashback":    func(r core.Transaction) string { return r.Cashback.String() },
}

func normalizeField(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}
