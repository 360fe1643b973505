// Package source defines the transaction source port and backend selection.
// A source produces raw rows in whatever shape the export uses; the
// normalizer owns all field interpretation.
package source

import (
	"context"

	"spendlens/internal/normalize"
)

// RowReader is the inbound port every transaction source implements.
// Implementations return their read error; the service layer degrades a
// failed read to an empty record set instead of aborting the run.
type RowReader interface {
	ReadRows(ctx context.Context) ([]normalize.RawRow, error)
}
