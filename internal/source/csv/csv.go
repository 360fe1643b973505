// Package csv reads transaction rows from a CSV export. The first row is
// the header; every later row becomes one raw row keyed by those headers.
package csv

import (
	"context"
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"spendlens/internal/normalize"
	"spendlens/internal/source"
)

type Reader struct {
	path      string
	separator rune
}

var _ source.RowReader = (*Reader)(nil)

// New creates a CSV source for path. A zero separator defaults to comma.
func New(path string, separator rune) *Reader {
	if separator == 0 {
		separator = ','
	}
	return &Reader{path: path, separator: separator}
}

func (r *Reader) ReadRows(ctx context.Context) ([]normalize.RawRow, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open csv source: %w", err)
	}
	defer f.Close()

	cr := stdcsv.NewReader(f)
	cr.Comma = r.separator
	cr.FieldsPerRecord = -1 // exports are ragged; the normalizer copes

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []normalize.RawRow{}, nil
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	rows := make([]normalize.RawRow, 0)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		row := make(normalize.RawRow, len(header))
		for i, key := range header {
			if i < len(record) {
				row[key] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
