// Package xlsx reads transaction rows from an XLSX export via excelize.
// The first sheet is used; its first row is the header.
package xlsx

import (
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"spendlens/internal/normalize"
	"spendlens/internal/source"
)

type Reader struct {
	path  string
	sheet string // optional; empty selects the first sheet
}

var _ source.RowReader = (*Reader)(nil)

func New(path, sheet string) *Reader {
	return &Reader{path: path, sheet: sheet}
}

func (r *Reader) ReadRows(ctx context.Context) ([]normalize.RawRow, error) {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx source: %w", err)
	}
	defer f.Close()

	sheet := r.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if sheet == "" {
		return nil, errors.New("xlsx source has no sheets")
	}

	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(raw) == 0 {
		return []normalize.RawRow{}, nil
	}

	header := raw[0]
	rows := make([]normalize.RawRow, 0, len(raw)-1)
	for _, record := range raw[1:] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if isEmpty(record) {
			continue
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

func isEmpty(record []string) bool {
	for _, cell := range record {
		if cell != "" {
			return false
		}
	}
	return true
}
