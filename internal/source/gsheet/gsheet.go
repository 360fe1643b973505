// Package gsheet reads transaction rows from a Google Sheets spreadsheet.
// The first row of the configured sheet is the header.
package gsheet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	goption "google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"

	"spendlens/internal/normalize"
	"spendlens/internal/source"
)

type Reader struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
}

var _ source.RowReader = (*Reader)(nil)

// NewFromEnv creates a Sheets source using environment variables.
// Required: GOOGLE_SPREADSHEET_ID. Credentials come from
// GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or
// GOOGLE_APPLICATION_CREDENTIALS. Optional: GOOGLE_SHEET_NAME
// (default "Operations").
func NewFromEnv(ctx context.Context) (*Reader, error) {
	spreadsheetID := strings.TrimSpace(os.Getenv("GOOGLE_SPREADSHEET_ID"))
	if spreadsheetID == "" {
		return nil, errors.New("missing GOOGLE_SPREADSHEET_ID")
	}

	sheetName := strings.TrimSpace(os.Getenv("GOOGLE_SHEET_NAME"))
	if sheetName == "" {
		sheetName = "Operations"
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Reader{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

// newSheetsService initializes a read-only Sheets service from Service
// Account credentials.
func newSheetsService(ctx context.Context) (*sheets.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	var err error
	switch {
	case serviceAccountJSON != "":
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		credentialsJSON, err = os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	svc, err := sheets.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(sheets.SpreadsheetsReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return svc, nil
}

func (r *Reader) ReadRows(ctx context.Context) ([]normalize.RawRow, error) {
	if r.svc == nil {
		return nil, errors.New("sheets service not initialized")
	}

	rng := fmt.Sprintf("%s!A:Z", r.sheetName)
	resp, err := r.svc.Spreadsheets.Values.Get(r.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", r.sheetName, err)
	}
	if len(resp.Values) == 0 {
		return []normalize.RawRow{}, nil
	}

	header := make([]string, 0, len(resp.Values[0]))
	for _, cell := range resp.Values[0] {
		header = append(header, fmt.Sprint(cell))
	}

	rows := make([]normalize.RawRow, 0, len(resp.Values)-1)
	for _, record := range resp.Values[1:] {
		row := make(normalize.RawRow, len(header))
		for i, key := range header {
			if i < len(record) {
				row[key] = fmt.Sprint(record[i])
			}
		}
		rows = append(rows, row)
	}

	slog.DebugContext(ctx, "Read rows from Google Sheets",
		"sheet", r.sheetName,
		"rows", len(rows))
	return rows, nil
}
