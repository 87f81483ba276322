package sheets

import (
	"context"
	"fmt"
	"time"

	sheetsapi "google.golang.org/api/sheets/v4"
	"google.golang.org/api/option"
)

// SheetStore appends complaint rows to a Google Sheet. Row layout is fixed
// by the caller; the first cell carries the reference ID.
type SheetStore struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	sheetRange    string
	timeout       time.Duration
}

// NewSheetStore builds the adapter from a service-account key.
func NewSheetStore(ctx context.Context, credentialsJSON []byte, spreadsheetID, sheetRange string, timeout time.Duration) (*SheetStore, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet id is required")
	}

	svc, err := sheetsapi.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &SheetStore{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetRange:    sheetRange,
		timeout:       timeout,
	}, nil
}

// Append writes one row after the sheet's existing data. A single attempt is
// made, bounded by the configured timeout.
func (s *SheetStore) Append(ctx context.Context, row []interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	values := &sheetsapi.ValueRange{Values: [][]interface{}{row}}
	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, s.sheetRange, values).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
