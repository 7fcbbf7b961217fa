// Package sheets persists lead records by appending rows to a Google Sheets
// spreadsheet.
package sheets

import (
	"context"
	"encoding/base64"
	"fmt"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/laxportraits/studio-leads/internal/leads"
	"github.com/laxportraits/studio-leads/pkg/logging"
)

// DefaultAppendRange targets the Leads tab; the API scans downward from A1
// for the first empty row.
const DefaultAppendRange = "Leads!A1"

// Appender writes lead rows to a spreadsheet. It implements leads.Appender.
type Appender struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	appendRange   string
	logger        *logging.Logger
}

// New builds an Appender from a base64-encoded service account key. The key
// is decoded and handed to the Sheets client; it never touches disk.
func New(ctx context.Context, encodedCreds, spreadsheetID, appendRange string, logger *logging.Logger) (*Appender, error) {
	if encodedCreds == "" {
		return nil, fmt.Errorf("sheets: service account credentials not configured")
	}
	if spreadsheetID == "" {
		return nil, fmt.Errorf("sheets: spreadsheet ID not configured")
	}
	if appendRange == "" {
		appendRange = DefaultAppendRange
	}
	if logger == nil {
		logger = logging.Default()
	}

	creds, err := base64.StdEncoding.DecodeString(encodedCreds)
	if err != nil {
		return nil, fmt.Errorf("sheets: decoding service account credentials: %w", err)
	}

	svc, err := sheetsapi.NewService(ctx,
		option.WithCredentialsJSON(creds),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets: creating sheets client: %w", err)
	}

	return &Appender{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		appendRange:   appendRange,
		logger:        logger,
	}, nil
}

// Append writes the record as one row after the last populated row of the
// configured range. USER_ENTERED lets the sheet parse dates and numbers the
// way a typed-in value would be.
func (a *Appender) Append(ctx context.Context, rec leads.Record) error {
	body := &sheetsapi.ValueRange{
		Values: [][]any{rec.Row()},
	}

	_, err := a.svc.Spreadsheets.Values.Append(a.spreadsheetID, a.appendRange, body).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		a.logger.Error("sheet append failed", "range", a.appendRange, "error", err)
		return fmt.Errorf("sheets: appending lead row: %w", err)
	}

	a.logger.Debug("lead row appended", "range", a.appendRange)
	return nil
}
