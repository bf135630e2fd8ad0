package sheets

import (
	"context"
)

// SheetsAPI defines the interface for interacting with Google Sheets.
// This separates the remote service boundary from the Manager's logic and
// is what tests replace with an in-memory fake.
//
// Note on interface{} usage:
// The Google Sheets API (google.golang.org/api/sheets/v4) uses [][]interface{}
// for cell values. This is outside our control and required for API
// compatibility. To keep unsafe interface{} usage contained:
// - Use the Cell type wrapper for type-safe value extraction
// - Keep interface{} constrained to this API boundary layer
// - Never expose interface{} above the Manager
type SheetsAPI interface {
	// ListSheets returns all sheet titles in the spreadsheet, in the
	// service's own listing order.
	ListSheets(ctx context.Context, spreadsheetID string) ([]string, error)

	// ReadRange reads values from a sheet range.
	// Returns [][]interface{} as required by Google Sheets API.
	// Use NewCell() to wrap values for type-safe access.
	ReadRange(ctx context.Context, spreadsheetID, range_ string) ([][]interface{}, error)

	// UpdateRange updates values in a sheet range.
	// Accepts [][]interface{} as required by Google Sheets API.
	UpdateRange(ctx context.Context, spreadsheetID, range_ string, values [][]interface{}) error

	// ClearRange clears all values in a sheet range
	ClearRange(ctx context.Context, spreadsheetID, range_ string) error

	// AppendRow appends a single row after the last row with data in the
	// addressed table.
	AppendRow(ctx context.Context, spreadsheetID, range_ string, row []interface{}) error

	// CreateSheet creates a new sheet with the given title and grid size
	CreateSheet(ctx context.Context, spreadsheetID, sheetName string, rows, cols int64) error

	// DeleteSheet deletes the sheet with the given title
	DeleteSheet(ctx context.Context, spreadsheetID, sheetName string) error
}
