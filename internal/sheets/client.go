package sheets

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client implements the SheetsAPI interface using the Google Sheets API.
//
// Note: This client uses [][]interface{} as required by the Google Sheets
// API. This is the only layer where interface{} should appear. All other
// code should use the Cell type wrapper for type-safe access to cell values.
type Client struct {
	service *sheets.Service
}

// NewClient creates a Google Sheets client authenticated with the
// service-account credentials at the given path. The file is read and
// parsed locally, so a missing or malformed file fails before any network
// round trip.
func NewClient(ctx context.Context, credentialsFile string) (*Client, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w at %s", ErrCredentialsNotFound, credentialsFile)
		}
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	jwtConfig, err := google.JWTConfigFromJSON(data, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
	}

	service, err := sheets.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{
		service: service,
	}, nil
}

// classifyError maps Google API failures onto our sentinel errors where the
// condition is an expected one. Anything else propagates unaltered.
func classifyError(err error) error {
	if apiErr, ok := err.(*googleapi.Error); ok {
		switch apiErr.Code {
		case 403:
			if strings.Contains(strings.ToLower(apiErr.Message), "disabled") {
				return fmt.Errorf("%w: Google Sheets API is disabled for this project", ErrPermissionDenied)
			}
			return fmt.Errorf("%w: %s", ErrPermissionDenied, apiErr.Message)
		case 404:
			return ErrSpreadsheetNotFound
		}
	}
	return err
}

// ListSheets returns all sheet titles in the spreadsheet, in listing order
func (c *Client) ListSheets(ctx context.Context, spreadsheetID string) ([]string, error) {
	spreadsheet, err := c.service.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get spreadsheet: %w", classifyError(err))
	}

	titles := make([]string, 0, len(spreadsheet.Sheets))
	for _, sheet := range spreadsheet.Sheets {
		titles = append(titles, sheet.Properties.Title)
	}

	return titles, nil
}

// ReadRange reads values from the specified sheet range.
// Returns [][]interface{} as mandated by Google Sheets API.
// Wrap returned values with NewCell() for type-safe access.
func (c *Client) ReadRange(ctx context.Context, spreadsheetID, range_ string) ([][]interface{}, error) {
	resp, err := c.service.Spreadsheets.Values.Get(spreadsheetID, range_).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read range %s: %w", range_, classifyError(err))
	}

	return resp.Values, nil
}

// UpdateRange updates the specified sheet range with the provided values.
// Values are written with USER_ENTERED so the service applies its normal
// type inference, the same as typing into a cell.
func (c *Client) UpdateRange(ctx context.Context, spreadsheetID, range_ string, values [][]interface{}) error {
	valueRange := &sheets.ValueRange{
		Values: values,
	}

	_, err := c.service.Spreadsheets.Values.Update(spreadsheetID, range_, valueRange).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to update range %s: %w", range_, classifyError(err))
	}

	return nil
}

// ClearRange clears all values in the specified sheet range
func (c *Client) ClearRange(ctx context.Context, spreadsheetID, range_ string) error {
	_, err := c.service.Spreadsheets.Values.Clear(spreadsheetID, range_, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to clear range %s: %w", range_, classifyError(err))
	}

	return nil
}

// AppendRow appends a single row after the last row with data in the
// addressed table.
func (c *Client) AppendRow(ctx context.Context, spreadsheetID, range_ string, row []interface{}) error {
	valueRange := &sheets.ValueRange{
		Values: [][]interface{}{row},
	}

	_, err := c.service.Spreadsheets.Values.Append(spreadsheetID, range_, valueRange).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append row: %w", classifyError(err))
	}

	return nil
}

// CreateSheet creates a new sheet with the specified title and grid size
func (c *Client) CreateSheet(ctx context.Context, spreadsheetID, sheetName string, rows, cols int64) error {
	req := &sheets.Request{
		AddSheet: &sheets.AddSheetRequest{
			Properties: &sheets.SheetProperties{
				Title: sheetName,
				GridProperties: &sheets.GridProperties{
					RowCount:    rows,
					ColumnCount: cols,
				},
			},
		},
	}

	batchUpdate := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{req},
	}

	_, err := c.service.Spreadsheets.BatchUpdate(spreadsheetID, batchUpdate).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheetName, classifyError(err))
	}

	log.Debug().
		Str("sheet_name", sheetName).
		Int64("rows", rows).
		Int64("cols", cols).
		Msg("Created sheet")

	return nil
}

// DeleteSheet deletes the sheet with the given title. The Sheets API deletes
// by numeric sheet ID, so this resolves the title first.
func (c *Client) DeleteSheet(ctx context.Context, spreadsheetID, sheetName string) error {
	spreadsheet, err := c.service.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to get spreadsheet: %w", classifyError(err))
	}

	var sheetID int64 = -1
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties.Title == sheetName {
			sheetID = sheet.Properties.SheetId
			break
		}
	}

	if sheetID == -1 {
		return fmt.Errorf("%w: %s", ErrSheetNotFound, sheetName)
	}

	req := &sheets.Request{
		DeleteSheet: &sheets.DeleteSheetRequest{
			SheetId: sheetID,
		},
	}

	batchUpdate := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{req},
	}

	_, err = c.service.Spreadsheets.BatchUpdate(spreadsheetID, batchUpdate).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to delete sheet %s: %w", sheetName, classifyError(err))
	}

	log.Debug().
		Str("sheet_name", sheetName).
		Msg("Deleted sheet")

	return nil
}
