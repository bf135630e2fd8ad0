package sheets

import "errors"

// Sentinel errors for expected failure conditions. Remote transport errors
// that do not match one of these propagate unaltered from the Google API
// client. Callers should test with errors.Is.
var (
	// ErrCredentialsNotFound indicates the credentials file does not exist
	// at the configured path.
	ErrCredentialsNotFound = errors.New("credentials file not found")

	// ErrPermissionDenied indicates the Sheets API is disabled for the
	// service account's project or access is otherwise forbidden.
	ErrPermissionDenied = errors.New("sheets api access denied")

	// ErrSpreadsheetNotFound indicates the spreadsheet ID does not resolve
	// to an accessible spreadsheet.
	ErrSpreadsheetNotFound = errors.New("spreadsheet not found")

	// ErrSheetNotFound indicates the named sheet does not exist in the
	// spreadsheet.
	ErrSheetNotFound = errors.New("sheet not found")

	// ErrSheetExists indicates a sheet with the requested name already
	// exists.
	ErrSheetExists = errors.New("sheet already exists")

	// ErrNoSheetSelected indicates a data operation was attempted before
	// any sheet was selected.
	ErrNoSheetSelected = errors.New("no sheet selected")

	// ErrDuplicateHeader indicates the header name is already present in
	// the header row.
	ErrDuplicateHeader = errors.New("duplicate header")

	// ErrValueCountMismatch indicates an appended row's value count does
	// not match the header count (minus the auto-assigned ID column).
	ErrValueCountMismatch = errors.New("value count does not match headers")
)
