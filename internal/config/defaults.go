package config

// Grid defaults for newly created sheets. The Sheets API requires explicit
// grid dimensions on AddSheet; these match the service's own defaults for a
// small working sheet.
const (
	// NewSheetRows is the row count for sheets created by Manager.CreateSheet
	NewSheetRows = 100

	// NewSheetCols is the column count for sheets created by Manager.CreateSheet
	NewSheetCols = 20
)
