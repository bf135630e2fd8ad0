package sheets

import "fmt"

// A1-notation helpers. The Google Sheets API addresses cells with
// spreadsheet-style labels ("B3", "A1:C5") qualified by a quoted sheet name.

// columnLabel converts a 1-based column index to its spreadsheet letter
// label: 1 -> "A", 26 -> "Z", 27 -> "AA".
func columnLabel(col int) string {
	label := ""
	for col > 0 {
		col--
		label = string(rune('A'+col%26)) + label
		col /= 26
	}
	return label
}

// cellRef builds an A1-style reference from 1-based column and row indices
func cellRef(col, row int) string {
	return fmt.Sprintf("%s%d", columnLabel(col), row)
}

// rowRange builds a whole-row range ("1:1") for a 1-based row index
func rowRange(row int) string {
	return fmt.Sprintf("%d:%d", row, row)
}

// sheetRange qualifies an A1 range with a quoted sheet name. An empty a1
// addresses the entire sheet.
func sheetRange(sheetName, a1 string) string {
	if a1 == "" {
		return fmt.Sprintf("'%s'", sheetName)
	}
	return fmt.Sprintf("'%s'!%s", sheetName, a1)
}
