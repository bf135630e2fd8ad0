package sheets

import (
	"context"
	"strconv"
	"strings"
)

// MockSheetsAPI implements SheetsAPI for testing with an in-memory grid per
// sheet. Ranges are parsed just enough to cover what the Manager issues:
// whole sheets, whole rows ("1:1"), single cells ("B3"), and blocks
// ("A1:C5").
type MockSheetsAPI struct {
	order []string                   // sheet titles in listing order
	data  map[string][][]interface{} // grid per sheet, only written rows stored

	shouldError bool

	lastReadRange   string
	lastUpdateRange string
	lastAppendRange string
}

type mockError struct {
	msg string
}

func (e *mockError) Error() string {
	return e.msg
}

func NewMockSheetsAPI(sheetNames ...string) *MockSheetsAPI {
	m := &MockSheetsAPI{
		data: make(map[string][][]interface{}),
	}
	for _, name := range sheetNames {
		m.order = append(m.order, name)
		m.data[name] = [][]interface{}{}
	}
	return m
}

// Grid returns the raw stored grid for assertions
func (m *MockSheetsAPI) Grid(sheetName string) [][]interface{} {
	return m.data[sheetName]
}

func (m *MockSheetsAPI) ListSheets(ctx context.Context, spreadsheetID string) ([]string, error) {
	if m.shouldError {
		return nil, &mockError{msg: "mock list error"}
	}
	return append([]string{}, m.order...), nil
}

func (m *MockSheetsAPI) ReadRange(ctx context.Context, spreadsheetID, range_ string) ([][]interface{}, error) {
	if m.shouldError {
		return nil, &mockError{msg: "mock read error"}
	}
	m.lastReadRange = range_

	sheetName, a1 := splitRange(range_)
	grid := m.data[sheetName]

	if a1 == "" {
		return grid, nil
	}

	startCol, startRow, endCol, endRow := parseA1(a1, grid)

	result := [][]interface{}{}
	for r := startRow; r <= endRow && r < len(grid); r++ {
		row := []interface{}{}
		for c := startCol; c <= endCol && c < len(grid[r]); c++ {
			row = append(row, grid[r][c])
		}
		result = append(result, row)
	}
	return result, nil
}

func (m *MockSheetsAPI) UpdateRange(ctx context.Context, spreadsheetID, range_ string, values [][]interface{}) error {
	if m.shouldError {
		return &mockError{msg: "mock update error"}
	}
	m.lastUpdateRange = range_

	sheetName, a1 := splitRange(range_)
	grid := m.data[sheetName]

	startCol, startRow, _, _ := parseA1(a1, grid)

	for i, row := range values {
		for j, val := range row {
			grid = setInGrid(grid, startRow+i, startCol+j, val)
		}
	}
	m.data[sheetName] = grid
	return nil
}

func (m *MockSheetsAPI) ClearRange(ctx context.Context, spreadsheetID, range_ string) error {
	if m.shouldError {
		return &mockError{msg: "mock clear error"}
	}

	sheetName, a1 := splitRange(range_)

	if a1 == "" {
		m.data[sheetName] = [][]interface{}{}
		return nil
	}

	grid := m.data[sheetName]
	startCol, startRow, endCol, endRow := parseA1(a1, grid)
	for r := startRow; r <= endRow && r < len(grid); r++ {
		for c := startCol; c <= endCol && c < len(grid[r]); c++ {
			grid[r][c] = ""
		}
	}
	return nil
}

func (m *MockSheetsAPI) AppendRow(ctx context.Context, spreadsheetID, range_ string, row []interface{}) error {
	if m.shouldError {
		return &mockError{msg: "mock append error"}
	}
	m.lastAppendRange = range_

	sheetName, _ := splitRange(range_)
	m.data[sheetName] = append(m.data[sheetName], row)
	return nil
}

func (m *MockSheetsAPI) CreateSheet(ctx context.Context, spreadsheetID, sheetName string, rows, cols int64) error {
	if m.shouldError {
		return &mockError{msg: "mock create error"}
	}
	m.order = append(m.order, sheetName)
	m.data[sheetName] = [][]interface{}{}
	return nil
}

func (m *MockSheetsAPI) DeleteSheet(ctx context.Context, spreadsheetID, sheetName string) error {
	if m.shouldError {
		return &mockError{msg: "mock delete error"}
	}
	for i, name := range m.order {
		if name == sheetName {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	delete(m.data, sheetName)
	return nil
}

// splitRange separates "'Sheet'!A1:B2" into sheet name and A1 part
func splitRange(range_ string) (string, string) {
	sheetName := range_
	a1 := ""
	if idx := strings.Index(range_, "!"); idx != -1 {
		sheetName = range_[:idx]
		a1 = range_[idx+1:]
	}
	return strings.Trim(sheetName, "'\""), a1
}

// parseA1 resolves an A1 fragment to 0-based inclusive grid coordinates.
// Row ranges like "1:1" span every column present in the grid.
func parseA1(a1 string, grid [][]interface{}) (startCol, startRow, endCol, endRow int) {
	parts := strings.SplitN(a1, ":", 2)

	startCol, startRow = parseRef(parts[0])
	if len(parts) == 1 {
		return startCol, startRow, startCol, startRow
	}

	endCol, endRow = parseRef(parts[1])
	if endCol == -1 {
		// whole-row range: cover the widest row in the grid
		startCol = 0
		endCol = 0
		for _, row := range grid {
			if len(row)-1 > endCol {
				endCol = len(row) - 1
			}
		}
	}
	return startCol, startRow, endCol, endRow
}

// parseRef parses "B3" into 0-based (col, row); a bare row number ("3")
// yields col -1.
func parseRef(ref string) (int, int) {
	i := 0
	for i < len(ref) && ref[i] >= 'A' && ref[i] <= 'Z' {
		i++
	}

	col := -1
	if i > 0 {
		col = 0
		for _, ch := range ref[:i] {
			col = col*26 + int(ch-'A'+1)
		}
		col--
	}

	row, _ := strconv.Atoi(ref[i:])
	return col, row - 1
}

// setInGrid writes a value at 0-based (row, col), growing the grid as needed
func setInGrid(grid [][]interface{}, row, col int, val interface{}) [][]interface{} {
	for len(grid) <= row {
		grid = append(grid, []interface{}{})
	}
	for len(grid[row]) <= col {
		grid[row] = append(grid[row], "")
	}
	grid[row][col] = val
	return grid
}
