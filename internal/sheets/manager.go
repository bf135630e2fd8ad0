package sheets

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"

	"sheetdb/internal/config"
)

// Manager wraps a spreadsheet with sheet selection plus cell and range
// operations. It holds at most one "active" sheet at a time; every data
// operation targets the active sheet and fails with ErrNoSheetSelected when
// none is selected.
//
// All operations are single-shot blocking calls against the remote service.
// The remote spreadsheet is shared mutable state: read-then-write sequences
// (MoveCell, AddHeader, AppendRow) take no locks and can interleave with
// other writers.
type Manager struct {
	api           SheetsAPI
	spreadsheetID string
	active        string
}

// NewManager creates a Manager over an existing API client with no sheet
// selected.
func NewManager(api SheetsAPI, spreadsheetID string) *Manager {
	return &Manager{
		api:           api,
		spreadsheetID: spreadsheetID,
	}
}

// Connect authenticates with the credentials file, opens the spreadsheet,
// and selects a sheet: the named one if sheetName is non-empty, otherwise
// the spreadsheet's first sheet.
func Connect(ctx context.Context, credentialsFile, spreadsheetID, sheetName string) (*Manager, error) {
	client, err := NewClient(ctx, credentialsFile)
	if err != nil {
		return nil, err
	}

	m := NewManager(client, spreadsheetID)

	if sheetName != "" {
		if err := m.SelectSheet(ctx, sheetName); err != nil {
			return nil, err
		}
	} else {
		// Opening the spreadsheet and picking the default sheet is the
		// same round trip.
		titles, err := m.api.ListSheets(ctx, spreadsheetID)
		if err != nil {
			return nil, err
		}
		if len(titles) > 0 {
			m.active = titles[0]
		}
	}

	log.Info().
		Str("spreadsheet_id", spreadsheetID).
		Str("sheet", m.active).
		Msg("Connected to spreadsheet")

	return m, nil
}

// requireSheet guards data operations that need an active sheet
func (m *Manager) requireSheet() error {
	if m.active == "" {
		return ErrNoSheetSelected
	}
	return nil
}

// activeRange qualifies an A1 range with the active sheet's name
func (m *Manager) activeRange(a1 string) string {
	return sheetRange(m.active, a1)
}

// ListSheets returns all sheet names in the spreadsheet, in the remote
// service's listing order.
func (m *Manager) ListSheets(ctx context.Context) ([]string, error) {
	return m.api.ListSheets(ctx, m.spreadsheetID)
}

// SheetExists reports whether a sheet with the given name exists
func (m *Manager) SheetExists(ctx context.Context, name string) (bool, error) {
	titles, err := m.api.ListSheets(ctx, m.spreadsheetID)
	if err != nil {
		return false, err
	}
	return slices.Contains(titles, name), nil
}

// SelectSheet makes the named sheet the target of subsequent operations.
// Selection is verified against a live sheet listing, so re-selecting the
// current sheet is a harmless refresh. A failed selection leaves any prior
// selection unchanged.
func (m *Manager) SelectSheet(ctx context.Context, name string) error {
	exists, err := m.SheetExists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrSheetNotFound, name)
	}

	m.active = name

	log.Debug().
		Str("sheet", name).
		Msg("Selected sheet")

	return nil
}

// ActiveSheet returns the name of the currently selected sheet
func (m *Manager) ActiveSheet() (string, error) {
	if m.active == "" {
		return "", ErrNoSheetSelected
	}
	return m.active, nil
}

// CreateSheet adds a new empty sheet with the default grid size. The active
// selection is unchanged.
func (m *Manager) CreateSheet(ctx context.Context, name string) error {
	exists, err := m.SheetExists(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrSheetExists, name)
	}

	return m.api.CreateSheet(ctx, m.spreadsheetID, name, config.NewSheetRows, config.NewSheetCols)
}

// DeleteSheet removes the named sheet. If it was the active sheet the
// selection becomes unset.
func (m *Manager) DeleteSheet(ctx context.Context, name string) error {
	exists, err := m.SheetExists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrSheetNotFound, name)
	}

	if err := m.api.DeleteSheet(ctx, m.spreadsheetID, name); err != nil {
		return err
	}

	if m.active == name {
		m.active = ""
	}

	return nil
}

// GetCell returns the value at an A1 cell reference on the active sheet.
// A cell that has never been written reads as an empty Cell.
func (m *Manager) GetCell(ctx context.Context, a1 string) (Cell, error) {
	if err := m.requireSheet(); err != nil {
		return Cell{}, err
	}

	values, err := m.api.ReadRange(ctx, m.spreadsheetID, m.activeRange(a1))
	if err != nil {
		return Cell{}, err
	}

	if len(values) == 0 || len(values[0]) == 0 {
		return NewCell(nil), nil
	}
	return NewCell(values[0][0]), nil
}

// SetCell writes a value to an A1 cell reference on the active sheet.
// The remote service is the source of truth: the write is visible to
// subsequent reads as soon as this returns.
func (m *Manager) SetCell(ctx context.Context, a1, value string) error {
	if err := m.requireSheet(); err != nil {
		return err
	}

	return m.api.UpdateRange(ctx, m.spreadsheetID, m.activeRange(a1), [][]interface{}{{value}})
}

// ClearCell overwrites a cell with the empty string. Cells have no true
// "unset" state once written.
func (m *Manager) ClearCell(ctx context.Context, a1 string) error {
	return m.SetCell(ctx, a1, "")
}

// MoveCell copies from's value to to, then clears from. The two writes are
// separate round trips: a failure in between leaves both cells holding the
// value.
func (m *Manager) MoveCell(ctx context.Context, from, to string) error {
	if err := m.CopyCell(ctx, from, to); err != nil {
		return err
	}
	return m.ClearCell(ctx, from)
}

// CopyCell copies from's value to to, leaving from untouched
func (m *Manager) CopyCell(ctx context.Context, from, to string) error {
	value, err := m.GetCell(ctx, from)
	if err != nil {
		return err
	}
	return m.SetCell(ctx, to, value.String())
}

// GetRange reads a block of cells ("A1:C5") from the active sheet
func (m *Manager) GetRange(ctx context.Context, a1 string) ([][]Cell, error) {
	if err := m.requireSheet(); err != nil {
		return nil, err
	}

	values, err := m.api.ReadRange(ctx, m.spreadsheetID, m.activeRange(a1))
	if err != nil {
		return nil, err
	}

	return wrapCells(values), nil
}

// SetRange overwrites a block of cells with the given values. Dimension
// mismatches with the addressed range are left to the remote service to
// resolve, the same as the API itself.
func (m *Manager) SetRange(ctx context.Context, a1 string, values [][]string) error {
	if err := m.requireSheet(); err != nil {
		return err
	}

	return m.api.UpdateRange(ctx, m.spreadsheetID, m.activeRange(a1), unwrapStrings(values))
}

// ClearRange clears every cell in a block
func (m *Manager) ClearRange(ctx context.Context, a1 string) error {
	if err := m.requireSheet(); err != nil {
		return err
	}

	return m.api.ClearRange(ctx, m.spreadsheetID, m.activeRange(a1))
}

// AllValues returns the full contents of the active sheet, header row
// included, as ordered rows of cells. An empty sheet yields an empty slice.
func (m *Manager) AllValues(ctx context.Context) ([][]Cell, error) {
	if err := m.requireSheet(); err != nil {
		return nil, err
	}

	values, err := m.api.ReadRange(ctx, m.spreadsheetID, m.activeRange(""))
	if err != nil {
		return nil, err
	}

	return wrapCells(values), nil
}

// ClearSheet removes all values from the active sheet, leaving an empty grid
func (m *Manager) ClearSheet(ctx context.Context) error {
	if err := m.requireSheet(); err != nil {
		return err
	}

	return m.api.ClearRange(ctx, m.spreadsheetID, m.activeRange(""))
}

// wrapCells converts an API value grid into Cell rows
func wrapCells(values [][]interface{}) [][]Cell {
	rows := make([][]Cell, len(values))
	for i, row := range values {
		cells := make([]Cell, len(row))
		for j, val := range row {
			cells[j] = NewCell(val)
		}
		rows[i] = cells
	}
	return rows
}

// unwrapStrings converts string rows into the API's value grid
func unwrapStrings(values [][]string) [][]interface{} {
	rows := make([][]interface{}, len(values))
	for i, row := range values {
		raw := make([]interface{}, len(row))
		for j, val := range row {
			raw[j] = val
		}
		rows[i] = raw
	}
	return rows
}
