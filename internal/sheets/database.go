package sheets

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"
)

// Database-style helpers layered on the active sheet: row 1 is a header row
// whose first column is always "ID", and every data row carries a sequential
// integer identifier assigned at append time.
//
// The ID is derived from the row count at call time, not a stored counter.
// Two writers appending concurrently can read the same count and assign the
// same ID; this mirrors the remote service's lack of transactions and is
// documented rather than hidden.

// IDHeader is the mandatory first column of a database sheet
const IDHeader = "ID"

// Headers returns the header row's values in column order. A sheet with no
// values yields an empty slice.
func (m *Manager) Headers(ctx context.Context) ([]string, error) {
	if err := m.requireSheet(); err != nil {
		return nil, err
	}

	values, err := m.api.ReadRange(ctx, m.spreadsheetID, m.activeRange(rowRange(1)))
	if err != nil {
		return nil, err
	}

	if len(values) == 0 {
		return []string{}, nil
	}

	headers := make([]string, len(values[0]))
	for i, val := range values[0] {
		headers[i] = NewCell(val).String()
	}
	return headers, nil
}

// AddHeader appends name as a new last column of the header row. Each call
// re-reads the current headers, so adding N headers costs N round trips.
func (m *Manager) AddHeader(ctx context.Context, name string) error {
	headers, err := m.Headers(ctx)
	if err != nil {
		return err
	}

	if slices.Contains(headers, name) {
		return fmt.Errorf("%w: %s", ErrDuplicateHeader, name)
	}

	return m.SetCell(ctx, cellRef(len(headers)+1, 1), name)
}

// AddHeaders adds each name in order, stopping at the first failure.
// Headers added before the failure stay in place.
func (m *Manager) AddHeaders(ctx context.Context, names []string) error {
	for _, name := range names {
		if err := m.AddHeader(ctx, name); err != nil {
			return err
		}
	}
	return nil
}

// InitDatabase clears the active sheet and writes a fresh header row: "ID"
// first, then the given headers in order. The previous contents are gone
// once this starts; it is not undoable.
func (m *Manager) InitDatabase(ctx context.Context, headers []string) error {
	if err := m.ClearSheet(ctx); err != nil {
		return err
	}

	if err := m.AddHeader(ctx, IDHeader); err != nil {
		return err
	}

	if err := m.AddHeaders(ctx, headers); err != nil {
		return err
	}

	log.Info().
		Str("sheet", m.active).
		Strs("headers", headers).
		Msg("Initialized database sheet")

	return nil
}

// AppendRow appends values as a new data row with an auto-assigned ID.
// values must have exactly one entry per non-ID header. The ID is the total
// row count (header included) at call time: the first data row gets 1.
func (m *Manager) AppendRow(ctx context.Context, values []string) error {
	headers, err := m.Headers(ctx)
	if err != nil {
		return err
	}

	if len(values) != len(headers)-1 {
		return fmt.Errorf("%w: got %d values for %d headers",
			ErrValueCountMismatch, len(values), len(headers))
	}

	all, err := m.AllValues(ctx)
	if err != nil {
		return err
	}
	nextID := len(all)

	row := make([]interface{}, 0, len(values)+1)
	row = append(row, fmt.Sprintf("%d", nextID))
	for _, val := range values {
		row = append(row, val)
	}

	return m.api.AppendRow(ctx, m.spreadsheetID, m.activeRange("A1"), row)
}

// Rows returns all data rows (everything after the header row), ID column
// included, as strings.
func (m *Manager) Rows(ctx context.Context) ([][]string, error) {
	all, err := m.AllValues(ctx)
	if err != nil {
		return nil, err
	}

	if len(all) <= 1 {
		return [][]string{}, nil
	}
	return cellsToStrings(all[1:]), nil
}

// ColumnValues returns every data-row value under the named header, in row
// order. An unknown header yields an empty slice, not an error.
func (m *Manager) ColumnValues(ctx context.Context, column string) ([]string, error) {
	all, err := m.AllValues(ctx)
	if err != nil {
		return nil, err
	}

	col := columnIndex(all, column)
	if col == -1 {
		return []string{}, nil
	}

	values := []string{}
	for _, row := range all[1:] {
		if len(row) > col {
			values = append(values, row[col].String())
		}
	}
	return values, nil
}

// RowsWhere returns all data rows whose cell under the named header equals
// value. Comparison is on the string rendering, matching how the service
// hands values back.
func (m *Manager) RowsWhere(ctx context.Context, column, value string) ([][]string, error) {
	all, err := m.AllValues(ctx)
	if err != nil {
		return nil, err
	}

	col := columnIndex(all, column)
	if col == -1 {
		return [][]string{}, nil
	}

	matches := [][]string{}
	for _, row := range all[1:] {
		if len(row) > col && row[col].String() == value {
			matches = append(matches, cellsToStrings([][]Cell{row})[0])
		}
	}
	return matches, nil
}

// RowsWithID returns all data rows whose ID column matches id. IDs are
// unique only as long as nothing edits the sheet out of band, so this
// returns a slice rather than a single row.
func (m *Manager) RowsWithID(ctx context.Context, id string) ([][]string, error) {
	return m.RowsWhere(ctx, IDHeader, id)
}

// columnIndex finds a header's 0-based column index in a value grid, or -1
func columnIndex(all [][]Cell, column string) int {
	if len(all) == 0 {
		return -1
	}
	for i, cell := range all[0] {
		if cell.String() == column {
			return i
		}
	}
	return -1
}

// cellsToStrings renders cell rows as string rows
func cellsToStrings(rows [][]Cell) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		strs := make([]string, len(row))
		for j, cell := range row {
			strs[j] = cell.String()
		}
		out[i] = strs
	}
	return out
}
