package sheets

import (
	"fmt"
	"strconv"
)

// Cell provides type-safe access to a single spreadsheet cell value.
// The Google Sheets API traffics in [][]interface{}; Cell wraps one of those
// values so the rest of the codebase never touches interface{} directly.
// The remote service performs its own type inference, so a cell read back
// may be a string, float64, or bool depending on what was entered.
type Cell struct {
	raw interface{}
}

// NewCell wraps a raw value from the Google Sheets API
func NewCell(raw interface{}) Cell {
	return Cell{raw: raw}
}

// String returns the cell value as a string. Nil (absent) cells are the
// empty string, matching how the service renders cleared cells.
func (c Cell) String() string {
	if c.raw == nil {
		return ""
	}
	if s, ok := c.raw.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", c.raw)
}

// Int returns the cell value as an int, or 0 if it is not numeric
func (c Cell) Int() int {
	switch v := c.raw.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return 0
}

// Float64 returns the cell value as a float64, or 0 if it is not numeric
func (c Cell) Float64() float64 {
	switch v := c.raw.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return 0
}

// IsEmpty returns true if the cell contains nil or the empty string
func (c Cell) IsEmpty() bool {
	return c.raw == nil || c.raw == ""
}

// Raw returns the underlying value for Google Sheets API calls.
// This should only be used at the API boundary.
func (c Cell) Raw() interface{} {
	return c.raw
}
