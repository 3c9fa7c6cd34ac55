// Package models defines data structures for packing-list generation.
package models

// RawTable represents an uploaded table before any semantic interpretation.
// Rows are positional against Headers; a row may be shorter than the header
// list, in which case its trailing cells are absent.
type RawTable struct {
	// Headers are the column names as they appear in the source sheet.
	// They are not guaranteed unique or normalized.
	Headers []string
	// Rows are the data rows. Cells are indexed like Headers.
	Rows [][]string
}

// ColumnIndex returns the index of the first column with the given header,
// or -1 when no such column exists.
func (t *RawTable) ColumnIndex(header string) int {
	for i, h := range t.Headers {
		if h == header {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the table has a column with the given header.
func (t *RawTable) HasColumn(header string) bool {
	return t.ColumnIndex(header) >= 0
}

// Cell returns the value at the given row and column index and whether the
// cell is present. A cell is absent when the row is shorter than the column
// index or the stored value is empty.
func (t *RawTable) Cell(row, col int) (string, bool) {
	if row < 0 || row >= len(t.Rows) || col < 0 {
		return "", false
	}
	r := t.Rows[row]
	if col >= len(r) || r[col] == "" {
		return "", false
	}
	return r[col], true
}
