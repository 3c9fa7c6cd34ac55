package input

import "packlist/pkg/packlist/models"

// DropEmptyColumns removes columns whose every cell is absent, a common
// artifact of spreadsheet exports. Header order of the surviving columns
// is preserved; rows are re-indexed against the new header list.
func DropEmptyColumns(t *models.RawTable) *models.RawTable {
	if len(t.Rows) == 0 {
		return t
	}
	keep := make([]int, 0, len(t.Headers))
	for col := range t.Headers {
		if columnHasData(t, col) {
			keep = append(keep, col)
		}
	}
	if len(keep) == len(t.Headers) {
		return t
	}

	out := &models.RawTable{
		Headers: make([]string, len(keep)),
		Rows:    make([][]string, len(t.Rows)),
	}
	for i, col := range keep {
		out.Headers[i] = t.Headers[col]
	}
	for r := range t.Rows {
		row := make([]string, len(keep))
		for i, col := range keep {
			if v, ok := t.Cell(r, col); ok {
				row[i] = v
			}
		}
		out.Rows[r] = row
	}
	return out
}

func columnHasData(t *models.RawTable, col int) bool {
	for r := range t.Rows {
		if _, ok := t.Cell(r, col); ok {
			return true
		}
	}
	return false
}
