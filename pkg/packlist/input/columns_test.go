package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"packlist/pkg/packlist/models"
)

func TestDropEmptyColumns(t *testing.T) {
	table := &models.RawTable{
		Headers: []string{"Class", "Blank", "Item", "Also Blank"},
		Rows: [][]string{
			{"Math", "", "Pencil", ""},
			{"Sci", "", "Beaker"},
		},
	}

	got := DropEmptyColumns(table)
	assert.Equal(t, []string{"Class", "Item"}, got.Headers)
	require.Len(t, got.Rows, 2)
	assert.Equal(t, []string{"Math", "Pencil"}, got.Rows[0])
	assert.Equal(t, []string{"Sci", "Beaker"}, got.Rows[1])
}

func TestDropEmptyColumnsKeepsFullTable(t *testing.T) {
	table := &models.RawTable{
		Headers: []string{"Class", "Item"},
		Rows:    [][]string{{"Math", "Pencil"}},
	}
	assert.Same(t, table, DropEmptyColumns(table))
}

func TestDropEmptyColumnsEmptyTable(t *testing.T) {
	table := &models.RawTable{Headers: []string{"Class", "Item"}}
	assert.Same(t, table, DropEmptyColumns(table))
}
