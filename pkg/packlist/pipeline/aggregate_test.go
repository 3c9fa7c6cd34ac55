package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"packlist/pkg/packlist/models"
)

func purchasingTable(rows ...[]string) *models.RawTable {
	return &models.RawTable{
		Headers: []string{"Class", "Lesson", "Item", "Qty", "Size", "UOM"},
		Rows:    rows,
	}
}

var testMapping = models.RoleMapping{
	Class:    "Class",
	Lesson:   "Lesson",
	Item:     "Item",
	Quantity: "Qty",
	Size:     "Size",
	Unit:     "UOM",
}

func TestAggregateSumsQuantities(t *testing.T) {
	table := purchasingTable(
		[]string{"Math", "L1", "Pencil", "3"},
		[]string{"Math", "L1", "Pencil", "2"},
		[]string{"Math", "L1", "Pencil", "abc"},
	)

	s, err := Aggregate(table, testMapping, nil)
	require.NoError(t, err)
	require.Len(t, s.Records, 1)
	assert.Equal(t, 5.0, s.Records[0].Quantity)
}

func TestAggregateDropsRowsMissingIdentity(t *testing.T) {
	table := purchasingTable(
		[]string{"", "L1", "Pencil", "3"},
		[]string{"Math", "", "Pencil", "3"},
		[]string{"Math", "L1", "", "3"},
		[]string{"Math", "L1", "Pencil", "4"},
	)

	s, err := Aggregate(table, testMapping, nil)
	require.NoError(t, err)
	require.Len(t, s.Records, 1)
	assert.Equal(t, 4.0, s.Records[0].Quantity)
}

func TestAggregateShortRows(t *testing.T) {
	// Ragged rows: missing trailing cells count as absent.
	table := purchasingTable(
		[]string{"Math", "L1"},
		[]string{"Math", "L1", "Pencil"},
	)

	s, err := Aggregate(table, testMapping, nil)
	require.NoError(t, err)
	require.Len(t, s.Records, 1)
	assert.Equal(t, 0.0, s.Records[0].Quantity)
}

func TestAggregateExactEqualityGrouping(t *testing.T) {
	// Differently-cased or differently-spaced values are distinct groups.
	table := purchasingTable(
		[]string{"Math", "L1", "Pencil", "1"},
		[]string{"Math", "L1", "pencil", "1"},
		[]string{"Math", "L1", "Pencil ", "1"},
	)

	s, err := Aggregate(table, testMapping, nil)
	require.NoError(t, err)
	assert.Len(t, s.Records, 3)
}

func TestAggregateFirstSizeAndUnitWin(t *testing.T) {
	table := purchasingTable(
		[]string{"Math", "L1", "Pencil", "1", "Small", "box"},
		[]string{"Math", "L1", "Pencil", "2", "Large", "case"},
	)

	s, err := Aggregate(table, testMapping, nil)
	require.NoError(t, err)
	require.Len(t, s.Records, 1)
	assert.True(t, s.HasSize)
	assert.True(t, s.HasUnit)
	assert.Equal(t, "Small", s.Records[0].Size)
	assert.Equal(t, "box", s.Records[0].Unit)
}

func TestAggregateOmitsMissingOptionalColumns(t *testing.T) {
	table := &models.RawTable{
		Headers: []string{"Class", "Lesson", "Item", "Qty"},
		Rows:    [][]string{{"Math", "L1", "Pencil", "1"}},
	}
	mapping := testMapping
	mapping.Size = "No Such Column"
	mapping.Unit = "Also Missing"

	s, err := Aggregate(table, mapping, nil)
	require.NoError(t, err)
	assert.False(t, s.HasSize)
	assert.False(t, s.HasUnit)
}

func TestAggregateFirstAppearanceOrder(t *testing.T) {
	table := purchasingTable(
		[]string{"Sci", "L2", "Beaker", "1"},
		[]string{"Math", "L1", "Pencil", "1"},
		[]string{"Sci", "L2", "Beaker", "1"},
	)

	s, err := Aggregate(table, testMapping, nil)
	require.NoError(t, err)
	require.Len(t, s.Records, 2)
	assert.Equal(t, "Beaker", s.Records[0].Item)
	assert.Equal(t, "Pencil", s.Records[1].Item)
}

func TestAggregateNegativeAndDecimalQuantities(t *testing.T) {
	table := purchasingTable(
		[]string{"Math", "L1", "Pencil", "2.5"},
		[]string{"Math", "L1", "Pencil", "-1"},
		[]string{"Math", "L1", "Pencil", " 3 "},
	)

	s, err := Aggregate(table, testMapping, nil)
	require.NoError(t, err)
	require.Len(t, s.Records, 1)
	assert.Equal(t, 4.5, s.Records[0].Quantity)
}

func TestValidateMappingDuplicateRequired(t *testing.T) {
	table := purchasingTable()
	mapping := testMapping
	mapping.Item = mapping.Class

	_, err := Aggregate(table, mapping, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidMapping)

	var ime *InvalidMappingError
	require.ErrorAs(t, err, &ime)
	assert.Contains(t, ime.Constraint, "Class")
}

func TestValidateMappingMissingRequired(t *testing.T) {
	mapping := testMapping
	mapping.Quantity = ""

	_, err := Aggregate(purchasingTable(), mapping, nil)
	assert.ErrorIs(t, err, ErrInvalidMapping)
}

func TestValidateMappingNoIdentityColumns(t *testing.T) {
	table := &models.RawTable{
		Headers: []string{"A", "B", "C", "D"},
	}

	_, err := Aggregate(table, testMapping, nil)
	assert.ErrorIs(t, err, ErrInvalidMapping)
}

func TestAggregateMissingQuantityColumnCoercesToZero(t *testing.T) {
	table := &models.RawTable{
		Headers: []string{"Class", "Lesson", "Item"},
		Rows:    [][]string{{"Math", "L1", "Pencil"}},
	}
	mapping := models.RoleMapping{Class: "Class", Lesson: "Lesson", Item: "Item", Quantity: "Qty"}

	s, err := Aggregate(table, mapping, nil)
	require.NoError(t, err)
	require.Len(t, s.Records, 1)
	assert.Equal(t, 0.0, s.Records[0].Quantity)
}
