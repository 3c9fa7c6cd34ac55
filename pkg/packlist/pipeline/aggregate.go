package pipeline

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"packlist/pkg/packlist/models"
)

// Summary is the output of the aggregation stage: one record per unique
// (class, lesson, item) tuple, in first-appearance order.
type Summary struct {
	// Records are the aggregated rows.
	Records []models.AggregatedRecord
	// HasSize reports whether a size column was requested and present.
	HasSize bool
	// HasUnit reports whether a unit column was requested and present.
	HasUnit bool
}

// ValidateMapping re-checks the mapping invariants the caller is expected
// to have enforced: the four required roles must be set and mutually
// distinct, and at least one of the identity columns (class, lesson, item)
// must exist in the table. Violations return an *InvalidMappingError.
func ValidateMapping(table *models.RawTable, mapping models.RoleMapping) error {
	required := mapping.Required()
	names := []string{"class", "lesson", "item", "quantity"}
	seen := make(map[string]string, len(required))
	for i, header := range required {
		if header == "" {
			return invalidMapping("required role %q has no column", names[i])
		}
		if prev, ok := seen[header]; ok {
			return invalidMapping("roles %q and %q both map to column %q", prev, names[i], header)
		}
		seen[header] = names[i]
	}

	if !table.HasColumn(mapping.Class) && !table.HasColumn(mapping.Lesson) && !table.HasColumn(mapping.Item) {
		return invalidMapping("none of the identity columns %q, %q, %q exist in the table",
			mapping.Class, mapping.Lesson, mapping.Item)
	}
	return nil
}

// Aggregate cleans, groups, and sums the table rows into per-(class,
// lesson, item) records. Rows missing a class, lesson, or item cell are
// dropped. Quantities that cannot be parsed as numbers coerce to zero;
// every coercion is logged so the degradation is auditable. Optional
// columns named in the mapping but absent from the table are omitted from
// the whole output.
func Aggregate(table *models.RawTable, mapping models.RoleMapping, logger *zap.Logger) (*Summary, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := ValidateMapping(table, mapping); err != nil {
		return nil, err
	}

	classIdx := table.ColumnIndex(mapping.Class)
	lessonIdx := table.ColumnIndex(mapping.Lesson)
	itemIdx := table.ColumnIndex(mapping.Item)
	qtyIdx := table.ColumnIndex(mapping.Quantity)

	sizeIdx := -1
	if mapping.HasSize() {
		sizeIdx = table.ColumnIndex(mapping.Size)
		if sizeIdx < 0 {
			logger.Debug("size column not found, omitting", zap.String("column", mapping.Size))
		}
	}
	unitIdx := -1
	if mapping.HasUnit() {
		unitIdx = table.ColumnIndex(mapping.Unit)
		if unitIdx < 0 {
			logger.Debug("unit column not found, omitting", zap.String("column", mapping.Unit))
		}
	}

	type key struct{ class, lesson, item string }
	index := make(map[key]int)
	summary := &Summary{
		HasSize: sizeIdx >= 0,
		HasUnit: unitIdx >= 0,
	}

	for rowIdx := range table.Rows {
		class, ok := table.Cell(rowIdx, classIdx)
		if !ok {
			logger.Debug("dropping row with missing class", zap.Int("row", rowIdx+1))
			continue
		}
		lesson, ok := table.Cell(rowIdx, lessonIdx)
		if !ok {
			logger.Debug("dropping row with missing lesson", zap.Int("row", rowIdx+1))
			continue
		}
		item, ok := table.Cell(rowIdx, itemIdx)
		if !ok {
			logger.Debug("dropping row with missing item", zap.Int("row", rowIdx+1))
			continue
		}

		qty := coerceQuantity(table, rowIdx, qtyIdx, logger)

		k := key{class, lesson, item}
		i, ok := index[k]
		if !ok {
			i = len(summary.Records)
			index[k] = i
			rec := models.AggregatedRecord{Class: class, Lesson: lesson, Item: item}
			if sizeIdx >= 0 {
				rec.Size, _ = table.Cell(rowIdx, sizeIdx)
			}
			if unitIdx >= 0 {
				rec.Unit, _ = table.Cell(rowIdx, unitIdx)
			}
			summary.Records = append(summary.Records, rec)
		}
		summary.Records[i].Quantity += qty
	}

	return summary, nil
}

// coerceQuantity parses the quantity cell of a row. Absent or unparseable
// values degrade to zero rather than failing the run.
func coerceQuantity(table *models.RawTable, rowIdx, qtyIdx int, logger *zap.Logger) float64 {
	raw, ok := table.Cell(rowIdx, qtyIdx)
	if !ok {
		return 0
	}
	q, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		logger.Debug("coercing unparseable quantity to zero",
			zap.Int("row", rowIdx+1), zap.String("value", raw))
		return 0
	}
	return q
}
