package pipeline

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"packlist/pkg/packlist/models"
	"packlist/pkg/packlist/roles"
)

// Assemble partitions aggregated records into per-(class, lesson) sheets,
// assigns each a safe, unique name, and builds the INDEX entries. Sheets
// and index entries are sorted by class then lesson; records within a
// sheet are sorted ascending by item. An empty summary yields a workbook
// with no sheets and an empty index.
func Assemble(summary *Summary, logger *zap.Logger) *models.Workbook {
	if logger == nil {
		logger = zap.NewNop()
	}

	type groupKey struct{ class, lesson string }
	index := make(map[groupKey]int)
	var groups []models.Sheet

	for _, rec := range summary.Records {
		k := groupKey{rec.Class, rec.Lesson}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, models.Sheet{Class: rec.Class, Lesson: rec.Lesson})
		}
		groups[i].Records = append(groups[i].Records, rec)
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Class != groups[j].Class {
			return groups[i].Class < groups[j].Class
		}
		return groups[i].Lesson < groups[j].Lesson
	})

	wb := &models.Workbook{
		HasSize: summary.HasSize,
		HasUnit: summary.HasUnit,
	}

	used := map[string]bool{models.IndexSheetName: true}
	for _, g := range groups {
		base := roles.SafeSheetName(fmt.Sprintf("%s - %s", g.Class, g.Lesson))
		name := uniqueSheetName(base, used)
		used[name] = true
		if name != base {
			wb.Collisions = append(wb.Collisions, models.Collision{
				Name:      base,
				RenamedTo: name,
				Class:     g.Class,
				Lesson:    g.Lesson,
			})
			logger.Warn("sheet name collision, renaming",
				zap.String("name", base),
				zap.String("renamed_to", name),
				zap.String("class", g.Class),
				zap.String("lesson", g.Lesson))
		}

		sort.Slice(g.Records, func(i, j int) bool {
			return g.Records[i].Item < g.Records[j].Item
		})

		g.Name = name
		wb.Sheets = append(wb.Sheets, g)
		wb.Index = append(wb.Index, models.IndexEntry{
			Class:  g.Class,
			Lesson: g.Lesson,
			Sheet:  name,
			Items:  len(g.Records),
		})
	}

	return wb
}

// uniqueSheetName disambiguates base against already-used names with a
// numeric suffix, re-truncating so the result stays within the 31-rune
// sheet-name limit.
func uniqueSheetName(base string, used map[string]bool) string {
	if !used[base] {
		return base
	}
	for n := 2; ; n++ {
		name := roles.SafeSheetName(suffixed(base, n))
		if !used[name] {
			return name
		}
	}
}

func suffixed(base string, n int) string {
	suffix := fmt.Sprintf("-%d", n)
	r := []rune(base)
	if len(r)+len(suffix) > 31 {
		r = r[:31-len(suffix)]
	}
	return string(r) + suffix
}
