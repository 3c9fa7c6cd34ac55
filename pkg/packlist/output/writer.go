// Package output serializes an assembled workbook to xlsx bytes.
package output

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"packlist/pkg/packlist/models"
)

// Write serializes the workbook into an in-memory xlsx file. Group sheets
// are emitted in order, followed by the INDEX sheet. The workbook is never
// mutated afterward; callers own the returned bytes.
func Write(wb *models.Workbook) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range wb.Sheets {
		if err := addSheet(f, i, sheet.Name); err != nil {
			return nil, err
		}
		if err := writeGroupSheet(f, sheet, wb.HasSize, wb.HasUnit); err != nil {
			return nil, fmt.Errorf("failed to write sheet %q: %w", sheet.Name, err)
		}
	}

	if err := addSheet(f, len(wb.Sheets), models.IndexSheetName); err != nil {
		return nil, err
	}
	if err := writeIndexSheet(f, wb.Index); err != nil {
		return nil, fmt.Errorf("failed to write index sheet: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// addSheet creates the i-th sheet with the given name. The default sheet
// excelize creates with a new file is renamed instead of adding a second one.
func addSheet(f *excelize.File, i int, name string) error {
	if i == 0 {
		if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
			return fmt.Errorf("failed to rename first sheet to %q: %w", name, err)
		}
		return nil
	}
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", name, err)
	}
	return nil
}

func writeGroupSheet(f *excelize.File, sheet models.Sheet, hasSize, hasUnit bool) error {
	header := []interface{}{"Item", "Quantity"}
	if hasSize {
		header = append(header, "Size")
	}
	if hasUnit {
		header = append(header, "Unit/Notes")
	}
	if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
		return err
	}

	for i, rec := range sheet.Records {
		row := []interface{}{rec.Item, rec.Quantity}
		if hasSize {
			row = append(row, rec.Size)
		}
		if hasUnit {
			row = append(row, rec.Unit)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet.Name, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeIndexSheet(f *excelize.File, entries []models.IndexEntry) error {
	header := []interface{}{"Class", "Lesson", "Sheet", "Items"}
	if err := f.SetSheetRow(models.IndexSheetName, "A1", &header); err != nil {
		return err
	}
	for i, e := range entries {
		row := []interface{}{e.Class, e.Lesson, e.Sheet, e.Items}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(models.IndexSheetName, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
