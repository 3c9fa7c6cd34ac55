// Package input reads uploaded spreadsheets into raw tables. It is the
// table-producing side of the shell: the core pipeline only ever sees the
// RawTable and the confirmed RoleMapping.
package input

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"packlist/pkg/packlist/models"
	"packlist/pkg/packlist/roles"
)

// ErrUnreadableSource indicates the input could not be read as an xlsx
// workbook.
var ErrUnreadableSource = errors.New("unreadable source workbook")

// sheetNameKeys are tried in order against normalized sheet names to pick
// a default input sheet. Bulk purchasing exports usually carry their data
// on a "Master List" or "Purchasing" tab.
var sheetNameKeys = []string{"master", "purch", "bulk", "order", "list"}

// Source is an open input workbook.
type Source struct {
	f *excelize.File
}

// OpenReader opens an xlsx workbook from r. Failures wrap
// ErrUnreadableSource.
func OpenReader(r io.Reader) (*Source, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableSource, err)
	}
	return &Source{f: f}, nil
}

// Close releases the underlying workbook.
func (s *Source) Close() error {
	return s.f.Close()
}

// SheetNames returns the workbook's sheet names in order.
func (s *Source) SheetNames() []string {
	return s.f.GetSheetList()
}

// Table reads the named sheet into a RawTable. The first row becomes the
// header list (whitespace-trimmed); remaining rows become data rows with
// their original cell values. An empty sheet name selects PreferredSheet.
func (s *Source) Table(sheet string) (*models.RawTable, error) {
	if sheet == "" {
		sheet = PreferredSheet(s.SheetNames())
	}
	rows, err := s.f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: reading sheet %q: %v", ErrUnreadableSource, sheet, err)
	}
	if len(rows) == 0 {
		return &models.RawTable{}, nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}
	return &models.RawTable{
		Headers: headers,
		Rows:    rows[1:],
	}, nil
}

// PreferredSheet picks the sheet most likely to hold the purchasing table:
// the first sheet whose normalized name contains one of the known keywords,
// with keyword priority dominating sheet order. Falls back to the first
// sheet when nothing matches.
func PreferredSheet(names []string) string {
	for _, key := range sheetNameKeys {
		for _, name := range names {
			if strings.Contains(roles.Normalize(name), key) {
				return name
			}
		}
	}
	if len(names) > 0 {
		return names[0]
	}
	return ""
}
