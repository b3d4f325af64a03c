package dataprocessing

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "retailpulse/internal/errors"
)

// sheet is a raw worksheet: a header map plus the data rows below it.
// All cell access goes through the typed accessors so fillna(0)-style
// defaulting happens in exactly one place.
type sheet struct {
	path    string
	columns map[string]int
	rows    [][]string
}

// openSheet reads the first worksheet of the workbook at path. The first
// non-empty row is the header; column names are matched exactly (trimmed,
// case-sensitive). Returns a load error if the file is absent, unreadable,
// or has no data sheet.
func openSheet(path string) (*sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewLoadError("failed to open workbook", err).WithContext("path", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewLoadError("workbook has no sheets", nil).WithContext("path", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.NewLoadError("failed to read sheet rows", err).WithContext("path", path)
	}

	// Find the header row: the first row with any non-blank cell.
	headerRow := -1
	for i, row := range rows {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				headerRow = i
				break
			}
		}
		if headerRow >= 0 {
			break
		}
	}
	if headerRow < 0 {
		return nil, apperrors.NewLoadError("workbook contains no data", nil).WithContext("path", path)
	}

	columns := make(map[string]int, len(rows[headerRow]))
	for j, header := range rows[headerRow] {
		name := strings.TrimSpace(header)
		if name == "" {
			continue
		}
		if _, dup := columns[name]; !dup {
			columns[name] = j
		}
	}

	return &sheet{
		path:    path,
		columns: columns,
		rows:    rows[headerRow+1:],
	}, nil
}

// require verifies that every named column is present, returning a schema
// error naming the first one that is not.
func (s *sheet) require(names ...string) error {
	for _, name := range names {
		if _, ok := s.columns[name]; !ok {
			return apperrors.NewSchemaError(fmt.Sprintf("required column %q not found", name), nil).
				WithContext("path", s.path).
				WithContext("column", name)
		}
	}
	return nil
}

// has reports whether the named column exists. Callers synthesize zero
// values for absent optional columns rather than failing.
func (s *sheet) has(name string) bool {
	_, ok := s.columns[name]
	return ok
}

// str returns the trimmed cell value for the named column, or "" when the
// column is absent or the row is short.
func (s *sheet) str(row []string, name string) string {
	idx, ok := s.columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// float returns the numeric cell value for the named column. Blank,
// absent, and unparseable cells are zero, mirroring fillna(0) on load.
func (s *sheet) float(row []string, name string) float64 {
	raw := s.str(row, name)
	if raw == "" {
		return 0
	}
	val, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		return 0
	}
	return val
}

// empty reports whether the row has no non-blank cells.
func (s *sheet) empty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// normalizeKey canonicalizes a join key to string form. Spreadsheet tools
// frequently store barcodes as numbers in one file and text in another;
// integral numerics are rendered without a fractional part so both sides
// compare equal.
func normalizeKey(raw string) string {
	key := strings.TrimSpace(raw)
	if key == "" {
		return ""
	}
	if val, err := strconv.ParseFloat(strings.ReplaceAll(key, ",", ""), 64); err == nil {
		if val == math.Trunc(val) && math.Abs(val) < 1e15 {
			return strconv.FormatInt(int64(val), 10)
		}
	}
	return key
}
