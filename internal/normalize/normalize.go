// Package normalize coerces locale-formatted cells into typed values.
// Every function here is total: malformed input becomes a zero value or an
// absent cell, never an error.
package normalize

import (
	"strconv"
	"strings"
	"time"

	"storelens/internal/frame"
)

// Date layouts accepted across the marketplace exports. Some exports write
// dot-separated dates with a trailing separator ("2024.01.05."), which is
// stripped before parsing.
var dateLayouts = []string{"2006.01.02", "2006-01-02"}

// Number coerces a raw cell into a float64. Thousands separators and
// surrounding whitespace are stripped; empty cells and the literal "nan"
// parse as zero, as does anything else that still fails to parse.
func Number(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" || strings.EqualFold(s, "nan") {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// Date coerces a raw cell into a calendar date. ok is false when the cell
// does not match any accepted layout.
func Date(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ".")
	s = strings.TrimSuffix(s, "-")
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Numbers converts the given columns of f to float64 cells in place.
// Cells that already hold numbers are kept as is.
func Numbers(f *frame.Frame, cols ...string) {
	for _, row := range f.Rows {
		for _, col := range cols {
			switch v := row[col].(type) {
			case float64:
				// already normalized
			case string:
				row[col] = Number(v)
			default:
				row[col] = 0.0
			}
		}
	}
}

// Dates converts the date column of f in place. When dropInvalid is set,
// rows whose date fails to parse are removed from the frame; otherwise the
// cell becomes nil and the row is kept. Which policy applies is a property
// of the source: pre-validated exports are coerced in place, free-form ones
// are filtered.
func Dates(f *frame.Frame, col string, dropInvalid bool) {
	kept := f.Rows[:0]
	for _, row := range f.Rows {
		s, isString := row[col].(string)
		if !isString {
			if _, ok := row[col].(time.Time); ok {
				kept = append(kept, row)
				continue
			}
			s = ""
		}
		if t, ok := Date(s); ok {
			row[col] = t
			kept = append(kept, row)
			continue
		}
		if dropInvalid {
			continue
		}
		row[col] = nil
		kept = append(kept, row)
	}
	f.Rows = kept
}

// FillEmpty replaces absent cells in a categorical column with the empty
// string so grouping keeps those rows instead of silently excluding them.
func FillEmpty(f *frame.Frame, col string) {
	for _, row := range f.Rows {
		if row[col] == nil {
			row[col] = ""
		}
	}
}
