// Package frame provides the tabular primitives shared by all source
// adapters: an ordered column list plus loosely typed rows loaded from
// delimited exports.
package frame

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"
)

// Row maps a column name to a cell value. Cells start life as raw strings
// and are replaced in place with float64 or time.Time values by the
// normalize package; a nil cell marks an absent value.
type Row map[string]any

// Frame holds rows loaded from a single delimited export together with the
// header order of the source file.
type Frame struct {
	Columns []string
	Rows    []Row
}

// ReadCSV loads a UTF-8 CSV export into a Frame. A leading byte-order mark
// is stripped from the first header cell, the marketplace exports always
// carry one. Short records are padded with empty strings; columns beyond
// the header are ignored.
func ReadCSV(path string) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open source file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read source file: %w", err)
	}
	if len(records) == 0 {
		return &Frame{}, nil
	}

	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "")
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	f := &Frame{
		Columns: header,
		Rows:    make([]Row, 0, len(records)-1),
	}
	for _, record := range records[1:] {
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		f.Rows = append(f.Rows, row)
	}
	return f, nil
}

// HasColumn reports whether the frame was loaded with the given header.
func (f *Frame) HasColumn(name string) bool {
	for _, col := range f.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// String returns the cell as a string, or "" when the cell is absent or
// holds a non-string value.
func (r Row) String(col string) string {
	s, _ := r[col].(string)
	return s
}

// Float returns the cell as a float64, or 0 when the cell holds anything
// else. Normalized numeric columns always hold float64 cells.
func (r Row) Float(col string) float64 {
	v, _ := r[col].(float64)
	return v
}

// Date returns the cell as a calendar date. ok is false when the cell is
// absent or was never normalized into a date.
func (r Row) Date(col string) (time.Time, bool) {
	t, ok := r[col].(time.Time)
	return t, ok
}
