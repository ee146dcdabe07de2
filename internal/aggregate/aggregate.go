// Package aggregate implements the grouped-sum engine shared by the source
// adapters, plus the guarded ratio math used for derived statistics.
package aggregate

import (
	"fmt"
	"sort"
	"time"

	"storelens/internal/frame"
)

// Spec describes one grouping pass over normalized rows.
type Spec struct {
	// GroupBy lists the key columns in order. Rows with a nil key cell are
	// excluded from the output; categorical columns must be filled with ""
	// beforehand when absent values should still be counted.
	GroupBy []string
	// Sum lists the numeric columns accumulated per group.
	Sum []string
	// Count, when set, names an output field receiving the row count of
	// each group.
	Count string
	// OrderBy lists the columns the output is sorted by, ascending. Empty
	// means sort by the group keys in declaration order.
	OrderBy []string
}

// Record is one grouped output row: the key columns plus the summed and
// counted fields.
type Record map[string]any

// Aggregate groups rows by the spec's key columns and accumulates the
// configured sums. Key equality is on the normalized typed values; dates
// key by calendar day.
func Aggregate(rows []frame.Row, spec Spec) []Record {
	groups := make(map[string]Record)
	var order []string

	for _, row := range rows {
		key, ok := groupKey(row, spec.GroupBy)
		if !ok {
			continue
		}
		rec, seen := groups[key]
		if !seen {
			rec = make(Record, len(spec.GroupBy)+len(spec.Sum)+1)
			for _, col := range spec.GroupBy {
				rec[col] = row[col]
			}
			for _, col := range spec.Sum {
				rec[col] = 0.0
			}
			if spec.Count != "" {
				rec[spec.Count] = 0
			}
			groups[key] = rec
			order = append(order, key)
		}
		for _, col := range spec.Sum {
			rec[col] = rec[col].(float64) + row.Float(col)
		}
		if spec.Count != "" {
			rec[spec.Count] = rec[spec.Count].(int) + 1
		}
	}

	out := make([]Record, 0, len(order))
	for _, key := range order {
		out = append(out, groups[key])
	}

	orderBy := spec.OrderBy
	if len(orderBy) == 0 {
		orderBy = spec.GroupBy
	}
	sort.SliceStable(out, func(i, j int) bool {
		for _, col := range orderBy {
			if c := compare(out[i][col], out[j][col]); c != 0 {
				return c < 0
			}
		}
		return false
	})
	return out
}

// groupKey builds a composite string key from the row's group columns.
// ok is false when any key cell is absent.
func groupKey(row frame.Row, cols []string) (string, bool) {
	key := ""
	for _, col := range cols {
		v := row[col]
		if v == nil {
			return "", false
		}
		switch t := v.(type) {
		case time.Time:
			key += t.Format("2006-01-02")
		default:
			key += fmt.Sprintf("%v", t)
		}
		key += "\x1f"
	}
	return key, true
}

func compare(a, b any) int {
	switch av := a.(type) {
	case time.Time:
		bv, ok := b.(time.Time)
		if !ok {
			return 0
		}
		switch {
		case av.Before(bv):
			return -1
		case av.After(bv):
			return 1
		}
		return 0
	case float64:
		bv, ok := b.(float64)
		if !ok {
			return 0
		}
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case int:
		bv, ok := b.(int)
		if !ok {
			return 0
		}
		return av - bv
	case string:
		bv, ok := b.(string)
		if !ok {
			return 0
		}
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	}
	return 0
}

// Date returns the record's key column as an ISO date string, or "" when
// the column does not hold a date.
func (r Record) Date(col string) string {
	if t, ok := r[col].(time.Time); ok {
		return t.Format("2006-01-02")
	}
	return ""
}

// Float returns the record's field as a float64, or 0 otherwise.
func (r Record) Float(col string) float64 {
	v, _ := r[col].(float64)
	return v
}

// Int returns the record's count field, or 0 otherwise.
func (r Record) Int(col string) int {
	v, _ := r[col].(int)
	return v
}

// String returns the record's field as a string, or "" otherwise.
func (r Record) String(col string) string {
	v, _ := r[col].(string)
	return v
}

// GuardedRate computes num/den as a percentage. A denominator of zero or
// less yields exactly 0 so derived stats are always finite.
func GuardedRate(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den * 100
}

// Mean returns the arithmetic mean of xs, or 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	total := 0.0
	for _, x := range xs {
		total += x
	}
	return total / float64(len(xs))
}

// SumColumn totals a numeric column over all rows.
func SumColumn(rows []frame.Row, col string) float64 {
	total := 0.0
	for _, row := range rows {
		total += row.Float(col)
	}
	return total
}

// Distinct counts the distinct non-absent values of a column.
func Distinct(rows []frame.Row, col string) int {
	seen := make(map[string]struct{})
	for _, row := range rows {
		v := row[col]
		if v == nil {
			continue
		}
		seen[fmt.Sprintf("%v", v)] = struct{}{}
	}
	return len(seen)
}
