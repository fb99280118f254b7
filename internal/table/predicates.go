// internal/table/predicates.go
package table

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// ApplyNumericFilter evaluates a single numeric filter against one row's
// cell, independent of the matcher pipeline. The second return value is
// false when the cell is empty, meaning "no verdict". Range values
// ("min:max") are tested inclusively with open bounds; a plain value is a
// prefix match on the raw text, which is intentionally narrower than the
// matcher's substring semantics.
func (t *Table) ApplyNumericFilter(spec FilterSpec, row Row) (matched, ok bool) {
	cell := t.CellFor(row, spec.Tool, spec.Column)
	if cell == nil || cell.Raw == "" {
		return false, false
	}
	if strings.Contains(spec.Value, ":") {
		parts := strings.SplitN(spec.Value, ":", 2)
		min := parseBound(parts[0], math.Inf(-1))
		max := parseBound(parts[1], math.Inf(1))
		v, err := strconv.ParseFloat(cell.Raw, 64)
		if err != nil {
			return false, true
		}
		return v >= min && v <= max, true
	}
	return strings.HasPrefix(cell.Raw, spec.Value), true
}

// ApplyTextFilter evaluates a single text filter against one row's cell.
// The second return value is false when the cell is empty ("no verdict");
// otherwise the filter passes on case-sensitive substring containment.
func (t *Table) ApplyTextFilter(spec FilterSpec, row Row) (matched, ok bool) {
	cell := t.CellFor(row, spec.Tool, spec.Column)
	if cell == nil || cell.Raw == "" {
		return false, false
	}
	return strings.Contains(cell.Raw, spec.Value), true
}

// numericSortValue coerces a cell for ordering. Empty and missing cells
// sort last ascending, as do cells whose raw value is not numeric.
func numericSortValue(c *Cell) float64 {
	if c == nil || c.Raw == "" {
		return math.Inf(1)
	}
	v, err := strconv.ParseFloat(c.Raw, 64)
	if err != nil {
		return math.Inf(1)
	}
	return v
}

// CompareNumericCells orders two cells by their coerced numeric values,
// empty cells last.
func CompareNumericCells(a, b *Cell) int {
	av, bv := numericSortValue(a), numericSortValue(b)
	switch {
	case av < bv:
		return -1
	case av > bv:
		return 1
	default:
		return 0
	}
}

// CompareTextCells orders two cells case-insensitively. An empty value
// sorts after any non-empty value in both directions; this deliberately
// breaks strict symmetry when both sides are empty, matching the
// presentation layer's historical behavior.
func CompareTextCells(a, b *Cell) int {
	var av, bv string
	if a != nil {
		av = strings.ToLower(a.Raw)
	}
	if b != nil {
		bv = strings.ToLower(b.Raw)
	}
	if av == "" {
		return 1
	}
	if bv == "" {
		return -1
	}
	return strings.Compare(av, bv)
}

// SortRows orders rows by the given tool column, ascending unless
// descending is set, using the comparator matching the column's type.
// The sort is stable and returns a new slice; the input is not mutated.
func (t *Table) SortRows(rows []Row, tool string, col int, descending bool) []Row {
	ti := t.toolIndex(tool)
	if ti < 0 || ti >= len(t.Tools) || col < 0 || col >= len(t.Tools[ti].Columns) {
		return rows
	}
	numeric := false
	switch t.Tools[ti].Columns[col].Type {
	case ColumnCount, ColumnMeasure:
		numeric = true
	}
	out := make([]Row, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		a := t.CellFor(out[i], tool, col)
		b := t.CellFor(out[j], tool, col)
		var cmp int
		if numeric {
			cmp = CompareNumericCells(a, b)
		} else {
			cmp = CompareTextCells(a, b)
		}
		if descending {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}
