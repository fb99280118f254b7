// internal/table/stats.go
package table

import (
	"math"
	"strconv"

	"github.com/mwiater/kriterion/internal/logging"
)

// CategoryMarker is appended to category names inside extracted statistics
// so filter controls can distinguish a category entry from a raw status
// value with the same text. Filter values carrying the marker are routed to
// category clauses by BuildMatcher.
const CategoryMarker = " "

// ToolStats holds the filterable summary of one tool's column group,
// suitable for populating filter-control option lists.
type ToolStats struct {
	Name    string
	Columns []ColumnStats
}

// ColumnStats summarizes the observed values of a single column. Which
// fields are populated depends on the column type: status columns carry
// Categories and Statuses, text columns carry Distinct, count and measure
// columns carry Min/Max (HasRange reports whether any numeric value was
// seen).
type ColumnStats struct {
	Title      string
	Type       ColumnType
	Categories []string
	Statuses   []string
	Distinct   []string
	Min        float64
	Max        float64
	HasRange   bool
}

// orderedSet accumulates distinct strings preserving first-seen order.
type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

func (s *orderedSet) add(v string) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}

// columnAccumulator folds one column's cells during the row scan.
type columnAccumulator struct {
	column     Column
	categories *orderedSet
	statuses   *orderedSet
	distinct   *orderedSet
	min        float64
	max        float64
	hasRange   bool
}

func newColumnAccumulator(c Column) *columnAccumulator {
	acc := &columnAccumulator{column: c}
	switch c.Type {
	case ColumnStatus:
		acc.categories = newOrderedSet()
		acc.statuses = newOrderedSet()
	case ColumnText:
		acc.distinct = newOrderedSet()
	case ColumnCount, ColumnMeasure:
		acc.min = math.Inf(1)
		acc.max = math.Inf(-1)
	}
	return acc
}

// addCell folds one present cell into the accumulator. Non-numeric raw
// values in numeric columns coerce to NaN and are skipped so they cannot
// corrupt the running min/max.
func (a *columnAccumulator) addCell(cell *Cell) {
	switch a.column.Type {
	case ColumnStatus:
		a.statuses.add(cell.Raw)
	case ColumnText:
		a.distinct.add(cell.Raw)
	case ColumnCount, ColumnMeasure:
		v, err := strconv.ParseFloat(cell.Raw, 64)
		if err != nil || math.IsNaN(v) {
			return
		}
		a.hasRange = true
		if v < a.min {
			a.min = v
		}
		if v > a.max {
			a.max = v
		}
	}
}

func (a *columnAccumulator) stats() ColumnStats {
	cs := ColumnStats{Title: a.column.Title, Type: a.column.Type}
	switch a.column.Type {
	case ColumnStatus:
		cs.Categories = a.categories.items
		cs.Statuses = a.statuses.items
	case ColumnText:
		cs.Distinct = a.distinct.items
	case ColumnCount, ColumnMeasure:
		cs.Min = a.min
		cs.Max = a.max
		cs.HasRange = a.hasRange
	}
	return cs
}

// statusColumn returns the index of the tool's single status column, or -1
// when none is declared.
func statusColumn(t Tool) int {
	for i, c := range t.Columns {
		if c.Type == ColumnStatus {
			return i
		}
	}
	return -1
}

// ExtractFilterableData scans all rows once per tool and produces the
// per-column statistics used to populate filter controls. A tool without a
// status column is a configuration error: it is logged and the tool is
// skipped entirely, without aborting the remaining tools. The input table
// is not mutated, and the result is independent of row order.
func ExtractFilterableData(t *Table) []ToolStats {
	var out []ToolStats
	for ti, tool := range t.Tools {
		si := statusColumn(tool)
		if si < 0 {
			logging.LogEvent("[STATS] tool %q has no status column, skipping", tool.Name)
			continue
		}
		accs := make([]*columnAccumulator, len(tool.Columns))
		for i, col := range tool.Columns {
			accs[i] = newColumnAccumulator(col)
		}
		for _, row := range t.Rows {
			if ti >= len(row.Results) {
				continue
			}
			res := row.Results[ti]
			accs[si].categories.add(res.Category + CategoryMarker)
			for ci := range tool.Columns {
				if cell := res.Value(ci); cell != nil {
					accs[ci].addCell(cell)
				}
			}
		}
		ts := ToolStats{Name: tool.Name, Columns: make([]ColumnStats, len(accs))}
		for i, acc := range accs {
			ts.Columns[i] = acc.stats()
		}
		out = append(out, ts)
	}
	return out
}
