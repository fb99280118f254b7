// internal/table/matcher.go
package table

import (
	"math"
	"strconv"
	"strings"
)

// allValue is the filter value meaning "no filter on this column".
const allValue = "all"

// diffValue is the filter value selecting the cross-tool diff filter.
const diffValue = "diff"

// FilterSpec is one active filter-control state. RowID selects the row
// identifier filter (the Tool/Column fields are ignored); otherwise the
// spec targets the given tool's column. Value carries the control's raw
// value: "all" (no filter), "diff", a "min:max" range, a category name
// ending in CategoryMarker, or a plain match value.
type FilterSpec struct {
	Tool   string
	Column int
	RowID  bool
	Value  string
}

// ClauseKind discriminates the three filter clause variants.
type ClauseKind int

const (
	// ClauseValue matches on exact equality or substring containment.
	ClauseValue ClauseKind = iota
	// ClauseRange matches numeric cells within [Min, Max] inclusive.
	ClauseRange
	// ClauseCategory matches the result's status category exactly.
	ClauseCategory
)

// Clause is one compiled filter clause. Value is set for ClauseValue and
// ClauseCategory, Min/Max for ClauseRange.
type Clause struct {
	Kind  ClauseKind
	Value string
	Min   float64
	Max   float64
}

// Matcher is the compiled form of a set of filter specifications. Clauses
// within one column are OR-combined; columns (and tools) are AND-combined.
// The diff clause list and the id clause sit outside the per-tool map and
// are evaluated first.
type Matcher struct {
	Tools map[string]map[int][]Clause
	Diff  []int
	ID    string
	HasID bool
}

// Empty reports whether the matcher contains no clauses at all, in which
// case Apply returns every row.
func (m Matcher) Empty() bool {
	return len(m.Tools) == 0 && len(m.Diff) == 0 && !m.HasID
}

// parseBound converts one side of a "min:max" range. An empty bound is
// open; a non-numeric bound yields NaN so the clause can never match.
func parseBound(s string, open float64) float64 {
	if s == "" {
		return open
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// hasCategoryMarker reports whether the value carries exactly one trailing
// CategoryMarker, the convention ExtractFilterableData uses to tag status
// categories.
func hasCategoryMarker(v string) bool {
	return strings.HasSuffix(v, CategoryMarker) &&
		!strings.HasSuffix(strings.TrimSuffix(v, CategoryMarker), CategoryMarker)
}

// BuildMatcher compiles filter specifications into a Matcher. Specs whose
// value is empty or "all" (after trimming) are ignored. Building is
// deterministic: clause order within a column follows spec arrival order,
// which does not affect OR-semantics.
func BuildMatcher(specs []FilterSpec) Matcher {
	m := Matcher{Tools: make(map[string]map[int][]Clause)}
	for _, spec := range specs {
		if spec.Value == "" || strings.TrimSpace(spec.Value) == allValue {
			continue
		}
		if spec.RowID {
			m.ID = spec.Value
			m.HasID = true
			continue
		}
		if spec.Value == diffValue {
			m.Diff = append(m.Diff, spec.Column)
			continue
		}
		var clause Clause
		switch {
		case strings.Contains(spec.Value, ":"):
			parts := strings.SplitN(spec.Value, ":", 2)
			clause = Clause{
				Kind: ClauseRange,
				Min:  parseBound(parts[0], math.Inf(-1)),
				Max:  parseBound(parts[1], math.Inf(1)),
			}
		case hasCategoryMarker(spec.Value):
			clause = Clause{Kind: ClauseCategory, Value: strings.TrimSuffix(spec.Value, CategoryMarker)}
		default:
			clause = Clause{Kind: ClauseValue, Value: spec.Value}
		}
		cols := m.Tools[spec.Tool]
		if cols == nil {
			cols = make(map[int][]Clause)
			m.Tools[spec.Tool] = cols
		}
		cols[spec.Column] = append(cols[spec.Column], clause)
	}
	return m
}

// clauseMatches evaluates one clause against a single result's cell.
// A nil cell never matches; a non-numeric raw value never matches a range
// clause (its coercion yields NaN and every comparison is false).
func clauseMatches(c Clause, res RunResult, cell *Cell) bool {
	switch c.Kind {
	case ClauseCategory:
		return res.Category == c.Value
	case ClauseRange:
		if cell == nil {
			return false
		}
		v, err := strconv.ParseFloat(cell.Raw, 64)
		if err != nil {
			return false
		}
		return v >= c.Min && v <= c.Max
	default:
		if cell == nil {
			return false
		}
		return strings.Contains(cell.Raw, c.Value)
	}
}

// rowDiffers reports whether at least two tools disagree on the raw value
// at the given column. Rows where no tool reports a value cannot exhibit a
// disagreement and are treated as non-differing.
func rowDiffers(row Row, col int) bool {
	distinct := make(map[string]struct{})
	for _, res := range row.Results {
		if cell := res.Value(col); cell != nil {
			distinct[cell.Raw] = struct{}{}
		}
	}
	return len(distinct) > 1
}

// matchRow applies the per-tool clause map to one row. Within a column the
// clauses are OR-combined; across columns and tools the results are
// AND-combined, rejecting the row on the first column with no passing
// clause.
func (t *Table) matchRow(m Matcher, row Row) bool {
	for tool, cols := range m.Tools {
		ti := t.toolIndex(tool)
		for col, clauses := range cols {
			var res RunResult
			if ti >= 0 && ti < len(row.Results) {
				res = row.Results[ti]
			}
			cell := res.Value(col)
			passed := false
			for _, c := range clauses {
				if clauseMatches(c, res, cell) {
					passed = true
					break
				}
			}
			if !passed {
				return false
			}
		}
	}
	return true
}

// Apply filters the table's rows through the matcher, preserving original
// row order: diff clauses first, then the id clause, then per-tool column
// clauses. Neither the rows nor the matcher are mutated.
func (t *Table) Apply(m Matcher) []Row {
	out := make([]Row, 0, len(t.Rows))
	for _, row := range t.Rows {
		keep := true
		for _, col := range m.Diff {
			if !rowDiffers(row, col) {
				keep = false
				break
			}
		}
		if keep && m.HasID {
			keep = strings.Contains(row.HRef, m.ID)
		}
		if keep {
			keep = t.matchRow(m, row)
		}
		if keep {
			out = append(out, row)
		}
	}
	return out
}
