// internal/table/matcher_test.go
package table

import (
	"math"
	"reflect"
	"testing"
)

func hrefs(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.HRef
	}
	return out
}

func TestBuildMatcherIgnoresInactiveFilters(t *testing.T) {
	t.Parallel()

	m := BuildMatcher([]FilterSpec{
		{Tool: "cbmc", Column: 1, Value: ""},
		{Tool: "cbmc", Column: 1, Value: "all"},
		{Tool: "cbmc", Column: 1, Value: " all "},
	})
	if !m.Empty() {
		t.Fatalf("expected empty matcher, got %+v", m)
	}
}

func TestBuildMatcherClauseKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  Clause
	}{
		{
			name:  "closed range",
			value: "5:10",
			want:  Clause{Kind: ClauseRange, Min: 5, Max: 10},
		},
		{
			name:  "open start",
			value: ":10",
			want:  Clause{Kind: ClauseRange, Min: math.Inf(-1), Max: 10},
		},
		{
			name:  "open end",
			value: "5:",
			want:  Clause{Kind: ClauseRange, Min: 5, Max: math.Inf(1)},
		},
		{
			name:  "category",
			value: "correct ",
			want:  Clause{Kind: ClauseCategory, Value: "correct"},
		},
		{
			name:  "plain value",
			value: "TIMEOUT",
			want:  Clause{Kind: ClauseValue, Value: "TIMEOUT"},
		},
		{
			name:  "double trailing space is a plain value",
			value: "correct  ",
			want:  Clause{Kind: ClauseValue, Value: "correct  "},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := BuildMatcher([]FilterSpec{{Tool: "cbmc", Column: 1, Value: tt.value}})
			clauses := m.Tools["cbmc"][1]
			if len(clauses) != 1 {
				t.Fatalf("expected 1 clause, got %+v", m.Tools)
			}
			if !reflect.DeepEqual(clauses[0], tt.want) {
				t.Fatalf("clause=%+v want %+v", clauses[0], tt.want)
			}
		})
	}
}

func TestBuildMatcherSpecialFilters(t *testing.T) {
	t.Parallel()

	m := BuildMatcher([]FilterSpec{
		{RowID: true, Value: "task1"},
		{Tool: "cbmc", Column: 1, Value: "diff"},
	})
	if !m.HasID || m.ID != "task1" {
		t.Fatalf("id clause missing: %+v", m)
	}
	if !reflect.DeepEqual(m.Diff, []int{1}) {
		t.Fatalf("diff clause=%v", m.Diff)
	}
	if len(m.Tools) != 0 {
		t.Fatalf("diff filter leaked into tool map: %+v", m.Tools)
	}
}

func TestApplyEmptyMatcherKeepsAllRows(t *testing.T) {
	t.Parallel()

	tbl := fixtureTable()
	got := tbl.Apply(BuildMatcher(nil))
	if !reflect.DeepEqual(hrefs(got), hrefs(tbl.Rows)) {
		t.Fatalf("empty matcher changed rows: %v", hrefs(got))
	}
}

func TestApplyNumericRange(t *testing.T) {
	t.Parallel()

	tbl := fixtureTable()
	m := BuildMatcher([]FilterSpec{{Tool: "cbmc", Column: 1, Value: "5:10"}})
	got := tbl.Apply(m)
	if !reflect.DeepEqual(hrefs(got), []string{"results/task2.yml"}) {
		t.Fatalf("range filter kept %v", hrefs(got))
	}

	// Open bounds behave as infinities.
	m = BuildMatcher([]FilterSpec{{Tool: "cbmc", Column: 1, Value: ":7"}})
	got = tbl.Apply(m)
	if !reflect.DeepEqual(hrefs(got), []string{"results/task1.yml", "results/task2.yml"}) {
		t.Fatalf("open range kept %v", hrefs(got))
	}
}

func TestApplyTextSubstring(t *testing.T) {
	t.Parallel()

	tbl := fixtureTable()
	m := BuildMatcher([]FilterSpec{{Tool: "esbmc", Column: 2, Value: "gem"}})
	got := tbl.Apply(m)
	if !reflect.DeepEqual(hrefs(got), []string{"results/task1.yml", "results/task3.yml"}) {
		t.Fatalf("substring filter kept %v", hrefs(got))
	}
}

func TestApplyCategory(t *testing.T) {
	t.Parallel()

	tbl := fixtureTable()
	m := BuildMatcher([]FilterSpec{{Tool: "esbmc", Column: 0, Value: "correct "}})
	got := tbl.Apply(m)
	if !reflect.DeepEqual(hrefs(got), []string{"results/task1.yml"}) {
		t.Fatalf("category filter kept %v", hrefs(got))
	}

	// Without the marker the same text is a status substring match instead.
	m = BuildMatcher([]FilterSpec{{Tool: "esbmc", Column: 0, Value: "false"}})
	got = tbl.Apply(m)
	if !reflect.DeepEqual(hrefs(got), []string{"results/task2.yml"}) {
		t.Fatalf("status filter kept %v", hrefs(got))
	}
}

func TestApplyDiff(t *testing.T) {
	t.Parallel()

	tbl := fixtureTable()
	m := BuildMatcher([]FilterSpec{{Tool: "cbmc", Column: 1, Value: "diff"}})
	got := tbl.Apply(m)
	// task1: 3 vs 4 differ; task2: 7 vs 8 differ; task3: only one tool
	// reports a value, no observable disagreement.
	if !reflect.DeepEqual(hrefs(got), []string{"results/task1.yml", "results/task2.yml"}) {
		t.Fatalf("diff filter kept %v", hrefs(got))
	}
}

func TestApplyDiffNoValuesExcludesRow(t *testing.T) {
	t.Parallel()

	tbl := fixtureTable()
	tbl.Rows[0].Results[0].Values[1] = nil
	tbl.Rows[0].Results[1].Values[1] = nil
	m := BuildMatcher([]FilterSpec{{Tool: "cbmc", Column: 1, Value: "diff"}})
	got := tbl.Apply(m)
	if !reflect.DeepEqual(hrefs(got), []string{"results/task2.yml"}) {
		t.Fatalf("diff filter kept %v", hrefs(got))
	}
}

func TestApplyRowID(t *testing.T) {
	t.Parallel()

	tbl := fixtureTable()
	m := BuildMatcher([]FilterSpec{{RowID: true, Value: "task2"}})
	got := tbl.Apply(m)
	if !reflect.DeepEqual(hrefs(got), []string{"results/task2.yml"}) {
		t.Fatalf("id filter kept %v", hrefs(got))
	}
}

func TestApplyClausesORWithinColumn(t *testing.T) {
	t.Parallel()

	tbl := fixtureTable()
	m := BuildMatcher([]FilterSpec{
		{Tool: "esbmc", Column: 0, Value: "correct "},
		{Tool: "esbmc", Column: 0, Value: "wrong "},
	})
	got := tbl.Apply(m)
	if !reflect.DeepEqual(hrefs(got), []string{"results/task1.yml", "results/task2.yml"}) {
		t.Fatalf("OR within column kept %v", hrefs(got))
	}
}

func TestApplyColumnsANDAcrossToolsAndColumns(t *testing.T) {
	t.Parallel()

	tbl := fixtureTable()
	m := BuildMatcher([]FilterSpec{
		{Tool: "cbmc", Column: 0, Value: "correct "},
		{Tool: "esbmc", Column: 2, Value: "apollo"},
	})
	got := tbl.Apply(m)
	if !reflect.DeepEqual(hrefs(got), []string{"results/task2.yml"}) {
		t.Fatalf("AND across tools kept %v", hrefs(got))
	}
}

func TestApplyNonNumericRawNeverMatchesRange(t *testing.T) {
	t.Parallel()

	tbl := fixtureTable()
	tbl.Rows[1].Results[0].Values[1] = cell("n/a")
	m := BuildMatcher([]FilterSpec{{Tool: "cbmc", Column: 1, Value: ":100"}})
	got := tbl.Apply(m)
	if !reflect.DeepEqual(hrefs(got), []string{"results/task1.yml", "results/task3.yml"}) {
		t.Fatalf("NaN cell matched a range: %v", hrefs(got))
	}
}

func TestApplyMissingCellDoesNotMatch(t *testing.T) {
	t.Parallel()

	tbl := fixtureTable()
	// esbmc reports no cputime for task3; the clause must treat the row as
	// non-matching without panicking.
	m := BuildMatcher([]FilterSpec{{Tool: "esbmc", Column: 1, Value: ":100"}})
	got := tbl.Apply(m)
	if !reflect.DeepEqual(hrefs(got), []string{"results/task1.yml", "results/task2.yml"}) {
		t.Fatalf("missing cell matched: %v", hrefs(got))
	}
}

func TestApplyUnknownToolRejectsEverything(t *testing.T) {
	t.Parallel()

	tbl := fixtureTable()
	m := BuildMatcher([]FilterSpec{{Tool: "nonesuch", Column: 0, Value: "x"}})
	if got := tbl.Apply(m); len(got) != 0 {
		t.Fatalf("unknown tool kept %v", hrefs(got))
	}
}

func TestApplyDoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	tbl := fixtureTable()
	before := hrefs(tbl.Rows)
	m := BuildMatcher([]FilterSpec{{Tool: "cbmc", Column: 1, Value: "5:10"}})
	_ = tbl.Apply(m)
	if !reflect.DeepEqual(hrefs(tbl.Rows), before) {
		t.Fatalf("Apply reordered input rows: %v", hrefs(tbl.Rows))
	}
}
