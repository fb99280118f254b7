// internal/report/report_test.go
package report

import (
	"strings"
	"testing"

	"github.com/mwiater/kriterion/internal/table"
)

func testTable() *table.Table {
	c := func(raw string) *table.Cell { return &table.Cell{Raw: raw} }
	cols := []table.Column{
		{Type: table.ColumnStatus, Title: "status"},
		{Type: table.ColumnMeasure, Title: "cputime", Unit: "s"},
	}
	return &table.Table{
		Tools: []table.Tool{
			{Name: "cbmc", NiceName: "CBMC 5.95", Columns: cols},
			{Name: "esbmc", Columns: cols},
		},
		Rows: []table.Row{
			{
				HRef: "results/task1.yml",
				Results: []table.RunResult{
					{Category: "correct", Values: []*table.Cell{c("true"), c("1.5")}},
					{Category: "wrong", Values: []*table.Cell{c("false"), c("2.0")}},
				},
			},
			{
				HRef: "results/task2.yml",
				Results: []table.RunResult{
					{Category: "error", Values: []*table.Cell{c("TIMEOUT"), nil}},
					{Category: "error", Values: []*table.Cell{c("TIMEOUT"), nil}},
				},
			},
		},
	}
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	tbl := testTable()
	html, err := Generate("Report", tbl, tbl.Rows)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	for _, want := range []string{
		"<title>Report</title>",
		"CBMC 5.95",
		"cputime (s)",
		"results/task1.yml",
		"2 of 2 rows shown",
		"category-correct",
		"window.resultTable",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("report missing %q", want)
		}
	}
}

func TestGenerateFilteredSubset(t *testing.T) {
	t.Parallel()

	tbl := testTable()
	html, err := Generate("Report", tbl, tbl.Rows[:1])
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if !strings.Contains(html, "1 of 2 rows shown") {
		t.Fatalf("summary missing filtered count")
	}
	if strings.Contains(html, "results/task2.yml") {
		t.Fatalf("filtered-out row leaked into report")
	}
}

func TestGenerateEscapesRawValues(t *testing.T) {
	t.Parallel()

	tbl := testTable()
	tbl.Rows[0].Results[0].Values[0] = &table.Cell{Raw: "<script>alert(1)</script>"}
	html, err := Generate("Report", tbl, tbl.Rows)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Fatalf("raw value not escaped")
	}
}
