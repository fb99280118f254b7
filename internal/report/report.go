// internal/report/report.go
// Package report renders a standalone HTML page for a (possibly filtered)
// benchmark result table.
package report

import (
	"bytes"
	"encoding/json"
	"html/template"

	"github.com/mwiater/kriterion/internal/table"
)

// PageData is the view model handed to the report template.
type PageData struct {
	Title     string
	Tools     []ToolHeader
	Rows      []RowView
	Kept      int
	Total     int
	TableJSON template.JS
}

// ToolHeader describes one tool's column group for the header rows.
type ToolHeader struct {
	Name    string
	Color   string
	Columns []string
}

// RowView is one rendered table row: the case link plus the flattened
// cell texts across all tools.
type RowView struct {
	HRef  string
	Cells []CellView
}

// CellView is one rendered cell with its result category for styling.
type CellView struct {
	Text     string
	Category string
}

// Generate renders the report page for the filtered rows of a table. The
// full filtered dataset is also embedded as JSON so the page's own
// controls can refine it client-side without another round trip.
func Generate(title string, t *table.Table, rows []table.Row) (string, error) {
	data := PageData{
		Title: title,
		Kept:  len(rows),
		Total: len(t.Rows),
	}

	for i, tool := range t.Tools {
		header := ToolHeader{
			Name:  tool.DisplayName(),
			Color: string(table.SeriesColor(i)),
		}
		for _, col := range tool.Columns {
			header.Columns = append(header.Columns, table.FormatTitle(col))
		}
		data.Tools = append(data.Tools, header)
	}

	for _, row := range rows {
		view := RowView{HRef: row.HRef}
		for ti, tool := range t.Tools {
			var res table.RunResult
			if ti < len(row.Results) {
				res = row.Results[ti]
			}
			for ci := range tool.Columns {
				cv := CellView{Category: res.Category}
				if cell := res.Value(ci); cell != nil {
					cv.Text = cell.Raw
				}
				view.Cells = append(view.Cells, cv)
			}
		}
		data.Rows = append(data.Rows, view)
	}

	payload, err := json.Marshal(table.Table{Tools: t.Tools, Rows: rows})
	if err != nil {
		return "", err
	}
	data.TableJSON = template.JS(payload)

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var pageTemplate = template.Must(template.New("result-table").Parse(pageTemplateHTML))

const pageTemplateHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  <style>
    body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 2rem; }
    table { border-collapse: collapse; width: 100%; }
    th, td { border: 1px solid #ddd; padding: 4px 8px; font-size: 0.85rem; }
    th { text-align: left; }
    .summary { color: #555; margin-bottom: 1rem; }
    td.category-correct { background: #e6f4ea; }
    td.category-wrong { background: #fce8e6; }
    td.category-error { background: #fef7e0; }
  </style>
</head>
<body>
  <h1>{{.Title}}</h1>
  <p class="summary">{{.Kept}} of {{.Total}} rows shown</p>
  <table>
    <thead>
      <tr>
        <th rowspan="2">Task</th>
        {{range .Tools}}<th colspan="{{len .Columns}}" style="border-bottom: 3px solid {{.Color}}">{{.Name}}</th>{{end}}
      </tr>
      <tr>
        {{range .Tools}}{{range .Columns}}<th>{{.}}</th>{{end}}{{end}}
      </tr>
    </thead>
    <tbody>
      {{range .Rows}}
      <tr>
        <td><a href="{{.HRef}}">{{.HRef}}</a></td>
        {{range .Cells}}<td class="category-{{.Category}}">{{.Text}}</td>{{end}}
      </tr>
      {{end}}
    </tbody>
  </table>
  <script>
    window.resultTable = {{.TableJSON}};
  </script>
</body>
</html>
`
