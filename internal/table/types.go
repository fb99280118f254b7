// internal/table/types.go
// Package table implements the in-memory model for benchmark result tables
// and the filtering, statistics, and sorting logic that operates on it. One
// row represents a single benchmark case; each tool that executed the case
// contributes one result per row, aligned with the tool's column layout.
package table

// ColumnType classifies what kind of values a column holds.
type ColumnType string

const (
	// ColumnStatus marks the single per-tool column holding the run status.
	ColumnStatus ColumnType = "status"
	// ColumnText marks a free-text column.
	ColumnText ColumnType = "text"
	// ColumnCount marks an integer-valued measurement column.
	ColumnCount ColumnType = "count"
	// ColumnMeasure marks a continuous measurement column.
	ColumnMeasure ColumnType = "measure"
)

// Column describes a single column within a tool's column group.
type Column struct {
	Type  ColumnType `json:"type"`
	Title string     `json:"title"`
	Unit  string     `json:"unit,omitempty"`
}

// Tool is one benchmark-executing configuration whose results occupy one
// column group in the table.
type Tool struct {
	Name     string   `json:"name"`
	Date     string   `json:"date,omitempty"`
	NiceName string   `json:"niceName,omitempty"`
	Columns  []Column `json:"columns"`
}

// DisplayName returns the tool's presentation name, falling back to its
// canonical name when no nice name is configured.
func (t Tool) DisplayName() string {
	if t.NiceName != "" {
		return t.NiceName
	}
	return t.Name
}

// Cell wraps a single raw cell value. Raw is either numeric-as-text or free
// text; an absent cell is represented by a nil *Cell.
type Cell struct {
	Raw string `json:"raw"`
}

// RunResult holds one tool's outcome for one row: the outcome category
// (e.g. "correct", "wrong", "error") and the cell values aligned with the
// tool's column layout. A nil entry means the tool reported no value for
// that column.
type RunResult struct {
	Category string  `json:"category"`
	Values   []*Cell `json:"values"`
}

// Value returns the cell at the given column index, or nil when the column
// is absent for this result.
func (r RunResult) Value(col int) *Cell {
	if col < 0 || col >= len(r.Values) {
		return nil
	}
	return r.Values[col]
}

// Row is one benchmark case: an identifier/link plus one result per tool,
// ordered to match the table's tool sequence.
type Row struct {
	HRef    string      `json:"href"`
	Results []RunResult `json:"results"`
}

// Table is the full result document supplied once per session by the loader.
// It is treated as immutable by every operation in this package. Meta holds
// the document's free-form header block (title, generator version, dates)
// as decoded JSON.
type Table struct {
	Tools []Tool         `json:"tools"`
	Rows  []Row          `json:"rows"`
	Meta  map[string]any `json:"meta,omitempty"`
}

// toolIndex returns the position of the named tool, or -1 if unknown.
func (t *Table) toolIndex(name string) int {
	for i, tool := range t.Tools {
		if tool.Name == name {
			return i
		}
	}
	return -1
}

// CellFor resolves the cell a filter specification points at for the given
// row. It returns nil when the tool is unknown, the row carries no result
// for it, or the column is absent.
func (t *Table) CellFor(row Row, tool string, col int) *Cell {
	ti := t.toolIndex(tool)
	if ti < 0 || ti >= len(row.Results) {
		return nil
	}
	return row.Results[ti].Value(col)
}
