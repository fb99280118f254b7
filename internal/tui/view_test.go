// internal/tui/view_test.go
package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwiater/kriterion/internal/table"
)

func testData() *table.Table {
	c := func(raw string) *table.Cell { return &table.Cell{Raw: raw} }
	cols := []table.Column{
		{Type: table.ColumnStatus, Title: "status"},
		{Type: table.ColumnMeasure, Title: "cputime", Unit: "s"},
	}
	return &table.Table{
		Tools: []table.Tool{{Name: "cbmc", Columns: cols}},
		Rows: []table.Row{
			{HRef: "results/task1.yml", Results: []table.RunResult{
				{Category: "correct", Values: []*table.Cell{c("true"), c("3")}},
			}},
			{HRef: "results/task2.yml", Results: []table.RunResult{
				{Category: "error", Values: []*table.Cell{c("TIMEOUT"), c("12")}},
			}},
		},
	}
}

// TestUpdate verifies the model's state transitions for quit keys, window
// sizing, and the filter input round trip.
func TestUpdate(t *testing.T) {
	m := NewModel(testData(), nil)

	if m.state != viewBrowse {
		t.Errorf("Expected initial state to be viewBrowse, got %v", m.state)
	}
	if len(m.filtered) != 2 {
		t.Errorf("Expected all rows before filtering, got %d", len(m.filtered))
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Error("Expected a quit command, but got nil")
	}

	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = newModel.(*Model)
	if m.width != 100 || m.height != 40 {
		t.Errorf("Expected width/height 100/40, got %d/%d", m.width, m.height)
	}

	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	m = newModel.(*Model)
	if m.state != viewFilterInput {
		t.Errorf("Expected state viewFilterInput, got %v", m.state)
	}

	m.input.SetValue("cbmc_v_1=5:")
	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = newModel.(*Model)
	if m.state != viewBrowse {
		t.Errorf("Expected state viewBrowse after enter, got %v", m.state)
	}
	if len(m.filtered) != 1 || m.filtered[0].HRef != "results/task2.yml" {
		t.Errorf("Expected filter to keep task2, got %+v", m.filtered)
	}

	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = newModel.(*Model)
	if len(m.filtered) != 2 {
		t.Errorf("Expected reset to restore all rows, got %d", len(m.filtered))
	}
}

func TestUpdateRejectsMalformedFilter(t *testing.T) {
	m := NewModel(testData(), nil)

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	m = newModel.(*Model)
	m.input.SetValue("not-a-filter")
	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = newModel.(*Model)

	if m.errMsg == "" {
		t.Error("Expected an error message for a malformed filter expression")
	}
	if len(m.specs) != 0 {
		t.Errorf("Malformed filter must not be recorded, got %+v", m.specs)
	}
	if !strings.Contains(m.View(), m.errMsg) {
		t.Error("Expected the error message to be rendered")
	}
}

func TestViewShowsCounts(t *testing.T) {
	m := NewModel(testData(), []table.FilterSpec{{Tool: "cbmc", Column: 1, Value: "5:"}})
	view := m.View()
	if !strings.Contains(view, "1 of 2 rows") {
		t.Errorf("Expected row counts in view, got: %s", view)
	}
}
