// internal/tui/view.go
// Package tui provides the interactive Bubble Tea view over a benchmark
// result table, with live filtering on top of the matcher pipeline.
package tui

import (
	"fmt"
	"strings"

	btable "github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/kriterion/internal/loader"
	"github.com/mwiater/kriterion/internal/table"
	"github.com/mwiater/kriterion/internal/util"
)

// viewState represents the current input mode of the view.
type viewState int

const (
	// viewBrowse is the state where the user navigates the table.
	viewBrowse viewState = iota
	// viewFilterInput is the state where the user types a filter expression.
	viewFilterInput
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Model is the Bubble Tea model for the result table view.
type Model struct {
	data     *table.Table
	specs    []table.FilterSpec
	filtered []table.Row
	grid     btable.Model
	input    textinput.Model
	state    viewState
	errMsg   string
	width    int
	height   int
}

// NewModel builds the view over a loaded table, pre-applying any initial
// filter specifications.
func NewModel(data *table.Table, specs []table.FilterSpec) *Model {
	in := textinput.New()
	in.Placeholder = "tool_x_column=value or id=value"
	in.Prompt = "Filter: "
	in.CharLimit = 128

	m := &Model{
		data:  data,
		specs: specs,
		input: in,
	}
	m.grid = btable.New(
		btable.WithColumns(m.columns()),
		btable.WithFocused(true),
	)
	m.refilter()
	return m
}

// columns flattens the table's tool column groups into grid headers, one
// leading column for the case identifier.
func (m *Model) columns() []btable.Column {
	cols := []btable.Column{{Title: "Task", Width: 28}}
	for ti, tool := range m.data.Tools {
		style := lipgloss.NewStyle().Foreground(table.SeriesColor(ti))
		for ci, col := range tool.Columns {
			title := style.Render(fmt.Sprintf("%s:%s", tool.DisplayName(), table.FormatTitle(col)))
			samples := make([]string, 0, len(m.data.Rows))
			for _, row := range m.data.Rows {
				if cell := m.data.CellFor(row, tool.Name, ci); cell != nil {
					samples = append(samples, cell.Raw)
				}
			}
			cols = append(cols, btable.Column{
				Title: title,
				Width: table.ColumnWidth(tool.DisplayName()+":"+col.Title, samples),
			})
		}
	}
	return cols
}

// refilter recompiles the matcher from the current specs and rebuilds the
// grid rows. Each filter change triggers a full fresh pass; there is no
// incremental update.
func (m *Model) refilter() {
	matcher := table.BuildMatcher(m.specs)
	m.filtered = m.data.Apply(matcher)

	rows := make([]btable.Row, 0, len(m.filtered))
	for _, row := range m.filtered {
		grid := []string{util.TruncateRunes(row.HRef, 28)}
		for ti, tool := range m.data.Tools {
			var res table.RunResult
			if ti < len(row.Results) {
				res = row.Results[ti]
			}
			for ci := range tool.Columns {
				text := ""
				if cell := res.Value(ci); cell != nil {
					text = cell.Raw
				}
				grid = append(grid, text)
			}
		}
		rows = append(rows, grid)
	}
	m.grid.SetRows(rows)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.grid.SetHeight(util.Max(3, msg.Height-6))
		return m, nil

	case tea.KeyMsg:
		if m.state == viewFilterInput {
			return m.updateFilterInput(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "/":
			m.state = viewFilterInput
			m.errMsg = ""
			m.input.SetValue("")
			m.input.Focus()
			return m, textinput.Blink
		case "r":
			m.specs = nil
			m.errMsg = ""
			m.refilter()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.grid, cmd = m.grid.Update(msg)
	return m, cmd
}

// updateFilterInput handles keys while the filter expression is being typed.
func (m *Model) updateFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		expr := strings.TrimSpace(m.input.Value())
		m.state = viewBrowse
		m.input.Blur()
		if expr == "" {
			return m, nil
		}
		spec, err := loader.ParseFilterArg(expr)
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.specs = append(m.specs, spec)
		m.errMsg = ""
		m.refilter()
		return m, nil
	case "esc":
		m.state = viewBrowse
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("kriterion"))
	b.WriteString("\n")
	b.WriteString(m.grid.View())
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("%d of %d rows · %d filters · / filter · r reset · q quit",
		len(m.filtered), len(m.data.Rows), len(m.specs))))
	if m.state == viewFilterInput {
		b.WriteString("\n")
		b.WriteString(m.input.View())
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}
	return b.String()
}

// Run starts the interactive view and blocks until the user quits.
func Run(data *table.Table, specs []table.FilterSpec) error {
	p := tea.NewProgram(NewModel(data, specs), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
