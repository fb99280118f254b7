// internal/table/format.go
package table

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/kriterion/internal/util"
)

// FormatTitle renders a column header as a single line, appending the unit
// in parentheses when one is declared.
func FormatTitle(c Column) string {
	if c.Unit == "" {
		return c.Title
	}
	return fmt.Sprintf("%s (%s)", c.Title, c.Unit)
}

// FormatTitleLines renders a column header as one or two lines: the title,
// plus a parenthesized unit line when one is declared.
func FormatTitleLines(c Column) []string {
	if c.Unit == "" {
		return []string{c.Title}
	}
	return []string{c.Title, fmt.Sprintf("(%s)", c.Unit)}
}

// seriesPalette is the fixed 21-color palette used for discrete series
// coloring in the TUI and the HTML report.
var seriesPalette = []lipgloss.Color{
	"#1f77b4", "#aec7e8", "#ff7f0e", "#ffbb78", "#2ca02c",
	"#98df8a", "#d62728", "#ff9896", "#9467bd", "#c5b0d5",
	"#8c564b", "#c49c94", "#e377c2", "#f7b6d2", "#7f7f7f",
	"#c7c7c7", "#bcbd22", "#dbdb8d", "#17becf", "#9edae5",
	"#393b79",
}

// SeriesColor returns the palette entry for the given series index,
// wrapping around when the index exceeds the palette size.
func SeriesColor(i int) lipgloss.Color {
	if i < 0 {
		i = -i
	}
	return seriesPalette[i%len(seriesPalette)]
}

// PaletteSize is the number of distinct series colors.
func PaletteSize() int { return len(seriesPalette) }

const (
	minColumnWidth = 6
	maxColumnWidth = 30
)

// ColumnWidth picks a display width for a column from its header and a
// sample of cell values, clamped to a sane range.
func ColumnWidth(header string, samples []string) int {
	w := len([]rune(header))
	for _, s := range samples {
		if n := len([]rune(s)); n > w {
			w = n
		}
	}
	return util.Max(minColumnWidth, util.Min(w, maxColumnWidth))
}
