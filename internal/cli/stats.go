// internal/cli/stats.go
package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/mwiater/kriterion/internal/table"
)

var statsCmd = &cobra.Command{
	Use:   "stats [results.json]",
	Short: "Show per-tool filterable column statistics",
	Long:  `Scan the result table once and print, per tool, the observed categories, status values, distinct text values, and numeric ranges that filter controls are populated from.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, err := loadResults(args)
		if err != nil {
			return err
		}

		stats := table.ExtractFilterableData(tbl)
		if DebugEnabled() {
			pp.Println(stats)
		}
		if JSONModeEnabled() {
			data, err := json.MarshalIndent(stats, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		printStats(stats)
		return nil
	},
}

func printStats(stats []table.ToolStats) {
	toolHeader := color.New(color.FgCyan, color.Bold)
	colTitle := color.New(color.FgYellow)

	for _, ts := range stats {
		toolHeader.Printf("%s\n", ts.Name)
		for _, cs := range ts.Columns {
			colTitle.Printf("  %s (%s)\n", cs.Title, cs.Type)
			switch cs.Type {
			case table.ColumnStatus:
				fmt.Printf("    categories: %s\n", strings.Join(trimMarkers(cs.Categories), ", "))
				fmt.Printf("    statuses:   %s\n", strings.Join(cs.Statuses, ", "))
			case table.ColumnText:
				fmt.Printf("    values: %s\n", strings.Join(cs.Distinct, ", "))
			default:
				if cs.HasRange {
					fmt.Printf("    range: [%v, %v]\n", cs.Min, cs.Max)
				} else {
					fmt.Printf("    range: (no numeric values)\n")
				}
			}
		}
	}
}

// trimMarkers strips the category convention marker for display.
func trimMarkers(categories []string) []string {
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = strings.TrimSuffix(c, table.CategoryMarker)
	}
	return out
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
