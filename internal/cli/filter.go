// internal/cli/filter.go
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/mwiater/kriterion/internal/loader"
	"github.com/mwiater/kriterion/internal/logging"
	"github.com/mwiater/kriterion/internal/table"
	"github.com/mwiater/kriterion/internal/util"
)

var (
	filterExprs  []string
	filterPreset string
	filterSort   string
	filterDesc   bool
	filterOut    string
)

var filterCmd = &cobra.Command{
	Use:   "filter [results.json]",
	Short: "Filter and sort the result table",
	Long: `Apply filter expressions to the result table and print the retained rows.

Expressions take the form the web UI's controls use: "tool_x_column=value"
for a tool column (value may be "min:max", a category name followed by a
space, "diff", or plain text) and "id=value" for the row identifier.
Presets are TOML files with [[filter]] entries.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, err := loadResults(args)
		if err != nil {
			return err
		}

		specs, err := collectSpecs()
		if err != nil {
			return err
		}

		matcher := table.BuildMatcher(specs)
		if DebugEnabled() {
			pp.Println(matcher)
		}
		rows := tbl.Apply(matcher)
		logging.LogFilter("apply", "", -1, fmt.Sprintf("%d/%d rows", len(rows), len(tbl.Rows)))

		if filterSort != "" {
			sortSpec, err := loader.ParseFilterArg(filterSort + "=")
			if err != nil {
				return fmt.Errorf("bad --sort column: %w", err)
			}
			rows = tbl.SortRows(rows, sortSpec.Tool, sortSpec.Column, filterDesc)
		}

		if filterOut != "" {
			data, err := json.MarshalIndent(table.Table{Tools: tbl.Tools, Rows: rows}, "", "  ")
			if err != nil {
				return err
			}
			if err := util.WriteFile(filterOut, data); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Printf("Wrote %d rows to %s\n", len(rows), filterOut)
			return nil
		}

		if JSONModeEnabled() {
			data, err := json.MarshalIndent(rows, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		printRows(tbl, rows)
		return nil
	},
}

// collectSpecs merges preset-file filters with command-line expressions,
// preserving arrival order (presets first).
func collectSpecs() ([]table.FilterSpec, error) {
	var specs []table.FilterSpec
	if filterPreset != "" {
		preset, err := loader.LoadPresets(filterPreset)
		if err != nil {
			return nil, err
		}
		specs = append(specs, preset...)
	}
	for _, expr := range filterExprs {
		spec, err := loader.ParseFilterArg(expr)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func printRows(tbl *table.Table, rows []table.Row) {
	summary := color.New(color.FgGreen, color.Bold)
	summary.Printf("%d of %d rows retained\n", len(rows), len(tbl.Rows))

	limit := util.Min(len(rows), getConfig().RowLimit())
	for _, row := range rows[:limit] {
		fmt.Printf("  %s", row.HRef)
		for ti, tool := range tbl.Tools {
			if ti >= len(row.Results) {
				continue
			}
			res := row.Results[ti]
			fmt.Printf("  [%s: %s]", tool.DisplayName(), res.Category)
		}
		fmt.Println()
	}
	if limit < len(rows) {
		fmt.Printf("  … %d more rows (raise maxRows in the config to see them)\n", len(rows)-limit)
	}
}

func init() {
	filterCmd.Flags().StringArrayVarP(&filterExprs, "filter", "f", nil, "filter expression, repeatable (e.g. cbmc_x_1=5:10)")
	filterCmd.Flags().StringVar(&filterPreset, "preset", "", "TOML file with [[filter]] entries")
	filterCmd.Flags().StringVar(&filterSort, "sort", "", "sort by column (e.g. cbmc_x_1)")
	filterCmd.Flags().BoolVar(&filterDesc, "desc", false, "sort descending")
	filterCmd.Flags().StringVarP(&filterOut, "output", "o", "", "write retained rows as JSON to this file")
	rootCmd.AddCommand(filterCmd)
}
