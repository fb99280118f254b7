// internal/cli/report.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwiater/kriterion/internal/loader"
	"github.com/mwiater/kriterion/internal/report"
	"github.com/mwiater/kriterion/internal/table"
	"github.com/mwiater/kriterion/internal/util"
)

var (
	reportPreset string
	reportOut    string
)

var reportCmd = &cobra.Command{
	Use:   "report [results.json]",
	Short: "Render the result table as a standalone HTML page",
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, err := loadResults(args)
		if err != nil {
			return err
		}

		var specs []table.FilterSpec
		if reportPreset != "" {
			specs, err = loader.LoadPresets(reportPreset)
			if err != nil {
				return err
			}
		}
		rows := tbl.Apply(table.BuildMatcher(specs))

		// A title in the document's meta block wins over the config default.
		title := getConfig().Title()
		if s, ok := util.PathOr("", tbl.Meta, "title").(string); ok && s != "" {
			title = s
		}

		html, err := report.Generate(title, tbl, rows)
		if err != nil {
			return fmt.Errorf("render report: %w", err)
		}
		if err := util.WriteFile(reportOut, []byte(html)); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Printf("Wrote %s (%d of %d rows)\n", reportOut, len(rows), len(tbl.Rows))
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportPreset, "preset", "", "TOML file with [[filter]] entries to apply")
	reportCmd.Flags().StringVarP(&reportOut, "output", "o", "report.html", "output path for the HTML page")
	rootCmd.AddCommand(reportCmd)
}
