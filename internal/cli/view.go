// internal/cli/view.go
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/kriterion/internal/loader"
	"github.com/mwiater/kriterion/internal/table"
	"github.com/mwiater/kriterion/internal/tui"
)

var viewPreset string

var viewCmd = &cobra.Command{
	Use:   "view [results.json]",
	Short: "Browse the result table interactively",
	Long:  `Open the result table in an interactive terminal view with live filtering. Press / to add a filter expression, r to reset, q to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, err := loadResults(args)
		if err != nil {
			return err
		}
		var specs []table.FilterSpec
		if viewPreset != "" {
			specs, err = loader.LoadPresets(viewPreset)
			if err != nil {
				return err
			}
		}
		return tui.Run(tbl, specs)
	},
}

func init() {
	viewCmd.Flags().StringVar(&viewPreset, "preset", "", "TOML file with [[filter]] entries to pre-apply")
	rootCmd.AddCommand(viewCmd)
}
