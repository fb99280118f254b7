// internal/cli/show.go
package cli

import (
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show application information",
}

func init() {
	rootCmd.AddCommand(showCmd)
}
