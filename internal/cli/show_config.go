// internal/cli/show_config.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// showConfigCmd prints the effective configuration after the JSON config
// has been loaded and overridden by flags.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON configs are loaded properly and overriden by flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		file := viper.ConfigFileUsed()
		if file == "" {
			fmt.Println("No config file loaded (using defaults).")
		} else {
			fmt.Printf("Config file: %s\n\n", file)
		}

		cfg := getConfig()
		fmt.Println("Current configuration:")
		fmt.Printf("  Debug:        %v\n", viper.GetBool("debug"))
		fmt.Printf("  JSON Mode:    %v\n", viper.GetBool("jsonMode"))
		fmt.Printf("  Results:      %s\n", viper.GetString("results"))
		fmt.Printf("  Log File:     %s\n", viper.GetString("logFile"))
		fmt.Printf("  Report Title: %s\n", cfg.Title())
		fmt.Printf("  Max Rows:     %d\n", cfg.RowLimit())
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}
