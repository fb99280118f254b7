// internal/cli/root.go
// Package cli wires the kriterion commands: statistics extraction,
// filtering, the interactive view, and HTML report generation over a
// benchmark result table.
package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/kriterion/internal/appconfig"
	"github.com/mwiater/kriterion/internal/loader"
	"github.com/mwiater/kriterion/internal/logging"
	"github.com/mwiater/kriterion/internal/table"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
)

var rootCmd = &cobra.Command{
	Use:   "kriterion",
	Short: "kriterion — filter, sort, and inspect benchmark result tables",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 1) Load config (file or defaults)
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		// 2) If user did NOT set a flag, copy the config value into the flag so
		//    both pflags and viper reflect the same, final value.
		for _, name := range []string{"debug", "jsonMode"} {
			if !cmd.Flags().Changed(name) {
				val := viper.GetBool(name)
				_ = cmd.Flags().Set(name, strconv.FormatBool(val))
			}
		}

		// 3) Materialize the fully merged configuration into currentConfig
		//    (flags > config > defaults). This gives other packages a stable snapshot.
		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		currentConfig = &cfg

		return logging.Init(cfg.LogFile)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.Close()
	},
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug output")
	rootCmd.PersistentFlags().Bool("jsonMode", false, "emit JSON instead of formatted text")
	rootCmd.PersistentFlags().String("results", "", "path to the benchmark result document")
	rootCmd.PersistentFlags().String("logFile", "", "append log output to this file")

	// Bind flags to Viper keys (flags override config)
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("jsonMode", rootCmd.PersistentFlags().Lookup("jsonMode"))
	_ = viper.BindPFlag("results", rootCmd.PersistentFlags().Lookup("results"))
	_ = viper.BindPFlag("logFile", rootCmd.PersistentFlags().Lookup("logFile"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// ensureConfigLoaded reads the config and sets safe defaults.
func ensureConfigLoaded() error {
	viper.SetDefault("debug", false)
	viper.SetDefault("jsonMode", false)
	viper.SetDefault("results", "")
	viper.SetDefault("logFile", "")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No file: fine, we'll use defaults/flags
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// getConfig returns the loaded application configuration for other packages.
func getConfig() *appconfig.Config {
	if currentConfig == nil {
		return &appconfig.Config{}
	}
	return currentConfig
}

// DebugEnabled reflects the merged Viper state for the debug flag.
func DebugEnabled() bool { return viper.GetBool("debug") }

// JSONModeEnabled reflects the merged Viper state for the jsonMode flag.
func JSONModeEnabled() bool { return viper.GetBool("jsonMode") }

// loadResults resolves the result document path from the positional
// argument, the --results flag, or the config, in that order, and loads it.
func loadResults(args []string) (*table.Table, error) {
	path := viper.GetString("results")
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return nil, fmt.Errorf("no result document: pass a path or set results in the config")
	}
	return loader.LoadResults(path)
}
