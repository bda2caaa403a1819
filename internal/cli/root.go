// Package cli is the ledgerctl command tree: pick a transport, then a
// device command. Protocol failures surface as non-zero exits.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danmuck/ledgerctl/internal/config"
	"github.com/danmuck/ledgerctl/internal/logging"
	"github.com/danmuck/ledgerctl/internal/output"
)

var (
	cfgFile      string
	logLevel     string
	outputFormat string

	// Shared state set during PersistentPreRunE.
	cfg       config.CLIConfig
	formatter output.Formatter
)

var rootCmd = &cobra.Command{
	Use:           "ledgerctl",
	Short:         "Query a hardware wallet over TCP, USB HID or BLE",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.ConfigureRuntime()
		if logLevel != "" && !logging.SetLevel(logLevel) {
			return fmt.Errorf("unknown log level %q", logLevel)
		}

		var err error
		cfg, err = config.LoadCLIConfig(cfgFile)
		if err != nil {
			return err
		}

		formatter = output.NewFormatter(outputFormat)
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a TOML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "level", "", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: table, json, yaml (default \"table\")")
}
