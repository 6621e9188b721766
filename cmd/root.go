// Package cmd implements the teleconf command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nextlevelbuilder/teleconf/pkg/teleconf"
)

var configFlag string

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "teleconf",
		Short: "Collect and persist Telegram credentials",
		Long: `teleconf keeps the credentials a Telegram application needs in a small
JSON config file. Fields already stored are reused; missing ones are
collected with interactive prompts and saved for the next run.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configFlag, "config", "c", teleconf.DefaultConfigFile, "path of the config file")

	root.AddCommand(setupCmd())
	root.AddCommand(configCmd())
	root.AddCommand(verifyCmd())
	return root
}

// resolveConfigPath returns the config file the current invocation
// operates on.
func resolveConfigPath() string {
	if configFlag == "" {
		return teleconf.DefaultConfigFile
	}
	return configFlag
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
