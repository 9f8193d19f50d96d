// Package app provides the entry point for the ja2cfg command-line
// application, a host around the engine options resolution pipeline.
package app

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/simonmarcel/ja2-stracciatella/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:               "ja2cfg",
	DisableAutoGenTag: true,
	Short:             "ja2cfg manages the engine settings file (ja2.json)",
	Long: `ja2cfg manages the per-user settings file of the engine (ja2.json).

It runs the same resolution pipeline the engine runs at startup: locate the
settings directory, create the settings file if it is missing, parse it,
overlay command-line switches and validate the result.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// Re-initialize so --debug takes effect
		logger.Initialize()
	},
	Run: func(cmd *cobra.Command, _ []string) {
		// If no subcommand is provided, print help
		if err := cmd.Help(); err != nil {
			logger.Errorf("Error displaying help: %v", err)
		}
	},
}

// NewRootCmd creates a new root command for the ja2cfg CLI.
func NewRootCmd() *cobra.Command {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		logger.Errorf("Error binding debug flag: %v", err)
	}

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
