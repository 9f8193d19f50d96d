package app

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonmarcel/ja2-stracciatella/pkg/cli"
	"github.com/simonmarcel/ja2-stracciatella/pkg/config"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [engine options]",
	Short: "Resolve the effective engine options",
	Long: `Run the full resolution pipeline: settings file plus the given engine
options, exactly as the engine would at startup. Prints the resolved record.

Example:
  ja2cfg resolve --res 1024x768 --fullscreen`,
	// The arguments belong to the engine option surface, not to ja2cfg.
	DisableFlagParsing: true,
	RunE:               resolveCmdFunc,
}

func resolveCmdFunc(_ *cobra.Command, args []string) error {
	opts, err := config.ResolveOptions(append([]string{"ja2cfg"}, args...))
	if err != nil {
		return err
	}

	if opts.ShowHelp {
		fmt.Print(cli.UsageText())
		return nil
	}

	data, err := json.MarshalIndent(opts, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode options: %w", err)
	}

	fmt.Println(string(data))
	fmt.Printf("Settings home: %s\n", opts.StracciatellaHome)

	if opts.RunUnitTests || opts.RunEditor {
		fmt.Printf("Session flags: unittests=%v editor=%v\n", opts.RunUnitTests, opts.RunEditor)
	}

	return nil
}
