package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/simonmarcel/ja2-stracciatella/pkg/config"
	"github.com/simonmarcel/ja2-stracciatella/pkg/engine"
)

var showTable bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored settings",
	Long: `Parse the settings file and print its effective content, including the
defaults applied for keys that are absent from the file.`,
	RunE: showCmdFunc,
}

func init() {
	showCmd.Flags().BoolVar(&showTable, "table", false, "Render the settings as a table")
}

func showCmdFunc(_ *cobra.Command, _ []string) error {
	home, err := config.FindStracciatellaHome()
	if err != nil {
		return err
	}

	store := config.NewStore(home)
	opts, err := store.Parse()
	if err != nil {
		return err
	}

	if showTable {
		return renderOptionsTable(opts)
	}

	data, err := json.MarshalIndent(opts, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode options: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// renderOptionsTable prints the persisted fields as a two-column table.
func renderOptionsTable(opts *engine.Options) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Options(
		tablewriter.WithHeader([]string{"Setting", "Value"}),
	)

	rows := [][]string{
		{"data_dir", opts.VanillaDataDir},
		{"mods", fmt.Sprintf("%v", opts.Mods)},
		{"res", opts.Resolution.String()},
		{"resversion", opts.ResourceVersion.String()},
		{"fullscreen", strconv.FormatBool(opts.StartInFullscreen)},
		{"debug", strconv.FormatBool(opts.StartInDebugMode)},
		{"nosound", strconv.FormatBool(opts.StartWithoutSound)},
	}
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}
