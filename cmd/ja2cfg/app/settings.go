package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonmarcel/ja2-stracciatella/pkg/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the settings directory and default settings file",
	Long: `Create the settings directory and, when no settings file exists yet,
write the default template. An existing file is never touched.`,
	RunE: initCmdFunc,
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file path",
	RunE:  pathCmdFunc,
}

func initCmdFunc(_ *cobra.Command, _ []string) error {
	home, err := config.FindStracciatellaHome()
	if err != nil {
		return err
	}

	store := config.NewStore(home)
	if err := store.EnsureExistence(); err != nil {
		return err
	}

	fmt.Printf("Settings file: %s\n", store.Path())
	return nil
}

func pathCmdFunc(_ *cobra.Command, _ []string) error {
	home, err := config.FindStracciatellaHome()
	if err != nil {
		return err
	}

	fmt.Println(config.NewStore(home).Path())
	return nil
}
