package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/vonsh/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective settings",
	Long: `Print the settings vonsh would start with and where they come from.
Changes made in the Options menu are saved to the printed path.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	settings, src, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	data, err := settings.Marshal()
	if err != nil {
		return err
	}

	fmt.Printf("# source: %s\n", src.Kind)
	fmt.Printf("# saved to: %s\n", src.SavePath())
	fmt.Print(string(data))
	return nil
}
