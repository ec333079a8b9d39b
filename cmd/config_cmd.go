package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/the-realgabriel/campus-companion-2/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Display name: %s\n", cfg.General.DisplayName)
	fmt.Printf("    Currency:     %s\n", cfg.General.Currency)
	fmt.Printf("    Data dir:     %s\n", config.DataDir(cfg))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `companion setup` to reconfigure.")
	return nil
}
