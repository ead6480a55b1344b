package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/theirongolddev/tally/internal/config"
	"github.com/theirongolddev/tally/internal/store"

	"github.com/spf13/cobra"
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
	cfg := appCfg

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Database:      %s\n", filepath.Join(dataDir(), store.DBName))
	fmt.Printf("    Locale:        %s\n", cfg.General.Locale)
	sortCfg := cfg.Sort()
	fmt.Printf("    Default sort:  %s %s\n", sortCfg.Field, sortCfg.Order)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level:  %s\n", cfg.Log.Level)
	fmt.Printf("    Format: %s\n", cfg.Log.Format)
	fmt.Println()

	fmt.Println("  [Categories]")
	if len(cfg.Categories) == 0 {
		fmt.Println("    built-in defaults")
	}
	for _, c := range cfg.CategoryList() {
		fmt.Printf("    %-16s %s\n", c.Name, c.Color)
	}
	fmt.Println()

	fmt.Println("  Run `tally setup` to reconfigure.")
	return nil
}
