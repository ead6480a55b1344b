package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/tally/internal/config"
	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadFile()
	if err != nil {
		return err
	}

	dir := cfg.General.DataDir
	locale := cfg.General.Locale
	sortField := cfg.Sort().Field
	sortOrder := cfg.Sort().Order
	themeName := cfg.Appearance.Theme

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, name := range theme.Names() {
		themeOpts = append(themeOpts, huh.NewOption(name, name))
	}
	sortOpts := make([]huh.Option[model.SortField], 0, len(model.SortFields))
	for _, f := range model.SortFields {
		sortOpts = append(sortOpts, huh.NewOption(string(f), f))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Data directory").
				Description("Where tally.db lives. Blank for "+config.DefaultDataDir()).
				Value(&dir),
			huh.NewInput().
				Title("Locale").
				Description("BCP 47 tag used to sort text, e.g. en-US or de-DE").
				Value(&locale).
				Validate(func(s string) error {
					if _, err := language.Parse(strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("not a language tag")
					}
					return nil
				}),
		).Title("Welcome to tally"),
		huh.NewGroup(
			huh.NewSelect[model.SortField]().
				Title("Default sort").
				Options(sortOpts...).
				Value(&sortField),
			huh.NewSelect[model.SortOrder]().
				Title("Default order").
				Options(
					huh.NewOption("Newest / largest first", model.Descending),
					huh.NewOption("Oldest / smallest first", model.Ascending),
				).
				Value(&sortOrder),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&themeName),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return err
	}

	cfg.General.DataDir = strings.TrimSpace(dir)
	cfg.General.Locale = strings.TrimSpace(locale)
	cfg.General.DefaultSort = string(sortField)
	cfg.General.DefaultOrder = string(sortOrder)
	cfg.Appearance.Theme = themeName

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `tally setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
