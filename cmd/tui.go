package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/theirongolddev/tally/internal/logging"
	"github.com/theirongolddev/tally/internal/tui"
	"github.com/theirongolddev/tally/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	theme.SetActive(appCfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	// stderr belongs to the alt screen while the program runs
	level := appCfg.Log.Level
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	_, closer, err := logging.SetupFile(filepath.Join(dataDir(), "tally.log"), level, appCfg.Log.Format)
	if err != nil {
		return err
	}
	defer closer.Close()

	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	p := tea.NewProgram(tui.NewApp(s.state, s.mirror), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return s.saved()
}
