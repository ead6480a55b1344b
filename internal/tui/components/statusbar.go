package components

import (
	"strings"

	"github.com/theirongolddev/tally/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left and
// the latest status message on the right.
func RenderStatusBar(width int, hints, message string, isErr bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	msgStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	if isErr {
		msgStyle = msgStyle.Foreground(t.Red).Bold(true)
	}

	left := " " + hints
	right := ""
	if message != "" {
		right = message + " "
	}

	padding := max(width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	bar := left + strings.Repeat(" ", padding)

	return style.Render(bar + msgStyle.Render(right))
}
