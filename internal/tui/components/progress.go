package components

import (
	"fmt"

	"github.com/theirongolddev/tally/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForPct returns green/yellow/orange/red for a 0-100 usage level.
func ColorForPct(pct float64) lipgloss.Color {
	t := theme.Active
	switch {
	case pct > 100:
		return t.Red
	case pct >= 90:
		return t.Orange
	case pct >= 70:
		return t.Yellow
	default:
		return t.Green
	}
}

// BudgetBar renders a labelled usage bar. pct is 0-100 and may exceed 100,
// in which case the bar is full and the percentage is shown in red.
func BudgetBar(label, colorToken string, pct float64, labelW, barWidth int) string {
	t := theme.Active

	fill := pct / 100
	if fill < 0 {
		fill = 0
	}
	if fill > 1 {
		fill = 1
	}

	bar := progress.New(
		progress.WithSolidFill(string(ColorForPct(pct))),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	dotStyle := lipgloss.NewStyle().Foreground(t.Token(colorToken)).Background(t.Surface)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(ColorForPct(pct)).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return dotStyle.Render("●") +
		spaceStyle.Render(" ") +
		labelStyle.Render(fmt.Sprintf("%-*s", labelW, truncate(label, labelW))) +
		spaceStyle.Render(" ") +
		bar.ViewAs(fill) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%4.0f%%", pct))
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}
