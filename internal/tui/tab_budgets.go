package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/tally/internal/cli"
	"github.com/theirongolddev/tally/internal/tui/components"
	"github.com/theirongolddev/tally/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderBudgetsTab(cw int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)

	if len(a.view.Budgets) == 0 {
		return components.ContentCard("Budgets", a.mutedLine("No budgets. Press a to add one."), cw)
	}

	labelW := 16
	amtW := 26
	barW := max(innerW-labelW-amtW-12, 8)

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	overStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface).Bold(true)
	cursorStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	lines := make([]string, 0, len(a.view.Budgets)*2)
	for i, u := range a.view.Budgets {
		marker := spaceStyle.Render("  ")
		if i == a.budgetCursor {
			marker = cursorStyle.Render("▸ ")
		}

		amounts := fmt.Sprintf("%s / %s", cli.FormatAmount(u.Spent), cli.FormatAmount(u.Budget.Limit))
		line := marker +
			components.BudgetBar(u.Budget.Category, u.Budget.Color, u.Percent, labelW, barW) +
			spaceStyle.Render(" ") +
			mutedStyle.Render(fmt.Sprintf("%*s", amtW, amounts))
		lines = append(lines, line)

		var status string
		if u.Over() {
			status = overStyle.Render(fmt.Sprintf("    over by %s", cli.FormatAmount(u.Spent.Sub(u.Budget.Limit))))
		} else {
			status = mutedStyle.Render(fmt.Sprintf("    %s left", cli.FormatAmount(u.Remaining)))
		}
		period := fmt.Sprintf("  %s, %s to %s", u.Budget.Period,
			u.PeriodStart.Format("Jan 02"), u.PeriodEnd.AddDate(0, 0, -1).Format("Jan 02"))
		lines = append(lines, status+mutedStyle.Render(period))
	}

	unbudgeted := a.state.Registry().UnbudgetedCategories()
	if len(unbudgeted) > 0 {
		names := make([]string, len(unbudgeted))
		for i, c := range unbudgeted {
			names[i] = c.Name
		}
		lines = append(lines, "", mutedStyle.Render(cli.Truncate("Without a budget: "+strings.Join(names, ", "), innerW)))
	}

	return components.ContentCard("Budgets (current period)", strings.Join(lines, "\n"), cw)
}
