package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/tally/internal/cli"
	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/tui/components"
	"github.com/theirongolddev/tally/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	s := a.view.Summary
	var b strings.Builder

	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Total", Value: cli.FormatAmount(s.Total), Hint: a.filterHint()},
		{Label: "Expenses", Value: cli.FormatCount(s.Count)},
		{Label: "Average", Value: cli.FormatAmount(s.Average)},
		{Label: "Largest", Value: cli.FormatAmount(s.Max)},
	}, cw))
	b.WriteString("\n")

	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Budgets", a.renderBudgetBars(components.CardInnerWidth(cw)), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("By Category", a.renderCategoryBars(components.CardInnerWidth(cw)), cw))
		return b.String()
	}

	widths := components.LayoutRow(cw, 2)
	b.WriteString(components.CardRow([]string{
		components.ContentCard("Budgets", a.renderBudgetBars(components.CardInnerWidth(widths[0])), widths[0]),
		components.ContentCard("By Category", a.renderCategoryBars(components.CardInnerWidth(widths[1])), widths[1]),
	}))
	return b.String()
}

func (a App) filterHint() string {
	if a.view.Filter.IsZero() {
		return "all time"
	}
	return "filtered"
}

// renderBudgetBars renders one usage bar per budget for the current period.
func (a App) renderBudgetBars(innerW int) string {
	if len(a.view.Budgets) == 0 {
		return a.mutedLine("No budgets. Add one on the Budgets tab.")
	}

	labelW := 0
	for _, u := range a.view.Budgets {
		labelW = max(labelW, lipgloss.Width(u.Budget.Category))
	}
	labelW = min(labelW, 16)
	// dot + spaces + pct column
	barW := max(innerW-labelW-10, 8)

	lines := make([]string, 0, len(a.view.Budgets))
	for _, u := range a.view.Budgets {
		lines = append(lines, components.BudgetBar(u.Budget.Category, u.Budget.Color, u.Percent, labelW, barW))
	}
	return strings.Join(lines, "\n")
}

// renderCategoryBars renders the per-category share of spend.
func (a App) renderCategoryBars(innerW int) string {
	if len(a.view.Categories) == 0 {
		return a.mutedLine("No expenses recorded yet.")
	}
	return components.HorizontalBars(categoryBars(a.view.Categories), innerW)
}

func categoryBars(rows []model.CategoryTotal) []components.Bar {
	t := theme.Active
	bars := make([]components.Bar, 0, len(rows))
	for _, c := range rows {
		bars = append(bars, components.Bar{
			Label:   c.Category,
			Value:   c.Amount.InexactFloat64(),
			Pct:     c.Percent,
			Color:   t.Token(c.Color),
			Trailer: fmt.Sprintf("%s %s", cli.FormatAmount(c.Amount), cli.FormatPercent(c.Percent)),
		})
	}
	return bars
}

func (a App) mutedLine(s string) string {
	t := theme.Active
	return lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Render(s)
}
