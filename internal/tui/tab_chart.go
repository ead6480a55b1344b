package tui

import (
	"github.com/theirongolddev/tally/internal/cli"
	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/tui/components"
	"github.com/theirongolddev/tally/internal/tui/theme"
)

func (a App) renderChartTab(cw, h int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)

	if a.view.ChartView == model.ChartTimeline {
		if len(a.view.Months) == 0 {
			return components.ContentCard("Spending by Month", a.mutedLine("No expenses to chart."), cw)
		}
		bars := make([]components.Bar, 0, len(a.view.Months))
		for _, m := range a.view.Months {
			bars = append(bars, components.Bar{
				Label:   m.Label,
				Value:   m.Amount.InexactFloat64(),
				Pct:     m.Percent,
				Trailer: cli.FormatAmount(m.Amount),
			})
		}
		// card border + title
		chartH := max(h-4, 6)
		return components.ContentCard("Spending by Month  [v] category view",
			components.ColumnChart(bars, t.Cyan, innerW, chartH), cw)
	}

	if len(a.view.Categories) == 0 {
		return components.ContentCard("Spending by Category", a.mutedLine("No expenses to chart."), cw)
	}
	return components.ContentCard("Spending by Category  [v] timeline view",
		components.HorizontalBars(categoryBars(a.view.Categories), innerW), cw)
}
