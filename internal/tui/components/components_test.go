package components

import (
	"strings"
	"testing"

	"github.com/theirongolddev/tally/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, total := range []int{80, 81, 119, 120} {
		widths := LayoutRow(total, 4)
		sum := 0
		for _, w := range widths {
			sum += w
		}
		assert.Equal(t, total, sum)
	}
	assert.Nil(t, LayoutRow(10, 0))
}

func TestCardRowPadsShortCards(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)
	shortLines := lipgloss.Height(shortCard)
	require.Less(t, shortLines, lipgloss.Height(tallCard))

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")

	assert.Len(t, lines, lipgloss.Height(tallCard))
	for i, line := range lines {
		assert.Equal(t, 44, lipgloss.Width(line), "line %d width", i)
		if i >= shortLines {
			assert.Contains(t, line, "\x1b[", "padding line %d must carry background styling", i)
		}
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	row := MetricCardRow([]Metric{
		{Label: "Total", Value: "$100.00"},
		{Label: "Expenses", Value: "3", Hint: "this view"},
		{Label: "Average", Value: "$33.33"},
	}, 90)
	for _, line := range strings.Split(row, "\n") {
		assert.Equal(t, 90, lipgloss.Width(line))
	}
}

func TestTabVisualWidth(t *testing.T) {
	assert.Equal(t, len(" Overview "), TabVisualWidth(Tabs[0], true))
	assert.Equal(t, len(" Overview [1]"), TabVisualWidth(Tabs[0], false))
	assert.Equal(t, 2, TabIdxByKey('3'))
	assert.Equal(t, -1, TabIdxByKey('x'))
}

func TestHorizontalBarsRowCount(t *testing.T) {
	out := HorizontalBars([]Bar{
		{Label: "Food", Pct: 70, Color: theme.Active.Blue, Trailer: "$70.00"},
		{Label: "Transportation", Pct: 30, Color: theme.Active.Green, Trailer: "$30.00"},
		{Label: "Other", Pct: 0, Color: theme.Active.TextMuted, Trailer: "$0.00"},
	}, 60)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	for _, l := range lines {
		assert.Equal(t, 60, lipgloss.Width(l))
	}
	assert.NotContains(t, lines[2], "█", "zero rows draw no bar")
}

func TestColumnChartLabels(t *testing.T) {
	out := ColumnChart([]Bar{
		{Label: "Jan 2024", Value: 120},
		{Label: "Feb 2024", Value: 80},
	}, theme.Active.Accent, 60, 8)
	assert.Contains(t, out, "Jan 2024")
	assert.Contains(t, out, "Feb 2024")
	assert.Contains(t, out, "└")
}

func TestChartTickStep(t *testing.T) {
	assert.Equal(t, 1.0, chartTickStep(0))
	assert.Equal(t, 100.0, chartTickStep(500))
	assert.Equal(t, 200.0, chartTickStep(1000))
	assert.Equal(t, "$1.5k", formatChartLabel(1500))
	assert.Equal(t, "$2k", formatChartLabel(2000))
}

func TestColorForPct(t *testing.T) {
	th := theme.Active
	assert.Equal(t, th.Green, ColorForPct(10))
	assert.Equal(t, th.Yellow, ColorForPct(75))
	assert.Equal(t, th.Orange, ColorForPct(95))
	assert.Equal(t, th.Red, ColorForPct(130))
}
