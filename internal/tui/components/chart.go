package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/tally/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Bar is one labelled value in a chart.
type Bar struct {
	Label   string
	Value   float64
	Pct     float64 // bar length as 0-100 of the available width
	Color   lipgloss.Color
	Trailer string
}

// HorizontalBars renders one row per bar: label, proportional bar, trailer.
func HorizontalBars(bars []Bar, width int) string {
	if len(bars) == 0 {
		return ""
	}
	t := theme.Active

	labelW := 0
	trailerW := 0
	for _, b := range bars {
		labelW = max(labelW, lipgloss.Width(b.Label))
		trailerW = max(trailerW, lipgloss.Width(b.Trailer))
	}
	labelW = min(labelW, 18)
	barW := max(width-labelW-trailerW-2, 5)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	emptyStyle := lipgloss.NewStyle().Foreground(t.SurfaceBright).Background(t.Surface)
	trailerStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	rows := make([]string, len(bars))
	for i, b := range bars {
		filled := 0
		if b.Pct > 0 {
			filled = max(1, min(barW, int(b.Pct/100*float64(barW))))
		}
		barStyle := lipgloss.NewStyle().Foreground(b.Color).Background(t.Surface)
		rows[i] = labelStyle.Render(fmt.Sprintf("%-*s", labelW, truncate(b.Label, labelW))) +
			spaceStyle.Render(" ") +
			barStyle.Render(strings.Repeat("█", filled)) +
			emptyStyle.Render(strings.Repeat("·", barW-filled)) +
			spaceStyle.Render(" ") +
			trailerStyle.Render(fmt.Sprintf("%*s", trailerW, b.Trailer))
	}
	return strings.Join(rows, "\n")
}

// ColumnChart renders vertical bars with a money-scaled Y axis and the bar
// labels underneath. Bars keep the order they are given in.
func ColumnChart(bars []Bar, color lipgloss.Color, width, height int) string {
	if len(bars) == 0 {
		return ""
	}
	t := theme.Active
	height = max(height, 4)

	maxVal := 0.0
	for _, b := range bars {
		maxVal = math.Max(maxVal, b.Value)
	}
	if maxVal == 0 {
		maxVal = 1
	}

	tickStep := chartTickStep(maxVal)
	maxIntervals := max(height/2, 2)
	for int(math.Ceil(maxVal/tickStep)) > maxIntervals {
		tickStep *= 2
	}
	ceiling := math.Ceil(maxVal/tickStep) * tickStep
	numIntervals := max(int(math.Round(ceiling/tickStep)), 1)
	rowsPerTick := max(height/numIntervals, 1)
	chartH := rowsPerTick * numIntervals

	yLabelW := max(len(formatChartLabel(ceiling))+1, 4)
	tickLabels := make(map[int]string, numIntervals)
	for i := 1; i <= numIntervals; i++ {
		tickLabels[i*rowsPerTick] = formatChartLabel(tickStep * float64(i))
	}

	// Month labels are 8 cells wide, so bars are at least that.
	n := len(bars)
	chartW := max(width-yLabelW-1, 5)
	gap := 1
	barW := min(max((chartW-(n-1)*gap)/n, 3), 8)
	if n*(barW+gap) > chartW {
		// Too many months for the width: keep the most recent tail visible.
		fit := max((chartW+gap)/(barW+gap), 1)
		bars = bars[n-fit:]
		n = fit
	}
	axisLen := n*barW + (n-1)*gap

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for row := chartH; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(chartH)
		rowBottom := ceiling * float64(row-1) / float64(chartH)

		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, tickLabels[row])))
		b.WriteString(axisStyle.Render("│"))
		for i, bar := range bars {
			if i > 0 {
				b.WriteString(spaceStyle.Render(strings.Repeat(" ", gap)))
			}
			v := bar.Value
			switch {
			case v >= rowTop:
				b.WriteString(barStyle.Render(strings.Repeat("█", barW)))
			case v > rowBottom:
				idx := int((v - rowBottom) / (rowTop - rowBottom) * 8)
				idx = min(max(idx, 1), 8)
				b.WriteString(barStyle.Render(strings.Repeat(string(blocks[idx]), barW)))
			default:
				b.WriteString(spaceStyle.Render(strings.Repeat(" ", barW)))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└" + strings.Repeat("─", axisLen)))
	b.WriteString("\n")

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	b.WriteString(spaceStyle.Render(strings.Repeat(" ", yLabelW+1)))
	for i, bar := range bars {
		if i > 0 {
			b.WriteString(spaceStyle.Render(strings.Repeat(" ", gap)))
		}
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", barW, truncate(shortMonth(bar.Label, barW), barW))))
	}

	return b.String()
}

// shortMonth drops the year from "Jan 2024" when the column is too narrow.
func shortMonth(label string, w int) string {
	if len(label) <= w {
		return label
	}
	if i := strings.IndexByte(label, ' '); i > 0 && len(label) >= i+5 {
		return label[:i] + " " + label[len(label)-2:]
	}
	return label
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

// formatChartLabel renders an axis amount compactly: 500, 1.5k, 2M.
func formatChartLabel(v float64) string {
	switch {
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			return fmt.Sprintf("$%.0fM", v/1e6)
		}
		return fmt.Sprintf("$%.1fM", v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("$%.0fk", v/1e3)
		}
		return fmt.Sprintf("$%.1fk", v/1e3)
	case v >= 1:
		return fmt.Sprintf("$%.0f", v)
	default:
		return fmt.Sprintf("$%.2f", v)
	}
}
