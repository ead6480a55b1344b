package cli

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/tally/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
	ColorBlue      = lipgloss.Color("#4385BE")
	ColorPurple    = lipgloss.Color("#8B7EC8")
	ColorYellow    = lipgloss.Color("#D0A215")
)

// tokenColors maps category color tokens to terminal colors.
var tokenColors = map[string]lipgloss.Color{
	"blue":   ColorBlue,
	"green":  ColorGreen,
	"purple": ColorPurple,
	"yellow": ColorYellow,
	"red":    ColorRed,
	"orange": ColorOrange,
	"teal":   ColorAccent,
	"gray":   ColorTextMuted,
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	amountStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	overStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// ColorFor resolves a category color token. Unknown tokens, including raw
// hex values, pass through to lipgloss; empty falls back to neutral.
func ColorFor(token string) lipgloss.Color {
	if token == "" {
		token = model.NeutralColor
	}
	if c, ok := tokenColors[strings.ToLower(token)]; ok {
		return c
	}
	return lipgloss.Color(token)
}

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
	// LeftAligned lists columns (besides the first) rendered left-aligned.
	LeftAligned []int
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderMuted renders a hint line.
func RenderMuted(s string) string {
	return mutedStyle.Render(s)
}

// RenderTable renders a bordered table with headers and rows. A row holding
// the single cell "---" renders as a separator.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			widths[i] = max(widths[i], lipgloss.Width(h))
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if i < numCols {
					widths[i] = max(widths[i], lipgloss.Width(cell))
				}
			}
		}
	}

	leftAligned := make(map[int]bool, len(t.LeftAligned)+1)
	leftAligned[0] = true
	for _, i := range t.LeftAligned {
		leftAligned[i] = true
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	rule := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")

	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle.Render(" " + pad(h, widths[i], leftAligned[i]) + " "))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
		rule("├", "┼", "┤")
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			rule("├", "┼", "┤")
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(valueStyle.Render(" " + pad(cell, widths[i], leftAligned[i]) + " "))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	rule("╰", "┴", "╯")

	return b.String()
}

// pad fits s into w display cells, truncating when it is too wide.
func pad(s string, w int, left bool) string {
	if lipgloss.Width(s) > w {
		s = Truncate(s, w)
	}
	gap := w - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	if left {
		return s + strings.Repeat(" ", gap)
	}
	return strings.Repeat(" ", gap) + s
}

// RenderHorizontalBar renders one labelled bar scaled to pct (0-100) of
// maxWidth, colored with the given token, followed by a trailing annotation.
func RenderHorizontalBar(label string, labelWidth int, pct float64, maxWidth int, color, trailer string) string {
	barLen := barCells(pct, maxWidth)
	bar := lipgloss.NewStyle().Foreground(ColorFor(color)).Render(strings.Repeat("█", barLen))
	rest := dimStyle.Render(strings.Repeat("░", maxWidth-barLen))
	return fmt.Sprintf("  %s %s%s %s", pad(label, labelWidth, true), bar, rest, amountStyle.Render(trailer))
}

// RenderBudgetBar renders spend against a limit. Overspent budgets are shown
// full-width in red.
func RenderBudgetBar(pct float64, width int, color string, over bool) string {
	barLen := barCells(pct, width)
	style := lipgloss.NewStyle().Foreground(ColorFor(color))
	if over {
		style = overStyle
	}
	return style.Render(strings.Repeat("█", barLen)) + dimStyle.Render(strings.Repeat("░", width-barLen))
}

// RenderOver marks an overspent value.
func RenderOver(s string) string {
	return overStyle.Render(s)
}

func barCells(pct float64, width int) int {
	if width <= 0 || pct <= 0 {
		return 0
	}
	n := int(pct / 100 * float64(width))
	if n > width {
		n = width
	}
	if n == 0 {
		n = 1 // keep non-zero rows visible
	}
	return n
}
