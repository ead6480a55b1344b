package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/tally/internal/cli"
	"github.com/theirongolddev/tally/internal/tui/components"
	"github.com/theirongolddev/tally/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// listOffset returns the first visible row so the cursor stays in view.
func listOffset(cursor, total, visible int) int {
	if visible <= 0 || total <= visible {
		return 0
	}
	off := cursor - visible/2
	return clamp(off, 0, total-visible)
}

func (a App) renderExpensesTab(cw, h int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)
	expenses := a.view.Expenses

	title := fmt.Sprintf("Expenses (%d)  %s", len(expenses), cli.FormatAmount(a.view.Summary.Total))
	if len(expenses) == 0 {
		return components.ContentCard(title, a.mutedLine("No expenses match. Press n to add one or F to clear the filter."), cw)
	}

	dateW, catW, amtW := 12, 14, 12
	tagsW := 0
	if !a.isCompactLayout() {
		tagsW = 18
	}
	descW := max(innerW-dateW-catW-tagsW-amtW-2, 12)

	headStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)

	row := func(date, desc, cat, tags, amt string) string {
		s := fmt.Sprintf("%-*s%-*s%-*s", dateW, cli.Truncate(date, dateW-1), descW, cli.Truncate(desc, descW-1), catW, cli.Truncate(cat, catW-1))
		if tagsW > 0 {
			s += fmt.Sprintf("%-*s", tagsW, cli.Truncate(tags, tagsW-1))
		}
		return s + fmt.Sprintf("%*s", amtW, amt)
	}

	lines := []string{headStyle.Render(row("Date", "Description", "Category", "Tags", "Amount"))}

	// card border + title + header + detail line
	visible := max(h-6, 3)
	off := listOffset(a.expCursor, len(expenses), visible)
	end := min(off+visible, len(expenses))

	for i := off; i < end; i++ {
		e := expenses[i]
		text := row(cli.FormatDate(e.Date, a.loc), e.Description, e.Category, cli.FormatTags(e.Tags), cli.FormatAmount(e.Amount))
		text = fmt.Sprintf("%-*s", innerW, text)
		if i == a.expCursor {
			lines = append(lines, selStyle.Render(text))
			continue
		}
		lines = append(lines, rowStyle.Render(text))
	}

	sel := expenses[a.expCursor]
	detail := "id " + cli.ShortID(sel.ID)
	if sel.Notes != "" {
		detail += "  " + sel.Notes
	}
	lines = append(lines, mutedStyle.Render(cli.Truncate(detail, innerW)))

	return components.ContentCard(title, strings.Join(lines, "\n"), cw)
}
