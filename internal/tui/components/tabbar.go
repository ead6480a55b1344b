package components

import (
	"strings"

	"github.com/theirongolddev/tally/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name string
	Key  rune
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Overview", Key: '1'},
	{Name: "Chart", Key: '2'},
	{Name: "Expenses", Key: '3'},
	{Name: "Budgets", Key: '4'},
}

// tabLabel is the unstyled text of a tab. Inactive tabs show their shortcut.
func tabLabel(tab Tab, active bool) string {
	if active {
		return " " + tab.Name + " "
	}
	return " " + tab.Name + " [" + string(tab.Key) + "]"
}

// TabVisualWidth returns the rendered width of a tab, excluding separators.
func TabVisualWidth(tab Tab, active bool) int {
	return lipgloss.Width(tabLabel(tab, active))
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.SurfaceHover).
		Bold(true)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface)

	sepStyle := lipgloss.NewStyle().
		Foreground(t.Border).
		Background(t.Surface)

	var parts []string
	for i, tab := range Tabs {
		if i == activeIdx {
			parts = append(parts, activeStyle.Render(tabLabel(tab, true)))
			continue
		}
		parts = append(parts, inactiveStyle.Render(" "+tab.Name+" ")+keyStyle.Render("["+string(tab.Key)+"]"))
	}

	row := strings.Join(parts, sepStyle.Render("│"))
	return lipgloss.NewStyle().Background(t.Surface).Width(width).Render(row)
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
