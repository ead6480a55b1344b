// Package tui provides the interactive Bubble Tea dashboard for tally.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/tally/internal/cli"
	"github.com/theirongolddev/tally/internal/ledger"
	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/tui/components"
	"github.com/theirongolddev/tally/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Tab indexes, matching components.Tabs.
const (
	tabOverview = iota
	tabChart
	tabExpenses
	tabBudgets
)

// App is the root Bubble Tea model.
type App struct {
	state  *ledger.State
	mirror *ledger.Mirror
	view   model.View
	loc    *time.Location

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab cursors
	expCursor    int
	budgetCursor int

	// Modal huh form
	form     *huh.Form
	formKind formKind

	// Form bindings live behind pointers so copies of App share them.
	expenseVals *expenseFormValues
	budgetVals  *budgetFormValues
	filterVals  *filterFormValues

	// Status bar message from the last action
	status    string
	statusErr bool
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180

	minContentHeight = 5 // minimum content area height
)

// NewApp creates the dashboard over an opened ledger.
func NewApp(state *ledger.State, mirror *ledger.Mirror) App {
	a := App{
		state:  state,
		mirror: mirror,
		loc:    state.Location(),
	}
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

// recompute refreshes the derived view and clamps cursors to it.
func (a *App) recompute() {
	a.view = a.state.View()
	a.expCursor = clamp(a.expCursor, 0, len(a.view.Expenses)-1)
	a.budgetCursor = clamp(a.budgetCursor, 0, len(a.view.Budgets)-1)
}

func (a *App) setStatus(msg string, isErr bool) {
	a.status = msg
	a.statusErr = isErr
}

// afterMutation recomputes and reports either msg or the persistence error.
func (a *App) afterMutation(msg string) {
	a.recompute()
	if err := a.mirror.LastError(); err != nil {
		a.setStatus("Not saved: "+err.Error(), true)
		return
	}
	a.setStatus(msg, false)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.MouseMsg:
		if a.form != nil || a.showHelp {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// Open forms intercept all keys
		if a.form != nil {
			if key == "esc" {
				a.closeForm()
				a.setStatus("Cancelled", false)
				return a, nil
			}
			return a.updateForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		return a.updateKey(key)
	}

	// Forward unhandled messages to the form (cursor blinks, etc.)
	if a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) updateKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		return a, tea.Quit
	case "left", "shift+tab":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	case "right", "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	case "n":
		return a.openForm(formExpense)
	case "f":
		return a.openForm(formFilter)
	case "F":
		a.state.SetFilter(model.Filter{})
		a.recompute()
		a.setStatus("Filter cleared", false)
		return a, nil
	case "s":
		a.state.SetSort(model.SortConfig{Field: nextSortField(a.state.Sort().Field), Order: a.state.Sort().Order})
		a.recompute()
		a.setStatus("Sorted by "+string(a.state.Sort().Field), false)
		return a, nil
	case "o":
		order := model.Descending
		if a.state.Sort().Order == model.Descending {
			order = model.Ascending
		}
		a.state.SetSort(model.SortConfig{Field: a.state.Sort().Field, Order: order})
		a.recompute()
		a.setStatus("Order "+string(order), false)
		return a, nil
	case "v":
		next := model.ChartTimeline
		if a.state.ChartView() == model.ChartTimeline {
			next = model.ChartByCategory
		}
		a.state.SetChartView(next)
		a.recompute()
		return a, nil
	}

	if len(key) == 1 {
		if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
			a.activeTab = idx
			return a, nil
		}
	}

	switch a.activeTab {
	case tabExpenses:
		return a.updateExpensesKey(key)
	case tabBudgets:
		return a.updateBudgetsKey(key)
	}
	return a, nil
}

func (a App) updateExpensesKey(key string) (tea.Model, tea.Cmd) {
	n := len(a.view.Expenses)
	switch key {
	case "j", "down":
		a.expCursor = clamp(a.expCursor+1, 0, n-1)
	case "k", "up":
		a.expCursor = clamp(a.expCursor-1, 0, n-1)
	case "g", "home":
		a.expCursor = 0
	case "G", "end":
		a.expCursor = max(n-1, 0)
	case "ctrl+d", "pgdown":
		a.expCursor = clamp(a.expCursor+a.halfPage(), 0, n-1)
	case "ctrl+u", "pgup":
		a.expCursor = clamp(a.expCursor-a.halfPage(), 0, n-1)
	case "d", "delete":
		if n == 0 {
			return a, nil
		}
		e := a.view.Expenses[a.expCursor]
		if a.state.DeleteExpense(e.ID) {
			a.afterMutation(fmt.Sprintf("Deleted %s (%s)", e.Description, cli.FormatAmount(e.Amount)))
		}
	}
	return a, nil
}

func (a App) updateBudgetsKey(key string) (tea.Model, tea.Cmd) {
	n := len(a.view.Budgets)
	switch key {
	case "j", "down":
		a.budgetCursor = clamp(a.budgetCursor+1, 0, n-1)
	case "k", "up":
		a.budgetCursor = clamp(a.budgetCursor-1, 0, n-1)
	case "a":
		if len(a.state.Registry().UnbudgetedCategories()) == 0 {
			a.setStatus("Every category already has a budget", true)
			return a, nil
		}
		return a.openForm(formBudget)
	case "d", "delete":
		if n == 0 {
			return a, nil
		}
		name := a.view.Budgets[a.budgetCursor].Budget.Category
		if a.state.RemoveBudget(name) {
			a.afterMutation("Removed budget for " + name)
		}
	}
	return a, nil
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if a.activeTab == tabExpenses {
			a.expCursor = clamp(a.expCursor-1, 0, len(a.view.Expenses)-1)
		}
	case tea.MouseButtonWheelDown:
		if a.activeTab == tabExpenses {
			a.expCursor = clamp(a.expCursor+1, 0, len(a.view.Expenses)-1)
		}
	case tea.MouseButtonLeft:
		if msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
	}
	return a, nil
}

// ─── Forms ──────────────────────────────────────────────────────

func (a App) openForm(kind formKind) (tea.Model, tea.Cmd) {
	switch kind {
	case formExpense:
		a.expenseVals = &expenseFormValues{}
		a.form = newExpenseForm(a.expenseVals, a.state.Categories())
	case formBudget:
		a.budgetVals = &budgetFormValues{}
		a.form = newBudgetForm(a.budgetVals, a.state.Registry().UnbudgetedCategories())
	case formFilter:
		a.filterVals = &filterFormValues{}
		a.form = newFilterForm(a.filterVals, a.state.Categories(), a.state.Filter(), a.state.Sort())
	default:
		return a, nil
	}
	a.formKind = kind
	return a, a.form.Init()
}

func (a *App) closeForm() {
	a.form = nil
	a.formKind = formNone
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		kind := a.formKind
		a.closeForm()
		a.submitForm(kind)
		return a, nil
	case huh.StateAborted:
		a.closeForm()
		a.setStatus("Cancelled", false)
		return a, nil
	}
	return a, cmd
}

func (a *App) submitForm(kind formKind) {
	switch kind {
	case formExpense:
		e, err := a.expenseVals.expense()
		if err != nil {
			a.setStatus("Not added: "+err.Error(), true)
			return
		}
		if !a.state.AddExpense(e) {
			a.setStatus("Not added", true)
			return
		}
		a.expCursor = 0
		a.afterMutation(fmt.Sprintf("Added %s (%s)", e.Description, cli.FormatAmount(e.Amount)))

	case formBudget:
		v := *a.budgetVals
		if !a.state.AddBudget(v.Category, v.limit(), model.Period(v.Period)) {
			a.setStatus("Budget not added", true)
			return
		}
		a.afterMutation("Added budget for " + v.Category)

	case formFilter:
		a.state.SetFilter(a.filterVals.filter())
		a.state.SetSort(a.filterVals.sort())
		a.expCursor = 0
		a.recompute()
		a.setStatus("Filter applied", false)
	}
}

// ─── View ───────────────────────────────────────────────────────

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

func (a App) halfPage() int {
	return max((a.height-10)/2, 1)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.form != nil {
		return a.viewForm()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  tally needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewForm() string {
	t := theme.Active
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 2)
	hint := lipgloss.NewStyle().Foreground(t.TextDim).Render("esc to cancel")
	card := cardStyle.Render(a.form.View() + "\n" + hint)
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"1 2 3 4", "Jump to tab"},
			{"← → tab", "Previous / Next tab"},
			{"j k", "Move selection"},
			{"g G", "First / Last expense"},
		}},
		{"Actions", []struct{ key, desc string }{
			{"n", "New expense"},
			{"f / F", "Filter and sort / Clear filter"},
			{"s o", "Cycle sort field / Flip order"},
			{"v", "Toggle category / timeline chart"},
			{"d", "Delete selected expense or budget"},
			{"a", "Add budget (Budgets tab)"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, s := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(s.title))
		b.WriteString("\n")
		for _, bind := range s.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w) + "\n" + a.renderFilterRow(w)
	statusBar := components.RenderStatusBar(w, a.statusHints(), a.status, a.statusErr)

	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.renderOverviewTab(cw)
	case tabChart:
		content = a.renderChartTab(cw, contentH)
	case tabExpenses:
		content = a.renderExpensesTab(cw, contentH)
	case tabBudgets:
		content = a.renderBudgetsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// renderFilterRow shows the active filter and sort as a pill line.
func (a App) renderFilterRow(w int) string {
	t := theme.Active
	pill := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	accent := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)

	f := a.view.Filter
	parts := []string{}
	if f.Category != "" {
		parts = append(parts, accent.Render(f.Category))
	} else {
		parts = append(parts, pill.Render("all categories"))
	}
	if f.Start != "" || f.End != "" {
		from, to := f.Start, f.End
		if from == "" {
			from = "…"
		}
		if to == "" {
			to = "…"
		}
		parts = append(parts, accent.Render(from+" → "+to))
	}
	parts = append(parts, pill.Render("sort ")+accent.Render(string(a.view.Sort.Field)+" "+string(a.view.Sort.Order)))

	row := pill.Render(" ") + strings.Join(parts, pill.Render(" │ ")) + pill.Render(" ")
	return lipgloss.NewStyle().Background(t.Surface).Width(w).Render(row)
}

func (a App) statusHints() string {
	switch a.activeTab {
	case tabExpenses:
		return "[n]ew  [d]elete  [f]ilter  [s]ort  [o]rder  [?]help  [q]uit"
	case tabBudgets:
		return "[a]dd  [d]elete  [n]ew expense  [?]help  [q]uit"
	case tabChart:
		return "[v]iew  [f]ilter  [n]ew  [?]help  [q]uit"
	default:
		return "[n]ew  [f]ilter  [?]help  [q]uit"
	}
}

// ─── Helpers ────────────────────────────────────────────────────

func nextSortField(cur model.SortField) model.SortField {
	for i, f := range model.SortFields {
		if f == cur {
			return model.SortFields[(i+1)%len(model.SortFields)]
		}
	}
	return model.SortFields[0]
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes use the same widths as RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW
		if i < len(components.Tabs)-1 {
			pos++ // separator
		}
	}
	return -1
}
