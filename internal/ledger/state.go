package ledger

import (
	"time"

	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/pipeline"

	"github.com/shopspring/decimal"
)

// Event identifies which collection a mutation touched.
type Event int

const (
	ExpensesChanged Event = iota + 1
	BudgetsChanged
)

func (e Event) String() string {
	switch e {
	case ExpensesChanged:
		return "expenses"
	case BudgetsChanged:
		return "budgets"
	default:
		return "unknown"
	}
}

// Observer is notified after a mutation has been applied in memory.
type Observer interface {
	Changed(ev Event, s *State)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ev Event, s *State)

// Changed calls f.
func (f ObserverFunc) Changed(ev Event, s *State) { f(ev, s) }

// State is the single source of truth the presentation layer reads and
// mutates. Methods are not safe for concurrent use.
type State struct {
	expenses *Expenses
	registry *Registry

	filter    model.Filter
	sort      model.SortConfig
	chartView model.ChartView

	collator pipeline.Collator
	loc      *time.Location
	now      func() time.Time

	observers []Observer
}

// NewState builds a State over the given collections with the default view
// settings.
func NewState(expenses *Expenses, registry *Registry) *State {
	return &State{
		expenses:  expenses,
		registry:  registry,
		sort:      model.DefaultSort,
		chartView: model.ChartByCategory,
		collator:  pipeline.NewCollator("en-US"),
		loc:       time.Local,
		now:       time.Now,
	}
}

// Subscribe registers o. Observers run in subscription order.
func (s *State) Subscribe(o Observer) {
	s.observers = append(s.observers, o)
}

func (s *State) emit(ev Event) {
	for _, o := range s.observers {
		o.Changed(ev, s)
	}
}

// Expenses returns every stored expense, newest first.
func (s *State) Expenses() []model.Expense { return s.expenses.All() }

// Expense looks up one expense by id.
func (s *State) Expense(id string) (model.Expense, bool) { return s.expenses.Get(id) }

// Categories returns the category registry.
func (s *State) Categories() []model.Category { return s.registry.Categories() }

// Location is the zone used for month labels and budget periods.
func (s *State) Location() *time.Location { return s.loc }

// Registry exposes the category and budget registry for read access.
func (s *State) Registry() *Registry { return s.registry }

// Budgets returns the current budgets.
func (s *State) Budgets() []model.Budget { return s.registry.Budgets() }

// AddExpense prepends e. Expenses without an id or description, with a
// negative amount, or reusing an existing id are rejected.
func (s *State) AddExpense(e model.Expense) bool {
	if e.ID == "" || e.Description == "" || e.Amount.IsNegative() {
		return false
	}
	if _, dup := s.expenses.Get(e.ID); dup {
		return false
	}
	s.expenses.Add(e)
	s.emit(ExpensesChanged)
	return true
}

// DeleteExpense removes the expense with the given id. A missing id is a no-op.
func (s *State) DeleteExpense(id string) bool {
	if !s.expenses.Remove(id) {
		return false
	}
	s.emit(ExpensesChanged)
	return true
}

// SetBudgets replaces the budget list.
func (s *State) SetBudgets(budgets []model.Budget) {
	s.registry.SetBudgets(budgets)
	s.emit(BudgetsChanged)
}

// AddBudget adds a budget for category. See Registry.AddBudget for the guards.
func (s *State) AddBudget(category string, limit decimal.Decimal, period model.Period) bool {
	if !s.registry.AddBudget(category, limit, period) {
		return false
	}
	s.emit(BudgetsChanged)
	return true
}

// RemoveBudget removes the budget for category.
func (s *State) RemoveBudget(category string) bool {
	if !s.registry.RemoveBudget(category) {
		return false
	}
	s.emit(BudgetsChanged)
	return true
}

// Filter returns the active filter.
func (s *State) Filter() model.Filter { return s.filter }

// SetFilter replaces the active filter.
func (s *State) SetFilter(f model.Filter) { s.filter = f }

// Sort returns the active sort configuration.
func (s *State) Sort() model.SortConfig { return s.sort }

// SetSort replaces the active sort configuration. Invalid fields or orders
// leave the current value in place.
func (s *State) SetSort(cfg model.SortConfig) {
	if _, ok := model.ParseSortField(string(cfg.Field)); ok {
		s.sort.Field = cfg.Field
	}
	if _, ok := model.ParseSortOrder(string(cfg.Order)); ok {
		s.sort.Order = cfg.Order
	}
}

// ChartView returns the active chart view.
func (s *State) ChartView() model.ChartView { return s.chartView }

// SetChartView selects the chart breakdown. Unknown views are ignored.
func (s *State) SetChartView(v model.ChartView) {
	if _, ok := model.ParseChartView(string(v)); ok {
		s.chartView = v
	}
}

// View derives the filtered, sorted expense list and every aggregate.
func (s *State) View() model.View {
	return pipeline.Derive(s.expenses.All(), pipeline.Options{
		Filter:     s.filter,
		Sort:       s.sort,
		ChartView:  s.chartView,
		Categories: s.registry.Categories(),
		Budgets:    s.registry.Budgets(),
		Collator:   s.collator,
		Location:   s.loc,
		Now:        s.now(),
	})
}
