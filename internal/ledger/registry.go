package ledger

import (
	"slices"

	"github.com/theirongolddev/tally/internal/model"

	"github.com/shopspring/decimal"
)

// Registry holds the fixed category list and the mutable budget list.
type Registry struct {
	categories []model.Category
	budgets    []model.Budget
}

// NewRegistry builds a registry. A nil categories slice selects the built-in list.
func NewRegistry(categories []model.Category, budgets []model.Budget) *Registry {
	if categories == nil {
		categories = model.DefaultCategories()
	}
	return &Registry{
		categories: slices.Clone(categories),
		budgets:    slices.Clone(budgets),
	}
}

// Categories returns the category list in display order.
func (r *Registry) Categories() []model.Category {
	return slices.Clone(r.categories)
}

// Category looks up a category by name.
func (r *Registry) Category(name string) (model.Category, bool) {
	i := slices.IndexFunc(r.categories, func(c model.Category) bool { return c.Name == name })
	if i < 0 {
		return model.Category{}, false
	}
	return r.categories[i], true
}

// Color returns the category color, or the neutral color for unknown names.
func (r *Registry) Color(name string) string {
	if c, ok := r.Category(name); ok && c.Color != "" {
		return c.Color
	}
	return model.NeutralColor
}

// Budgets returns the budgets in insertion order.
func (r *Registry) Budgets() []model.Budget {
	out := slices.Clone(r.budgets)
	if out == nil {
		out = []model.Budget{}
	}
	return out
}

// SetBudgets replaces the budget list.
func (r *Registry) SetBudgets(budgets []model.Budget) {
	r.budgets = slices.Clone(budgets)
}

// HasBudget reports whether category already has a budget.
func (r *Registry) HasBudget(category string) bool {
	return slices.ContainsFunc(r.budgets, func(b model.Budget) bool { return b.Category == category })
}

// AddBudget appends a budget for category. It is a no-op returning false when
// category is empty, limit is not positive, or category already has a budget.
// Unknown periods are treated as monthly.
func (r *Registry) AddBudget(category string, limit decimal.Decimal, period model.Period) bool {
	if category == "" || !limit.IsPositive() || r.HasBudget(category) {
		return false
	}
	if _, ok := model.ParsePeriod(string(period)); !ok {
		period = model.Monthly
	}
	r.budgets = append(r.budgets, model.Budget{
		Category: category,
		Limit:    limit,
		Period:   period,
		Color:    r.Color(category),
	})
	return true
}

// RemoveBudget removes every budget for category and reports whether any existed.
func (r *Registry) RemoveBudget(category string) bool {
	n := len(r.budgets)
	r.budgets = slices.DeleteFunc(r.budgets, func(b model.Budget) bool { return b.Category == category })
	return len(r.budgets) != n
}

// UnbudgetedCategories returns categories without a budget, in display order.
func (r *Registry) UnbudgetedCategories() []model.Category {
	var out []model.Category
	for _, c := range r.categories {
		if !r.HasBudget(c.Name) {
			out = append(out, c)
		}
	}
	return out
}
