// Package pipeline derives filtered, sorted, and aggregated views from expenses.
// Every function is pure: inputs are never mutated and results are fresh slices.
package pipeline

import (
	"time"

	"github.com/theirongolddev/tally/internal/model"

	"github.com/shopspring/decimal"
)

// invalidMonthLabel is the bucket for expenses whose date does not parse.
const invalidMonthLabel = "Invalid Date"

var hundred = decimal.NewFromInt(100)

// Options controls a full view derivation.
type Options struct {
	Filter     model.Filter
	Sort       model.SortConfig
	ChartView  model.ChartView
	Categories []model.Category
	Budgets    []model.Budget
	Collator   Collator
	Location   *time.Location // month labels and budget periods; nil means time.Local
	Now        time.Time      // budget period anchor; zero means time.Now()
}

// Derive filters and sorts expenses and computes every aggregate over the result.
// Budget usage is computed over the unfiltered expenses.
func Derive(expenses []model.Expense, opts Options) model.View {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	visible := Sort(Filter(expenses, opts.Filter), opts.Sort, opts.Collator)

	return model.View{
		Expenses:   visible,
		Filter:     opts.Filter,
		Sort:       opts.Sort,
		ChartView:  opts.ChartView,
		Summary:    Summarize(visible),
		Categories: AggregateCategories(visible, opts.Categories),
		Months:     AggregateMonths(visible, loc),
		Budgets:    AggregateBudgets(expenses, opts.Budgets, now.In(loc)),
	}
}

// Summarize computes total, count, average, and max. Average and max are zero
// for an empty slice.
func Summarize(expenses []model.Expense) model.Summary {
	s := model.Summary{
		Count:   len(expenses),
		Total:   decimal.Zero,
		Average: decimal.Zero,
		Max:     decimal.Zero,
	}
	for i, e := range expenses {
		s.Total = s.Total.Add(e.Amount)
		if i == 0 || e.Amount.GreaterThan(s.Max) {
			s.Max = e.Amount
		}
	}
	if s.Count > 0 {
		s.Average = s.Total.Div(decimal.NewFromInt(int64(s.Count)))
	}
	return s
}

// AggregateCategories sums amounts per category. Registry categories come first
// in registry order, including those with no expenses. Categories missing from
// the registry follow in first-encountered order, so the rows always add up to
// the total.
func AggregateCategories(expenses []model.Expense, categories []model.Category) []model.CategoryTotal {
	rows := make([]model.CategoryTotal, 0, len(categories))
	idx := make(map[string]int, len(categories))
	for _, c := range categories {
		if _, dup := idx[c.Name]; dup {
			continue
		}
		idx[c.Name] = len(rows)
		rows = append(rows, model.CategoryTotal{
			Category: c.Name,
			Color:    c.Color,
			Amount:   decimal.Zero,
			Known:    true,
		})
	}

	total := decimal.Zero
	for _, e := range expenses {
		i, ok := idx[e.Category]
		if !ok {
			i = len(rows)
			idx[e.Category] = i
			rows = append(rows, model.CategoryTotal{
				Category: e.Category,
				Color:    model.NeutralColor,
				Amount:   decimal.Zero,
			})
		}
		rows[i].Amount = rows[i].Amount.Add(e.Amount)
		total = total.Add(e.Amount)
	}

	for i := range rows {
		rows[i].Percent = Percent(rows[i].Amount, total)
	}
	return rows
}

// AggregateMonths sums amounts per "Jan 2006" label in loc. Rows appear in the
// order each month is first encountered in expenses, not chronologically.
func AggregateMonths(expenses []model.Expense, loc *time.Location) []model.MonthTotal {
	if loc == nil {
		loc = time.Local
	}

	var rows []model.MonthTotal
	idx := make(map[string]int)
	for _, e := range expenses {
		label := MonthLabel(e, loc)
		i, ok := idx[label]
		if !ok {
			i = len(rows)
			idx[label] = i
			rows = append(rows, model.MonthTotal{Label: label, Amount: decimal.Zero})
		}
		rows[i].Amount = rows[i].Amount.Add(e.Amount)
	}

	peak := decimal.Zero
	for _, r := range rows {
		if r.Amount.GreaterThan(peak) {
			peak = r.Amount
		}
	}
	for i := range rows {
		rows[i].Percent = Percent(rows[i].Amount, peak)
	}
	return rows
}

// MonthLabel formats the expense date as a short month and year in loc.
func MonthLabel(e model.Expense, loc *time.Location) string {
	t := e.Time()
	if t.IsZero() {
		return invalidMonthLabel
	}
	return t.In(loc).Format("Jan 2006")
}

// AggregateBudgets computes spend against each budget for the period containing now.
func AggregateBudgets(expenses []model.Expense, budgets []model.Budget, now time.Time) []model.BudgetUsage {
	usage := make([]model.BudgetUsage, 0, len(budgets))
	for _, b := range budgets {
		start, end := b.Period.Bounds(now)
		spent := decimal.Zero
		for _, e := range expenses {
			if e.Category != b.Category {
				continue
			}
			t := e.Time()
			if t.IsZero() || t.Before(start) || !t.Before(end) {
				continue
			}
			spent = spent.Add(e.Amount)
		}
		usage = append(usage, model.BudgetUsage{
			Budget:      b,
			Spent:       spent,
			Remaining:   b.Limit.Sub(spent),
			Percent:     Percent(spent, b.Limit),
			PeriodStart: start,
			PeriodEnd:   end,
		})
	}
	return usage
}

// Percent returns part/whole*100, or 0 when whole is not positive.
func Percent(part, whole decimal.Decimal) float64 {
	if !whole.IsPositive() {
		return 0
	}
	return part.Div(whole).Mul(hundred).InexactFloat64()
}
