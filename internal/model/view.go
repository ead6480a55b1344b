package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SortField selects the expense attribute the list is ordered by.
type SortField string

const (
	SortByDate        SortField = "date"
	SortByAmount      SortField = "amount"
	SortByDescription SortField = "description"
	SortByCategory    SortField = "category"
)

// SortFields lists every sort field in cycling order.
var SortFields = []SortField{SortByDate, SortByAmount, SortByDescription, SortByCategory}

// SortOrder is the sort direction.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// SortConfig pairs a field with a direction.
type SortConfig struct {
	Field SortField
	Order SortOrder
}

// DefaultSort is newest first.
var DefaultSort = SortConfig{Field: SortByDate, Order: Descending}

// ParseSortField maps user input to a SortField.
func ParseSortField(s string) (SortField, bool) {
	for _, f := range SortFields {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}

// ParseSortOrder maps user input to a SortOrder.
func ParseSortOrder(s string) (SortOrder, bool) {
	switch SortOrder(s) {
	case Ascending, Descending:
		return SortOrder(s), true
	}
	return "", false
}

// Filter narrows the expense list. Empty fields match everything.
// Start and End are compared against stored dates as strings.
type Filter struct {
	Category string
	Start    string
	End      string
}

// IsZero reports whether the filter matches every expense.
func (f Filter) IsZero() bool {
	return f.Category == "" && f.Start == "" && f.End == ""
}

// ChartView selects which breakdown the chart renders.
type ChartView string

const (
	ChartByCategory ChartView = "category"
	ChartTimeline   ChartView = "timeline"
)

// ParseChartView maps user input to a ChartView.
func ParseChartView(s string) (ChartView, bool) {
	switch ChartView(s) {
	case ChartByCategory, ChartTimeline:
		return ChartView(s), true
	}
	return "", false
}

// Summary holds the headline statistics for a set of expenses.
type Summary struct {
	Count   int
	Total   decimal.Decimal
	Average decimal.Decimal
	Max     decimal.Decimal
}

// CategoryTotal is one row of the per-category breakdown.
type CategoryTotal struct {
	Category string
	Color    string
	Amount   decimal.Decimal
	Percent  float64 // share of the breakdown total, 0-100
	Known    bool    // false when the category is not in the registry
}

// MonthTotal is one row of the per-month breakdown.
type MonthTotal struct {
	Label   string // e.g. "Jan 2024"
	Amount  decimal.Decimal
	Percent float64 // relative to the largest month, 0-100
}

// BudgetUsage holds spend against one budget for its current period.
type BudgetUsage struct {
	Budget      Budget
	Spent       decimal.Decimal
	Remaining   decimal.Decimal
	Percent     float64 // spent / limit * 100, not capped
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// Over reports whether spend exceeds the limit.
func (u BudgetUsage) Over() bool {
	return u.Spent.GreaterThan(u.Budget.Limit)
}

// View is the derived snapshot the presentation layer renders.
type View struct {
	Expenses   []Expense
	Filter     Filter
	Sort       SortConfig
	ChartView  ChartView
	Summary    Summary
	Categories []CategoryTotal
	Months     []MonthTotal
	Budgets    []BudgetUsage
}
