package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period is the recurrence window a budget limit applies to.
type Period string

const (
	Monthly Period = "monthly"
	Yearly  Period = "yearly"
)

// ParsePeriod maps user input to a Period.
func ParsePeriod(s string) (Period, bool) {
	switch Period(s) {
	case Monthly, Yearly:
		return Period(s), true
	}
	return "", false
}

// Bounds returns the half-open [start, end) window of the period containing t.
func (p Period) Bounds(t time.Time) (time.Time, time.Time) {
	if p == Yearly {
		start := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
		return start, start.AddDate(1, 0, 0)
	}
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, 0)
}

// Budget is a spending ceiling for one category. Color is copied from the
// category when the budget is created and is not kept in sync afterwards.
type Budget struct {
	Category string          `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
	Period   Period          `json:"period"`
	Color    string          `json:"color"`
}

// DefaultBudgets returns the budgets used when nothing has been stored yet.
func DefaultBudgets() []Budget {
	return []Budget{
		{Category: "Food", Limit: decimal.NewFromInt(500), Period: Monthly, Color: "blue"},
		{Category: "Transportation", Limit: decimal.NewFromInt(300), Period: Monthly, Color: "green"},
		{Category: "Entertainment", Limit: decimal.NewFromInt(200), Period: Monthly, Color: "purple"},
		{Category: "Shopping", Limit: decimal.NewFromInt(400), Period: Monthly, Color: "yellow"},
		{Category: "Bills", Limit: decimal.NewFromInt(1000), Period: Monthly, Color: "red"},
	}
}
