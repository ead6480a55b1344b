package pipeline

import (
	"testing"
	"time"

	"github.com/theirongolddev/tally/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exp(id, desc, amount, category, date string) model.Expense {
	return model.Expense{
		ID:          id,
		Description: desc,
		Amount:      decimal.RequireFromString(amount),
		Category:    category,
		Date:        date,
	}
}

func scenario() []model.Expense {
	return []model.Expense{
		exp("1", "Groceries", "50", "Food", "2024-01-05"),
		exp("2", "Lunch", "20", "Food", "2024-02-01"),
		exp("3", "Train", "30", "Transportation", "2024-01-15"),
	}
}

func amountOf(rows []model.CategoryTotal, name string) decimal.Decimal {
	for _, r := range rows {
		if r.Category == name {
			return r.Amount
		}
	}
	return decimal.NewFromInt(-1)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(want)), append([]any{"got %s, want %s", got, want}, msgAndArgs...)...)
}

func TestDeriveFoodScenario(t *testing.T) {
	cats := model.DefaultCategories()

	view := Derive(scenario(), Options{
		Filter:     model.Filter{Category: "Food"},
		Sort:       model.DefaultSort,
		Categories: cats,
		Location:   time.UTC,
	})

	require.Len(t, view.Expenses, 2)
	assert.Equal(t, "2", view.Expenses[0].ID) // date desc
	assert.Equal(t, "1", view.Expenses[1].ID)
	assertDecimal(t, "70", view.Summary.Total)
	assertDecimal(t, "35", view.Summary.Average)
	assertDecimal(t, "50", view.Summary.Max)
	assertDecimal(t, "70", amountOf(view.Categories, "Food"))
	assertDecimal(t, "0", amountOf(view.Categories, "Transportation"))

	unfiltered := Derive(scenario(), Options{Sort: model.DefaultSort, Categories: cats, Location: time.UTC})
	assertDecimal(t, "30", amountOf(unfiltered.Categories, "Transportation"))
	assertDecimal(t, "100", unfiltered.Summary.Total)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.Count)
	assert.True(t, s.Total.IsZero())
	assert.True(t, s.Average.IsZero())
	assert.True(t, s.Max.IsZero())
}

func TestAggregateCategoriesSumsToTotal(t *testing.T) {
	expenses := append(scenario(), exp("4", "Mystery", "12.5", "Gadgets", "2024-03-01"))

	rows := AggregateCategories(expenses, model.DefaultCategories())

	sum := decimal.Zero
	pct := 0.0
	for _, r := range rows {
		sum = sum.Add(r.Amount)
		pct += r.Percent
	}
	assert.True(t, sum.Equal(Summarize(expenses).Total), "category sum %s != total", sum)
	assert.InDelta(t, 100, pct, 1e-9)

	// Registry order first, dangling categories after.
	require.Len(t, rows, len(model.DefaultCategories())+1)
	assert.Equal(t, "Food", rows[0].Category)
	last := rows[len(rows)-1]
	assert.Equal(t, "Gadgets", last.Category)
	assert.False(t, last.Known)
	assert.Equal(t, model.NeutralColor, last.Color)
}

func TestAggregateCategoriesEmptyHasZeroPercent(t *testing.T) {
	rows := AggregateCategories(nil, model.DefaultCategories())
	require.Len(t, rows, 6)
	for _, r := range rows {
		assert.True(t, r.Amount.IsZero())
		assert.Zero(t, r.Percent)
	}
}

func TestAggregateMonthsFirstEncounteredOrder(t *testing.T) {
	expenses := []model.Expense{
		exp("1", "a", "10", "Food", "2024-02-10"),
		exp("2", "b", "40", "Food", "2024-01-10"),
		exp("3", "c", "5", "Food", "2024-02-20"),
		exp("4", "d", "1", "Food", "garbage"),
	}

	rows := AggregateMonths(expenses, time.UTC)

	require.Len(t, rows, 3)
	assert.Equal(t, "Feb 2024", rows[0].Label)
	assert.Equal(t, "Jan 2024", rows[1].Label)
	assert.Equal(t, "Invalid Date", rows[2].Label)
	assertDecimal(t, "15", rows[0].Amount)
	assertDecimal(t, "40", rows[1].Amount)
	assert.InDelta(t, 37.5, rows[0].Percent, 1e-9)
	assert.InDelta(t, 100, rows[1].Percent, 1e-9)
}

func TestAggregateMonthsEmpty(t *testing.T) {
	assert.Empty(t, AggregateMonths(nil, time.UTC))
}

func TestAggregateBudgets(t *testing.T) {
	now := time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)
	budgets := []model.Budget{
		{Category: "Food", Limit: decimal.NewFromInt(40), Period: model.Monthly},
		{Category: "Food", Limit: decimal.NewFromInt(1000), Period: model.Yearly},
		{Category: "Bills", Limit: decimal.Zero, Period: model.Monthly},
	}

	usage := AggregateBudgets(scenario(), budgets, now)

	require.Len(t, usage, 3)
	assertDecimal(t, "50", usage[0].Spent) // February lunch is outside January
	assertDecimal(t, "-10", usage[0].Remaining)
	assert.True(t, usage[0].Over())
	assert.InDelta(t, 125, usage[0].Percent, 1e-9)

	assertDecimal(t, "70", usage[1].Spent)
	assert.False(t, usage[1].Over())

	assert.Zero(t, usage[2].Percent)
}

func TestPercentZeroDivisor(t *testing.T) {
	assert.Zero(t, Percent(decimal.NewFromInt(5), decimal.Zero))
	assert.InDelta(t, 50, Percent(decimal.NewFromInt(5), decimal.NewFromInt(10)), 1e-9)
}
