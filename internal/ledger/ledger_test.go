package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/theirongolddev/tally/internal/logging"
	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExpense(t *testing.T, desc, amount, category, date string) model.Expense {
	t.Helper()
	at, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	e, err := model.NewExpense(model.ExpenseInput{
		Description: desc,
		Amount:      decimal.RequireFromString(amount),
		Category:    category,
		Date:        at,
	})
	require.NoError(t, err)
	return e
}

func openMemory(t *testing.T) (*State, *Mirror, *store.Memory) {
	t.Helper()
	kv := store.NewMemory()
	s, m := Open(context.Background(), kv, Options{
		Logger:   logging.Discard(),
		Location: time.UTC,
		Now:      func() time.Time { return time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC) },
	})
	return s, m, kv
}

func storedExpenses(t *testing.T, kv store.KV) []model.Expense {
	t.Helper()
	raw, ok, err := kv.Get(context.Background(), store.KeyExpenses)
	require.NoError(t, err)
	require.True(t, ok, "expenses were never saved")
	var out []model.Expense
	require.NoError(t, json.Unmarshal([]byte(raw), &out))
	return out
}

func TestOpenDefaults(t *testing.T) {
	s, m, _ := openMemory(t)

	assert.Empty(t, s.Expenses())
	assert.Equal(t, model.DefaultBudgets(), s.Budgets())
	assert.Equal(t, model.DefaultCategories(), s.Categories())
	assert.Equal(t, model.DefaultSort, s.Sort())
	assert.Equal(t, model.ChartByCategory, s.ChartView())
	assert.Zero(t, m.Writes(), "opening must not write")
}

func TestAddExpensePrependsAndPersists(t *testing.T) {
	s, m, kv := openMemory(t)

	first := newExpense(t, "Groceries", "50", "Food", "2024-01-05")
	second := newExpense(t, "Older entry", "10", "Other", "2023-06-01")
	require.True(t, s.AddExpense(first))
	require.True(t, s.AddExpense(second))

	got := s.Expenses()
	require.Len(t, got, 2)
	assert.Equal(t, second.ID, got[0].ID, "insertion order wins over date")
	assert.Equal(t, first.ID, got[1].ID)

	saved := storedExpenses(t, kv)
	assert.Equal(t, got, saved)
	assert.Equal(t, 2, m.Writes())
	assert.NoError(t, m.LastError())
}

func TestAddExpenseGuards(t *testing.T) {
	s, m, _ := openMemory(t)
	e := newExpense(t, "Groceries", "50", "Food", "2024-01-05")
	require.True(t, s.AddExpense(e))

	assert.False(t, s.AddExpense(e), "duplicate id")
	assert.False(t, s.AddExpense(model.Expense{ID: "x", Amount: decimal.NewFromInt(1)}), "empty description")
	assert.False(t, s.AddExpense(model.Expense{Description: "no id"}), "empty id")
	assert.False(t, s.AddExpense(model.Expense{ID: "y", Description: "neg", Amount: decimal.NewFromInt(-1)}))

	assert.Len(t, s.Expenses(), 1)
	assert.Equal(t, 1, m.Writes())
}

func TestDeleteExpense(t *testing.T) {
	s, m, kv := openMemory(t)
	a := newExpense(t, "A", "1", "Food", "2024-01-01")
	b := newExpense(t, "B", "2", "Food", "2024-01-02")
	require.True(t, s.AddExpense(a))
	require.True(t, s.AddExpense(b))

	assert.False(t, s.DeleteExpense("missing"))
	assert.Equal(t, 2, m.Writes(), "no-op delete must not save")

	assert.True(t, s.DeleteExpense(a.ID))
	saved := storedExpenses(t, kv)
	require.Len(t, saved, 1)
	assert.Equal(t, b.ID, saved[0].ID)
}

func TestBudgetMutations(t *testing.T) {
	s, m, kv := openMemory(t)
	s.SetBudgets(nil)
	require.Equal(t, 1, m.Writes())

	assert.True(t, s.AddBudget("Food", decimal.NewFromInt(250), model.Monthly))
	assert.False(t, s.AddBudget("Food", decimal.NewFromInt(100), model.Yearly), "one budget per category")
	assert.False(t, s.AddBudget("", decimal.NewFromInt(100), model.Monthly))
	assert.False(t, s.AddBudget("Bills", decimal.Zero, model.Monthly))
	assert.True(t, s.AddBudget("Gifts", decimal.NewFromInt(50), model.Period("weekly")))

	budgets := s.Budgets()
	require.Len(t, budgets, 2)
	assert.Equal(t, "blue", budgets[0].Color)
	assert.Equal(t, model.NeutralColor, budgets[1].Color)
	assert.Equal(t, model.Monthly, budgets[1].Period)

	assert.True(t, s.RemoveBudget("Food"))
	assert.False(t, s.RemoveBudget("Food"))

	raw, ok, err := kv.Get(context.Background(), store.KeyBudgets)
	require.NoError(t, err)
	require.True(t, ok)
	var saved []model.Budget
	require.NoError(t, json.Unmarshal([]byte(raw), &saved))
	require.Len(t, saved, 1)
	assert.Equal(t, "Gifts", saved[0].Category)
	assert.Equal(t, 4, m.Writes())
}

func TestUnbudgetedCategories(t *testing.T) {
	s, _, _ := openMemory(t)
	names := []string{}
	for _, c := range s.Registry().UnbudgetedCategories() {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Other"}, names)
}

func TestViewReflectsFilterAndSort(t *testing.T) {
	s, _, _ := openMemory(t)
	require.True(t, s.AddExpense(newExpense(t, "Groceries", "50", "Food", "2024-01-05")))
	require.True(t, s.AddExpense(newExpense(t, "Lunch", "20", "Food", "2024-02-01")))
	require.True(t, s.AddExpense(newExpense(t, "Train", "30", "Transportation", "2024-01-15")))

	s.SetFilter(model.Filter{Category: "Food"})
	s.SetSort(model.SortConfig{Field: model.SortByAmount, Order: model.Ascending})
	s.SetChartView(model.ChartTimeline)
	s.SetChartView("bogus")

	v := s.View()
	require.Len(t, v.Expenses, 2)
	assert.Equal(t, "Lunch", v.Expenses[0].Description)
	assert.True(t, v.Summary.Total.Equal(decimal.NewFromInt(70)))
	assert.Equal(t, model.ChartTimeline, v.ChartView)
	require.Len(t, v.Months, 2)
	assert.Equal(t, "Feb 2024", v.Months[0].Label, "months follow the sorted list")

	// Budget usage ignores the filter and covers January only.
	require.NotEmpty(t, v.Budgets)
	assert.Equal(t, "Food", v.Budgets[0].Budget.Category)
	assert.True(t, v.Budgets[0].Spent.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, "Transportation", v.Budgets[1].Budget.Category)
	assert.True(t, v.Budgets[1].Spent.Equal(decimal.NewFromInt(30)))
}

func TestSetSortIgnoresInvalid(t *testing.T) {
	s, _, _ := openMemory(t)
	s.SetSort(model.SortConfig{Field: "price", Order: model.Ascending})
	assert.Equal(t, model.SortConfig{Field: model.SortByDate, Order: model.Ascending}, s.Sort())
}

func TestOpenLoadsStoredState(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	e := newExpense(t, "Coffee", "3.5", "Food", "2024-01-02")
	require.NoError(t, store.Save(ctx, kv, store.KeyExpenses, []model.Expense{e}))
	require.NoError(t, kv.Set(ctx, store.KeyBudgets, "{corrupt"))

	s, _ := Open(ctx, kv, Options{Logger: logging.Discard()})

	require.Len(t, s.Expenses(), 1)
	assert.Equal(t, e.ID, s.Expenses()[0].ID)
	assert.Equal(t, model.DefaultBudgets(), s.Budgets())
}

func TestOpenWithCustomCategories(t *testing.T) {
	cats := []model.Category{{Name: "Rent", Color: "red"}}
	s, _ := Open(context.Background(), store.NewMemory(), Options{Categories: cats, Logger: logging.Discard()})
	assert.Equal(t, cats, s.Categories())
	assert.Equal(t, model.NeutralColor, s.Registry().Color("Food"))
}

func TestMirrorKeepsStateOnWriteError(t *testing.T) {
	s, m, kv := openMemory(t)
	kv.Err = errors.New("read-only")

	require.True(t, s.AddExpense(newExpense(t, "A", "1", "Food", "2024-01-01")))

	assert.Len(t, s.Expenses(), 1, "in-memory state stays authoritative")
	require.Error(t, m.LastError())
	assert.ErrorIs(t, m.LastError(), kv.Err)

	kv.Err = nil
	require.True(t, s.AddExpense(newExpense(t, "B", "2", "Food", "2024-01-02")))
	assert.NoError(t, m.LastError(), "a successful write clears the error")
	assert.Len(t, storedExpenses(t, kv), 2)
}

func TestObserversRunInOrder(t *testing.T) {
	s, _, _ := openMemory(t)
	var got []string
	s.Subscribe(ObserverFunc(func(ev Event, _ *State) { got = append(got, "a:"+ev.String()) }))
	s.Subscribe(ObserverFunc(func(ev Event, _ *State) { got = append(got, "b:"+ev.String()) }))

	require.True(t, s.AddBudget("Other", decimal.NewFromInt(5), model.Yearly))
	assert.Equal(t, []string{"a:budgets", "b:budgets"}, got)
}
