package pipeline

import (
	"fmt"
	"testing"
	"time"

	"github.com/theirongolddev/tally/internal/model"

	"github.com/shopspring/decimal"
)

func benchExpenses(n int) []model.Expense {
	cats := model.DefaultCategories()
	base := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	out := make([]model.Expense, n)
	for i := range out {
		out[i] = model.Expense{
			ID:          fmt.Sprintf("e%d", i),
			Description: fmt.Sprintf("Expense #%d", i),
			Amount:      decimal.NewFromFloat(float64(i%500) + 0.99),
			Category:    cats[i%len(cats)].Name,
			Date:        model.FormatDate(base.Add(time.Duration(i) * 7 * time.Hour)),
		}
	}
	return out
}

func BenchmarkDerive(b *testing.B) {
	expenses := benchExpenses(5000)
	opts := Options{
		Sort:       model.SortConfig{Field: model.SortByDescription, Order: model.Ascending},
		Categories: model.DefaultCategories(),
		Budgets:    model.DefaultBudgets(),
		Collator:   NewCollator("en-US"),
		Location:   time.UTC,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Derive(expenses, opts)
	}
}

func BenchmarkFilter(b *testing.B) {
	expenses := benchExpenses(5000)
	f := model.Filter{Category: "Food", Start: "2023-03-01", End: "2023-09-30"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Filter(expenses, f)
	}
}
