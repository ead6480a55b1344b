package pipeline

import (
	"slices"

	"github.com/theirongolddev/tally/internal/model"
)

// Filter returns the expenses that match f, preserving input order.
// The result never aliases the input.
func Filter(expenses []model.Expense, f model.Filter) []model.Expense {
	if f.IsZero() {
		return slices.Clone(expenses)
	}

	result := make([]model.Expense, 0, len(expenses))
	for _, e := range expenses {
		if Matches(e, f) {
			result = append(result, e)
		}
	}
	return result
}

// Matches reports whether e passes the category and date-range predicate.
// Date bounds are inclusive and compared as strings, which orders ISO-8601
// dates correctly.
func Matches(e model.Expense, f model.Filter) bool {
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	if f.Start != "" && e.Date < f.Start {
		return false
	}
	if f.End != "" && e.Date > f.End {
		return false
	}
	return true
}
