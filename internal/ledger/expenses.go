// Package ledger holds the mutable expense and budget collections, the state
// object the CLI and dashboard mutate, and the observer that mirrors every
// change to storage.
package ledger

import (
	"slices"

	"github.com/theirongolddev/tally/internal/model"
)

// Expenses is the newest-first expense collection. Order reflects insertion,
// not the expense date.
type Expenses struct {
	items []model.Expense
}

// NewExpenses wraps an already-ordered list.
func NewExpenses(initial []model.Expense) *Expenses {
	return &Expenses{items: slices.Clone(initial)}
}

// Add inserts e at the head.
func (s *Expenses) Add(e model.Expense) {
	s.items = slices.Insert(s.items, 0, e)
}

// Remove deletes the first expense with the given id and reports whether one
// was found.
func (s *Expenses) Remove(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	return true
}

// Get returns the expense with the given id.
func (s *Expenses) Get(id string) (model.Expense, bool) {
	i := s.index(id)
	if i < 0 {
		return model.Expense{}, false
	}
	return s.items[i], true
}

// All returns a copy of the collection in stored order.
func (s *Expenses) All() []model.Expense {
	out := slices.Clone(s.items)
	if out == nil {
		out = []model.Expense{}
	}
	return out
}

// Len returns the number of expenses.
func (s *Expenses) Len() int { return len(s.items) }

func (s *Expenses) index(id string) int {
	return slices.IndexFunc(s.items, func(e model.Expense) bool { return e.ID == id })
}
