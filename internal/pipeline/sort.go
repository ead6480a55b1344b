package pipeline

import (
	"slices"
	"sort"
	"strings"

	"github.com/theirongolddev/tally/internal/model"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator compares strings in a locale-aware way.
type Collator interface {
	CompareString(a, b string) int
}

// NewCollator returns a collator for the given BCP 47 locale, falling back to
// American English when the tag does not parse.
func NewCollator(locale string) *collate.Collator {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	return collate.New(tag)
}

// Compare returns the natural (ascending) ordering of a and b for field.
// A nil collator falls back to byte-wise comparison.
func Compare(a, b model.Expense, field model.SortField, coll Collator) int {
	switch field {
	case model.SortByDate:
		return a.Time().Compare(b.Time())
	case model.SortByAmount:
		return a.Amount.Cmp(b.Amount)
	case model.SortByDescription:
		return compareStrings(a.Description, b.Description, coll)
	case model.SortByCategory:
		return compareStrings(a.Category, b.Category, coll)
	default:
		return 0
	}
}

func compareStrings(a, b string, coll Collator) int {
	if coll == nil {
		return strings.Compare(a, b)
	}
	return coll.CompareString(a, b)
}

// Sort returns a sorted copy of expenses. The sort is stable: expenses with
// equal keys keep their input order in either direction.
func Sort(expenses []model.Expense, cfg model.SortConfig, coll Collator) []model.Expense {
	sign := 1
	if cfg.Order == model.Descending {
		sign = -1
	}

	sorted := slices.Clone(expenses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sign*Compare(sorted[i], sorted[j], cfg.Field, coll) < 0
	})
	return sorted
}
