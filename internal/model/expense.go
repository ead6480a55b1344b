// Package model defines domain types for tally expenses, budgets, and derived views.
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DayLayout is the layout of a user-entered calendar day.
const DayLayout = "2006-01-02"

// DateLayout is the ISO-8601 layout expense dates are stored in. Dates compare
// lexicographically, so every stored date uses the same UTC layout.
const DateLayout = "2006-01-02T15:04:05.000Z07:00"

var (
	ErrEmptyDescription = errors.New("empty description")
	ErrInvalidAmount    = errors.New("invalid amount")
)

func init() {
	// Stored amounts are JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Expense is one recorded transaction. Expenses are never edited after creation.
type Expense struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
	Notes       string          `json:"notes,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
}

// ExpenseInput holds the user-supplied fields for a new expense.
type ExpenseInput struct {
	Description string
	Amount      decimal.Decimal
	Category    string
	Date        time.Time // zero means now
	Notes       string
	Tags        []string
}

// NewExpense validates input and builds an Expense with a fresh ID.
func NewExpense(in ExpenseInput) (Expense, error) {
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return Expense{}, ErrEmptyDescription
	}
	if in.Amount.IsNegative() {
		return Expense{}, ErrInvalidAmount
	}

	at := in.Date
	if at.IsZero() {
		at = time.Now()
	}

	return Expense{
		ID:          uuid.NewString(),
		Description: desc,
		Amount:      in.Amount,
		Category:    in.Category,
		Date:        FormatDate(at),
		Notes:       strings.TrimSpace(in.Notes),
		Tags:        NormalizeTags(in.Tags),
	}, nil
}

// Time parses the stored date. Unparseable dates yield the zero time.
func (e Expense) Time() time.Time {
	return ParseDate(e.Date)
}

// FormatDate renders t in the stored UTC layout.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ParseDate accepts full timestamps and bare YYYY-MM-DD dates (read as UTC midnight).
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}

// ParseDay reads a user-entered YYYY-MM-DD as UTC midnight, so the stored
// date keeps the typed day whatever the local zone is.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DayLayout, strings.TrimSpace(s))
}

// ParseAmount parses a user-entered amount. Comma decimal separators are accepted.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	if !strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// NormalizeTags trims tags and drops blanks and duplicates, keeping first occurrence.
// Returns nil when nothing remains.
func NormalizeTags(tags []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
