package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExpense(t *testing.T) {
	at := time.Date(2024, 1, 5, 10, 30, 0, 0, time.UTC)
	e, err := NewExpense(ExpenseInput{
		Description: "  Lunch ",
		Amount:      decimal.RequireFromString("12.50"),
		Category:    "Food",
		Date:        at,
		Tags:        []string{"work", " work", "", "team"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "Lunch", e.Description)
	assert.Equal(t, "2024-01-05T10:30:00.000Z", e.Date)
	assert.Equal(t, []string{"work", "team"}, e.Tags)
	assert.True(t, e.Time().Equal(at))
}

func TestNewExpenseRejectsInvalidInput(t *testing.T) {
	_, err := NewExpense(ExpenseInput{Description: "   ", Amount: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, ErrEmptyDescription)

	_, err = NewExpense(ExpenseInput{Description: "Refund", Amount: decimal.NewFromInt(-5)})
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestNewExpenseDefaultsDateToNow(t *testing.T) {
	before := time.Now().Add(-time.Second)
	e, err := NewExpense(ExpenseInput{Description: "Coffee", Amount: decimal.NewFromInt(3)})
	require.NoError(t, err)
	assert.True(t, e.Time().After(before))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"12.34", "12.34", false},
		{"12,34", "12.34", false},
		{" 0 ", "0", false},
		{"", "", true},
		{"abc", "", true},
		{"-3", "", true},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidAmount, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "ParseAmount(%q) = %s, want %s", tt.in, got, tt.want)
	}
}

func TestParseDate(t *testing.T) {
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), ParseDate("2024-02-01"))
	assert.True(t, ParseDate("not a date").IsZero())
	assert.True(t, ParseDate("").IsZero())
}

func TestParseDayKeepsTypedDayEastOfUTC(t *testing.T) {
	prev := time.Local
	time.Local = time.FixedZone("JST", 9*60*60)
	t.Cleanup(func() { time.Local = prev })

	day, err := ParseDay(" 2024-02-01 ")
	require.NoError(t, err)
	e, err := NewExpense(ExpenseInput{
		Description: "Rent",
		Amount:      decimal.NewFromInt(900),
		Category:    "Bills",
		Date:        day,
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01T00:00:00.000Z", e.Date)

	_, err = ParseDay("02/01/2024")
	assert.Error(t, err)
}

func TestExpenseJSONShape(t *testing.T) {
	e := Expense{
		ID:          "1",
		Description: "Bus",
		Amount:      decimal.RequireFromString("2.5"),
		Category:    "Transportation",
		Date:        "2024-01-15",
	}
	data, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","description":"Bus","amount":2.5,"category":"Transportation","date":"2024-01-15"}`, string(data))

	var back Expense
	require.NoError(t, json.Unmarshal([]byte(`{"id":"2","description":"x","amount":"7","category":"Other","date":"2024-03-01"}`), &back))
	assert.True(t, back.Amount.Equal(decimal.NewFromInt(7)))
}

func TestPeriodBounds(t *testing.T) {
	at := time.Date(2024, 2, 14, 9, 0, 0, 0, time.UTC)

	start, end := Monthly.Bounds(at)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), end)

	start, end = Yearly.Bounds(at)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), end)
}
