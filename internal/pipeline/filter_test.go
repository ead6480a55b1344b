package pipeline

import (
	"testing"

	"github.com/theirongolddev/tally/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestFilterUnsetIsIdentity(t *testing.T) {
	in := scenario()
	out := Filter(in, model.Filter{})
	assert.Equal(t, in, out)

	out[0].Description = "changed"
	assert.Equal(t, "Groceries", in[0].Description, "filter result must not alias input")
}

func TestFilterCategory(t *testing.T) {
	in := scenario()
	out := Filter(in, model.Filter{Category: "Food"})

	assert.Len(t, out, 2)
	for _, e := range out {
		assert.Equal(t, "Food", e.Category)
	}
	assert.Empty(t, Filter(in, model.Filter{Category: "food"}), "category match is case-sensitive")
}

func TestFilterDateRange(t *testing.T) {
	in := scenario()

	tests := []struct {
		name       string
		start, end string
		wantIDs    []string
	}{
		{"open", "", "", []string{"1", "2", "3"}},
		{"start only", "2024-01-10", "", []string{"2", "3"}},
		{"end only", "", "2024-01-15", []string{"1", "3"}},
		{"both inclusive", "2024-01-05", "2024-01-15", []string{"1", "3"}},
		{"empty window", "2024-03-01", "2024-03-31", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ids []string
			for _, e := range Filter(in, model.Filter{Start: tt.start, End: tt.end}) {
				ids = append(ids, e.ID)
				if tt.start != "" {
					assert.GreaterOrEqual(t, e.Date, tt.start)
				}
				if tt.end != "" {
					assert.LessOrEqual(t, e.Date, tt.end)
				}
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterTimestampAgainstDateBound(t *testing.T) {
	// Bounds compare as strings: a timestamp later on the end day sorts after it.
	e := exp("1", "x", "1", "Food", "2024-01-31T09:00:00.000Z")
	assert.False(t, Matches(e, model.Filter{End: "2024-01-31"}))
	assert.True(t, Matches(e, model.Filter{Start: "2024-01-31"}))
}
