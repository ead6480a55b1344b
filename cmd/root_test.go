package cmd

import (
	"testing"

	"github.com/theirongolddev/tally/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFlagHelpNamesStringBound(t *testing.T) {
	f := rootCmd.PersistentFlags().Lookup("to")
	require.NotNil(t, f)
	assert.Contains(t, f.Usage, "compared as a date string")
	assert.Contains(t, f.Usage, "end date itself are excluded")
}

func TestDescribeFilter(t *testing.T) {
	assert.Equal(t, "", describeFilter(model.Filter{}))
	assert.Equal(t, "  Food  2024-01-01 to 2024-01-31",
		describeFilter(model.Filter{Category: "Food", Start: "2024-01-01", End: "2024-01-31"}))
	assert.Equal(t, "  until 2024-01-31", describeFilter(model.Filter{End: "2024-01-31"}))
}
