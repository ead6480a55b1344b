package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := map[string]string{
		"0":        "$0.00",
		"3.5":      "$3.50",
		"1234.567": "$1,234.57",
		"1000000":  "$1,000,000.00",
		"-42.1":    "-$42.10",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatAmount(decimal.RequireFromString(in)), in)
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "0.0%", FormatPercent(0))
	assert.Equal(t, "37.5%", FormatPercent(37.5))
	assert.Equal(t, "125.0%", FormatPercent(125))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Jan 05, 2024", FormatDate("2024-01-05T08:00:00.000Z", time.UTC))
	assert.Equal(t, "Jan 05, 2024", FormatDate("2024-01-05", time.UTC))
	assert.Equal(t, "not a date", FormatDate("not a date", time.UTC))
}

func TestShortIDAndTruncate(t *testing.T) {
	assert.Equal(t, "3f2a9c1e", ShortID("3f2a9c1e-aaaa-bbbb-cccc-000000000000"))
	assert.Equal(t, "abc", ShortID("abc"))
	assert.Equal(t, "Grocer…", Truncate("Groceries", 7))
	assert.Equal(t, "Éclair", Truncate("Éclair", 6))
}

func TestFormatTags(t *testing.T) {
	assert.Equal(t, "", FormatTags(nil))
	assert.Equal(t, "#work #trip", FormatTags([]string{"work", "trip"}))
}

func TestColorFor(t *testing.T) {
	assert.Equal(t, ColorBlue, ColorFor("blue"))
	assert.Equal(t, ColorTextMuted, ColorFor(""))
	assert.Equal(t, lipgloss.Color("#123456"), ColorFor("#123456"))
}

func TestRenderTableAlignsColumns(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Category", "Amount"},
		Rows: [][]string{
			{"Food", "$70.00"},
			{"---"},
			{"Transportation", "$5.00"},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 7)
	width := lipgloss.Width(lines[0])
	for _, l := range lines {
		assert.Equal(t, width, lipgloss.Width(l), "ragged line %q", l)
	}
	assert.Contains(t, out, "Transportation")
	assert.Contains(t, out, " $5.00 ")
}

func TestBarCells(t *testing.T) {
	assert.Equal(t, 0, barCells(0, 20))
	assert.Equal(t, 1, barCells(0.1, 20))
	assert.Equal(t, 10, barCells(50, 20))
	assert.Equal(t, 20, barCells(250, 20))
}
