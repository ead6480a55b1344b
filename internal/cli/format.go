// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/tally/internal/model"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatAmount formats a money amount with thousands separators and two
// decimals, e.g. 1234.5 -> "$1,234.50".
func FormatAmount(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + FormatAmount(d.Neg())
	}
	return "$" + humanize.FormatFloat("#,###.##", d.Round(2).InexactFloat64())
}

// FormatPercent formats a 0-100 percentage with one decimal.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatCount adds comma separators to an integer.
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// FormatDate renders a stored expense date for display in loc.
// Unparseable dates are shown as stored.
func FormatDate(date string, loc *time.Location) string {
	t := model.ParseDate(date)
	if t.IsZero() {
		return date
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format("Jan 02, 2006")
}

// FormatTags joins tags for a table cell.
func FormatTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return "#" + strings.Join(tags, " #")
}

// ShortID abbreviates an expense id for tables. Commands accept any unique prefix.
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// Truncate shortens s to at most n runes, marking the cut with an ellipsis.
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
