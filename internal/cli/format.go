// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// NA is the uniform placeholder shown for every metric of an invalid scenario.
const NA = "N/A"

// FormatCurrency formats a dollar amount in US style: zero decimal places,
// standard thousands grouping. Non-finite amounts render as N/A; the
// float-to-int conversion below is undefined for them.
// e.g., 195000 -> "$195,000", -11000 -> "-$11,000"
func FormatCurrency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NA
	}
	n := int64(math.Round(v))
	if n < 0 {
		return "-$" + humanize.Comma(-n)
	}
	return "$" + humanize.Comma(n)
}

// FormatROI formats a first-year ROI percentage. +Inf means unbounded
// return (zero cost, positive savings) and renders as "Infinite %".
func FormatROI(v float64) string {
	if math.IsNaN(v) {
		return NA
	}
	if math.IsInf(v, 1) {
		return "Infinite %"
	}
	return fmt.Sprintf("%.1f%%", v)
}

// FormatPayback formats a payback period in months. +Inf means the
// implementation cost is never recovered and renders as "Never".
func FormatPayback(v float64) string {
	if math.IsNaN(v) {
		return NA
	}
	if math.IsInf(v, 1) {
		return "Never"
	}
	return fmt.Sprintf("%.1f months", v)
}

// FormatMonths formats a plain month count input (no Never sentinel).
func FormatMonths(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// FormatNumber adds comma separators to an integer.
func FormatNumber(n int64) string {
	return humanize.Comma(n)
}

// FormatHours formats an hours-per-week figure, dropping a trailing .0.
func FormatHours(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
