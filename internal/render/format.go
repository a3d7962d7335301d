// Package render turns normalized delivery lines and their aggregates into
// outbound artifacts: HTML email bodies, workbooks, calendars and CSV exports.
// Every renderer is a pure function of its input.
package render

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatQuantity renders a quantity with thousands separators. Whole numbers
// carry no decimals.
func FormatQuantity(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return printer.Sprintf("%d", int64(v))
	}
	return printer.Sprintf("%.2f", v)
}

// FormatPercent renders an optional percentage, "-" when unknown.
func FormatPercent(v *float64) string {
	if v == nil {
		return "-"
	}
	return printer.Sprintf("%.1f%%", *v)
}

// FormatOptional renders an optional quantity, "-" when unknown.
func FormatOptional(v *float64) string {
	if v == nil {
		return "-"
	}
	return FormatQuantity(*v)
}

// FormatDate renders a calendar date as "2006-01-02", empty for zero dates.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// FormatDatePtr is FormatDate for optional dates.
func FormatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatDate(*t)
}

// LongDate renders "Mon, Jan 02 2006".
func LongDate(t time.Time) string {
	return t.Format("Mon, Jan 02 2006")
}
