package format

import "time"

// Date layouts matching the en-ZA locale output the frontend renders.
const (
	shortDateLayout   = "2 Jan 2006"
	longDateLayout    = "2 January 2006"
	numericDateLayout = "2006/01/02"
	monthYearLayout   = "January 2006"
	isoDateLayout     = "2006-01-02"
)

// ShortDate renders a date as day, short month, year, e.g. "15 Jan 2025".
func ShortDate(t time.Time) string {
	return t.Format(shortDateLayout)
}

// LongDate renders a date as day, full month, year, e.g. "15 January 2025".
func LongDate(t time.Time) string {
	return t.Format(longDateLayout)
}

// NumericDate renders the en-ZA default date, e.g. "2025/01/15".
func NumericDate(t time.Time) string {
	return t.Format(numericDateLayout)
}

// MonthYear renders a payslip period, e.g. "January 2025".
func MonthYear(t time.Time) string {
	return t.Format(monthYearLayout)
}

// ISODate renders the wire-format date, e.g. "2025-01-15".
func ISODate(t time.Time) string {
	return t.Format(isoDateLayout)
}
