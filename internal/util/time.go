package util

import (
	"time"
)

const (
	// DateFormat is the ISO calendar-date format used for every exported date.
	DateFormat = "2006-01-02"

	// DaysPerYear is the year length used by trend, seasonality and annualized demand.
	DaysPerYear = 365
)

// Midnight truncates t to the start of its calendar day in UTC.
func Midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddDays returns the calendar day n days after t.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DaysBetween calculates the number of whole days from one date to another.
// The result is negative when to is before from.
func DaysBetween(from, to time.Time) int {
	from = Midnight(from)
	to = Midnight(to)

	return int(to.Sub(from).Hours() / 24)
}

// WeekdayIndex returns the day of week with Monday = 0 and Sunday = 6.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// Quarter returns the calendar quarter (1-4) of t.
func Quarter(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

// MonthEnd returns the last calendar day of the month containing t.
func MonthEnd(t time.Time) time.Time {
	firstOfNext := time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	return firstOfNext.AddDate(0, 0, -1)
}

// FormatDate formats a time as a date string.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// ParseDate parses a date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}
