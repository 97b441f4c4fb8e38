package utils

import "time"

const DateFormatISO = "2006-01-02"

// Date builds a UTC calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOnly truncates a timestamp to its UTC calendar day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateFormatISO, value, time.UTC)
}

// WeekStart returns the Monday of the ISO week containing date.
func WeekStart(date time.Time) time.Time {
	d := DateOnly(date)
	weekday := int(d.Weekday())
	if weekday == 0 { // Sunday closes the ISO week
		weekday = 7
	}
	return d.AddDate(0, 0, -(weekday - 1))
}

// WeekEnd returns the Sunday of the ISO week containing date.
func WeekEnd(date time.Time) time.Time {
	return WeekStart(date).AddDate(0, 0, 6)
}

// MonthStart returns the first day of date's month.
func MonthStart(date time.Time) time.Time {
	return Date(date.Year(), date.Month(), 1)
}

// MonthEnd returns the last day of date's month.
func MonthEnd(date time.Time) time.Time {
	return MonthStart(date).AddDate(0, 1, -1)
}

// MonthStartComprehensive pads the month start back to a Monday so a month
// grid renders complete weeks.
func MonthStartComprehensive(date time.Time) time.Time {
	return WeekStart(MonthStart(date))
}

// MonthEndComprehensive pads the month end forward to a Sunday.
func MonthEndComprehensive(date time.Time) time.Time {
	return WeekEnd(MonthEnd(date))
}

// DaysBetween counts calendar days from start to end inclusive; zero for an
// inverted range.
func DaysBetween(start, end time.Time) int {
	s, e := DateOnly(start), DateOnly(end)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}
