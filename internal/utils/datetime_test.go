package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeekStartEnd(t *testing.T) {
	// 2024-06-20 is a Thursday.
	thursday := Date(2024, 6, 20)

	assert.Equal(t, Date(2024, 6, 17), WeekStart(thursday))
	assert.Equal(t, Date(2024, 6, 23), WeekEnd(thursday))

	// A Monday starts its own week.
	monday := Date(2024, 6, 17)
	assert.Equal(t, monday, WeekStart(monday))

	// A Sunday closes the week that started six days earlier.
	sunday := Date(2024, 6, 23)
	assert.Equal(t, Date(2024, 6, 17), WeekStart(sunday))
	assert.Equal(t, sunday, WeekEnd(sunday))
}

func TestMonthStartEnd(t *testing.T) {
	d := Date(2024, 6, 20)

	assert.Equal(t, Date(2024, 6, 1), MonthStart(d))
	assert.Equal(t, Date(2024, 6, 30), MonthEnd(d))

	// Leap February.
	feb := Date(2024, 2, 10)
	assert.Equal(t, Date(2024, 2, 29), MonthEnd(feb))
}

func TestComprehensiveMonth(t *testing.T) {
	// June 2024 starts on a Saturday and ends on a Sunday.
	d := Date(2024, 6, 20)

	assert.Equal(t, Date(2024, 5, 27), MonthStartComprehensive(d))
	assert.Equal(t, Date(2024, 6, 30), MonthEndComprehensive(d))

	// September 2024 starts on a Sunday, so the grid opens the previous Monday.
	sep := Date(2024, 9, 15)
	assert.Equal(t, Date(2024, 8, 26), MonthStartComprehensive(sep))
	assert.Equal(t, Date(2024, 10, 6), MonthEndComprehensive(sep))
}

func TestDaysBetween(t *testing.T) {
	start := Date(2024, 6, 17)

	assert.Equal(t, 1, DaysBetween(start, start))
	assert.Equal(t, 7, DaysBetween(start, start.AddDate(0, 0, 6)))
	assert.Equal(t, 0, DaysBetween(start, start.AddDate(0, 0, -1)))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-20")
	assert.NoError(t, err)
	assert.Equal(t, Date(2024, 6, 20), d)

	_, err = ParseDate("20/06/2024")
	assert.Error(t, err)
}
