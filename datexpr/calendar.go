package datexpr

import "time"

// Supported year bounds, inclusive.
const (
	MinYear = 1500
	MaxYear = 2500
)

var daysInMonth = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether the year is a leap year in the proleptic
// Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// LastDayOfMonth returns the number of days in the given month of the year.
// It returns 0 if the month is not in [1, 12].
func LastDayOfMonth(year int, month time.Month) int {
	if month < time.January || month > time.December {
		return 0
	}
	if month == time.February && IsLeapYear(year) {
		return 29
	}
	return daysInMonth[month-1]
}

func inScope(i, min, max int) bool {
	return i >= min && i <= max
}
