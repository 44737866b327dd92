package services

import (
	"fmt"
	"time"
)

// DateKeyLayout is the canonical log key format. Sorting keys as strings is
// identical to sorting them chronologically.
const DateKeyLayout = "2006-01-02"

func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekdayOfMonth returns the weekday index of the 1st, 0 = Sunday,
// used to pad the 7-column calendar grid.
func FirstWeekdayOfMonth(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

func ToDateKey(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

func DateKey(value time.Time) string {
	return value.Format(DateKeyLayout)
}

func ParseDateKey(value string) (time.Time, error) {
	parsed, err := time.Parse(DateKeyLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date key %q: %w", value, err)
	}
	return parsed, nil
}

func IsSameCalendarDay(a, b time.Time) bool {
	aYear, aMonth, aDay := a.Date()
	bYear, bMonth, bDay := b.Date()
	return aYear == bYear && aMonth == bMonth && aDay == bDay
}

// DaysBetween counts whole calendar days from a to b, ignoring time-of-day
// and location.
func DaysBetween(a, b time.Time) int {
	aYear, aMonth, aDay := a.Date()
	bYear, bMonth, bDay := b.Date()
	start := time.Date(aYear, aMonth, aDay, 0, 0, 0, 0, time.UTC)
	end := time.Date(bYear, bMonth, bDay, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}
