package calendar

import (
	"fmt"
	"strings"
	"time"
)

const daysPerWeek = 7

// MonthBounds returns the first and last calendar day of a month, at
// midnight UTC.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// MonthGrid returns the ordered dates needed to render a 7-column grid for
// a month: full weeks only, beginning on the first weekStart on or before
// the 1st and ending on the last day of the week containing the month's
// final day. Leading and trailing dates belong to the adjacent months.
func MonthGrid(year int, month time.Month, weekStart time.Weekday) []time.Time {
	first, last := MonthBounds(year, month)

	lead := (int(first.Weekday()) - int(weekStart) + daysPerWeek) % daysPerWeek
	start := first.AddDate(0, 0, -lead)

	trail := (daysPerWeek - 1) - (int(last.Weekday())-int(weekStart)+daysPerWeek)%daysPerWeek
	end := last.AddDate(0, 0, trail)

	days := int(end.Sub(start).Hours()/24) + 1
	grid := make([]time.Time, 0, days)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		grid = append(grid, d)
	}
	return grid
}

// PrevMonth returns the month before (year, month), wrapping the year at
// January.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// NextMonth returns the month after (year, month), wrapping the year at
// December.
func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

// ParseWeekStart maps a weekday name ("sunday", "monday", ...) to its
// time.Weekday.
func ParseWeekStart(name string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	}
	return time.Sunday, fmt.Errorf("invalid week start day: %q", name)
}
