package calendar

import "time"

// DateOnly truncates a time to its calendar day at midnight UTC, the
// storage form for assignment dates.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
