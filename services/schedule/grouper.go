package schedule

import (
	"time"

	"wellspring/models"
)

// SameDay reports whether a and b fall on the same calendar day
// (year, month, day-of-month).
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// SessionsOnDay returns every session whose start time falls on the same
// calendar day as day, in the same relative order as the input. The input is
// not assumed to be sorted and is never re-sorted. No matches yields an
// empty result, not an error.
func SessionsOnDay(sessions []models.Session, day time.Time) []models.Session {
	var matched []models.Session
	for _, s := range sessions {
		if SameDay(s.StartTime, day) {
			matched = append(matched, s)
		}
	}
	return matched
}
