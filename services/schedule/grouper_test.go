package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"wellspring/models"
)

func sessionAt(id string, start time.Time) models.Session {
	return models.Session{
		ID:              id,
		StartTime:       start,
		DurationMinutes: 60,
		MaxParticipants: 10,
	}
}

func TestSessionsOnDay_PreservesInputOrder(t *testing.T) {
	day := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)

	// Deliberately unsorted within the day.
	sessions := []models.Session{
		sessionAt("evening", day.Add(18*time.Hour)),
		sessionAt("elsewhere", day.AddDate(0, 0, 1).Add(9*time.Hour)),
		sessionAt("morning", day.Add(8*time.Hour)),
		sessionAt("noon", day.Add(12*time.Hour)),
	}

	got := SessionsOnDay(sessions, day)
	ids := make([]string, len(got))
	for i, s := range got {
		ids[i] = s.ID
	}
	assert.Equal(t, []string{"evening", "morning", "noon"}, ids)
}

func TestSessionsOnDay_Empty(t *testing.T) {
	day := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, SessionsOnDay(nil, day))
	assert.Empty(t, SessionsOnDay([]models.Session{
		sessionAt("other-day", day.AddDate(0, 0, 2)),
	}, day))
}

func TestSessionsOnDay_PartitionsWeek(t *testing.T) {
	// The union of per-day buckets over a week must equal exactly the input
	// sessions inside that week, each appearing under exactly one day.
	weekStart := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC) // Monday

	sessions := []models.Session{
		sessionAt("mon", weekStart.Add(10*time.Hour)),
		sessionAt("sun-late", weekStart.AddDate(0, 0, 6).Add(23*time.Hour)),
		sessionAt("before", weekStart.AddDate(0, 0, -1)),
		sessionAt("wed", weekStart.AddDate(0, 0, 2).Add(7*time.Hour)),
		sessionAt("after", weekStart.AddDate(0, 0, 7)),
		sessionAt("wed-2", weekStart.AddDate(0, 0, 2).Add(19*time.Hour)),
	}

	counts := map[string]int{}
	for _, day := range DaysOf(weekStart) {
		for _, s := range SessionsOnDay(sessions, day) {
			counts[s.ID]++
		}
	}

	assert.Equal(t, map[string]int{
		"mon":      1,
		"sun-late": 1,
		"wed":      1,
		"wed-2":    1,
	}, counts)
}
