package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellspring/models"
)

func TestPlanner_Navigation(t *testing.T) {
	ref := time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC) // Wednesday
	p := NewPlanner(ref, nil)

	monday := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, p.Window().WeekStart.Equal(monday))

	p.NextWeek()
	p.NextWeek()
	assert.True(t, p.Window().WeekStart.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))

	p.PreviousWeek()
	assert.True(t, p.Window().WeekStart.Equal(time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)))

	// Round-trip returns to the original window.
	p.PreviousWeek()
	assert.True(t, p.Window().WeekStart.Equal(monday))
}

func TestPlanner_WeekView(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC) // Monday noon
	weekStart := WeekStartOf(now)

	sessions := []models.Session{
		{
			ID:               "this-morning",
			StartTime:        weekStart.Add(8 * time.Hour), // Monday 08:00, already over
			MaxParticipants:  10,
			ParticipantCount: 4,
		},
		{
			ID:               "tomorrow-full",
			StartTime:        weekStart.AddDate(0, 0, 1).Add(9 * time.Hour),
			MaxParticipants:  5,
			ParticipantCount: 5,
		},
		{
			ID:               "friday-open",
			StartTime:        weekStart.AddDate(0, 0, 4).Add(17 * time.Hour),
			MaxParticipants:  12,
			ParticipantCount: 3,
		},
		{
			ID:              "next-week",
			StartTime:       weekStart.AddDate(0, 0, 9),
			MaxParticipants: 12,
		},
	}

	p := NewPlanner(now, sessions)
	viewer := models.ViewerContext{IsAuthenticated: true}

	view := p.WeekView(viewer, now)
	require.Len(t, view, 7)

	byID := map[string]SessionView{}
	total := 0
	for _, day := range view {
		for _, sv := range day.Sessions {
			byID[sv.Session.ID] = sv
			total++
		}
	}

	// Only this week's sessions appear, each exactly once.
	assert.Equal(t, 3, total)
	assert.NotContains(t, byID, "next-week")

	assert.Equal(t, Past, byID["this-morning"].Classification)
	assert.Equal(t, Blocked, byID["this-morning"].Decision.Kind)

	assert.Equal(t, Full, byID["tomorrow-full"].Classification)
	assert.Equal(t, ReasonSessionAtCapacity, byID["tomorrow-full"].Decision.Reason)

	assert.Equal(t, Available, byID["friday-open"].Classification)
	assert.Equal(t, Allowed, byID["friday-open"].Decision.Kind)
}

func TestPlanner_WeekViewAnonymousViewer(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	open := models.Session{
		ID:               "open",
		StartTime:        now.AddDate(0, 0, 1),
		MaxParticipants:  10,
		ParticipantCount: 3,
	}

	p := NewPlanner(now, []models.Session{open})
	view := p.WeekView(models.ViewerContext{IsAuthenticated: false}, now)

	var found *SessionView
	for _, day := range view {
		for i := range day.Sessions {
			if day.Sessions[i].Session.ID == "open" {
				found = &day.Sessions[i]
			}
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, Available, found.Classification)
	assert.Equal(t, RequiresLogin, found.Decision.Kind)
}

func TestPlanner_ConsistentNowAcrossPass(t *testing.T) {
	// A session starting mid-pass must classify against the single now the
	// caller passed in, not a re-read clock.
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	boundary := models.Session{
		ID:               "boundary",
		StartTime:        now, // not before now, so not past
		MaxParticipants:  10,
		ParticipantCount: 0,
	}

	p := NewPlanner(now, []models.Session{boundary})
	c, _ := p.Evaluate(boundary, models.ViewerContext{IsAuthenticated: true}, now)
	assert.Equal(t, Available, c)

	// Same session, one second later: the new pass sees it as past.
	c, d := p.Evaluate(boundary, models.ViewerContext{IsAuthenticated: true}, now.Add(time.Second))
	assert.Equal(t, Past, c)
	assert.Equal(t, Blocked, d.Kind)
}

func TestPlanner_DaySessionsAfterRefetch(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	day := WeekStartOf(now).AddDate(0, 0, 2)

	p := NewPlanner(now, nil)
	assert.Empty(t, p.DaySessions(day))

	p.SetSessions([]models.Session{{ID: "wed", StartTime: day.Add(10 * time.Hour), MaxParticipants: 8}})
	got := p.DaySessions(day)
	require.Len(t, got, 1)
	assert.Equal(t, "wed", got[0].ID)
}
