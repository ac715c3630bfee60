package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekStartOf(t *testing.T) {
	loc := time.UTC
	tests := []struct {
		name string
		date time.Time
		want time.Time
	}{
		{
			name: "monday maps to itself",
			date: time.Date(2024, 1, 1, 15, 30, 0, 0, loc), // Monday
			want: time.Date(2024, 1, 1, 0, 0, 0, 0, loc),
		},
		{
			name: "sunday belongs to the preceding monday",
			date: time.Date(2024, 1, 7, 9, 0, 0, 0, loc), // Sunday
			want: time.Date(2024, 1, 1, 0, 0, 0, 0, loc),
		},
		{
			name: "wednesday mid-week",
			date: time.Date(2024, 6, 12, 23, 59, 59, 0, loc), // Wednesday
			want: time.Date(2024, 6, 10, 0, 0, 0, 0, loc),
		},
		{
			name: "year boundary",
			date: time.Date(2025, 1, 2, 8, 0, 0, 0, loc), // Thursday
			want: time.Date(2024, 12, 30, 0, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekStartOf(tt.date)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
			assert.Equal(t, time.Monday, got.Weekday())
		})
	}
}

func TestDaysOf_CoversReferenceDate(t *testing.T) {
	// Any date must fall inside its own week window, and the window must be
	// exactly 7 consecutive calendar days.
	dates := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC), // leap day
		time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 6, 6, 6, 6, 0, time.UTC),
	}

	for _, d := range dates {
		days := DaysOf(WeekStartOf(d))
		require.Len(t, days, 7)

		for i := 1; i < len(days); i++ {
			assert.True(t, days[i].Equal(days[i-1].AddDate(0, 0, 1)),
				"days must be consecutive: %s then %s", days[i-1], days[i])
		}

		window := WindowOf(d)
		assert.True(t, window.Contains(d), "date %s not inside its own week", d)
	}
}

func TestDaysOf_DSTTransition(t *testing.T) {
	// The window crossing a spring-forward transition still has 7 distinct
	// calendar days at local midnight.
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	// DST starts 2024-03-31 in Berlin.
	days := DaysOf(WeekStartOf(time.Date(2024, 3, 29, 10, 0, 0, 0, loc)))
	require.Len(t, days, 7)

	seen := map[int]bool{}
	for _, d := range days {
		assert.Equal(t, 0, d.Hour(), "day %s must start at local midnight", d)
		assert.False(t, seen[d.Day()], "duplicate calendar day %s", d)
		seen[d.Day()] = true
	}
}

func TestShiftWeek_RoundTrip(t *testing.T) {
	weekStart := WeekStartOf(time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC))

	for _, n := range []int{-52, -3, -1, 0, 1, 4, 104} {
		got := ShiftWeek(ShiftWeek(weekStart, n), -n)
		assert.True(t, got.Equal(weekStart), "shift %d did not round-trip: %s", n, got)
	}
}

func TestShiftWeek_NavigationScenario(t *testing.T) {
	// Monday 2024-01-01, two weeks forward, one back.
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	twoAhead := ShiftWeek(ShiftWeek(start, 1), 1)
	assert.True(t, twoAhead.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))

	oneBack := ShiftWeek(twoAhead, -1)
	assert.True(t, oneBack.Equal(time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)))
}
