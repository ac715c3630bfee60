package schedule

import "time"

// WeekWindow is the 7 consecutive calendar days currently displayed to a
// viewer. It is a value: navigation produces a new window, never mutates one.
type WeekWindow struct {
	WeekStart time.Time `json:"weekStart"`
}

// WeekStartOf returns the Monday at 00:00:00 local time of the week
// containing t (ISO week, Monday first).
func WeekStartOf(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	// time.Weekday has Sunday == 0; shift so Monday == 0.
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// ShiftWeek returns weekStart moved by deltaWeeks whole weeks, preserving
// 00:00:00 local time. Day arithmetic is calendar-based so DST transitions
// never skip or duplicate a day.
func ShiftWeek(weekStart time.Time, deltaWeeks int) time.Time {
	return weekStart.AddDate(0, 0, deltaWeeks*7)
}

// DaysOf returns the 7 consecutive calendar dates starting at weekStart.
func DaysOf(weekStart time.Time) [7]time.Time {
	var days [7]time.Time
	for i := range days {
		days[i] = weekStart.AddDate(0, 0, i)
	}
	return days
}

// WindowOf returns the week window containing the reference date.
func WindowOf(reference time.Time) WeekWindow {
	return WeekWindow{WeekStart: WeekStartOf(reference)}
}

// Days returns the window's 7 calendar dates.
func (w WeekWindow) Days() [7]time.Time {
	return DaysOf(w.WeekStart)
}

// Shift returns a new window moved by deltaWeeks.
func (w WeekWindow) Shift(deltaWeeks int) WeekWindow {
	return WeekWindow{WeekStart: ShiftWeek(w.WeekStart, deltaWeeks)}
}

// Contains reports whether t falls on one of the window's calendar days.
func (w WeekWindow) Contains(t time.Time) bool {
	for _, d := range w.Days() {
		if SameDay(t, d) {
			return true
		}
	}
	return false
}
