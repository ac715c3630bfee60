package schedule

import (
	"time"

	"wellspring/models"
)

// SessionView pairs a session with its derived classification and the
// viewer's eligibility decision.
type SessionView struct {
	Session        models.Session `json:"session"`
	Classification Classification `json:"classification"`
	Decision       Decision       `json:"decision"`
}

// DayView is one calendar day's bucket of session views, in input order.
type DayView struct {
	Day      time.Time     `json:"day"`
	Sessions []SessionView `json:"sessions"`
}

// Planner composes the week window, day grouping, classification and
// eligibility gate behind previous/next-week navigation. It holds no durable
// state and performs no I/O: callers supply the session snapshot and the
// evaluation timestamp.
type Planner struct {
	window   WeekWindow
	sessions []models.Session
}

// NewPlanner starts a planner on the week containing reference.
func NewPlanner(reference time.Time, sessions []models.Session) *Planner {
	return &Planner{
		window:   WindowOf(reference),
		sessions: sessions,
	}
}

// Window returns the currently displayed week.
func (p *Planner) Window() WeekWindow {
	return p.window
}

// SetSessions replaces the session snapshot, e.g. after a refetch.
func (p *Planner) SetSessions(sessions []models.Session) {
	p.sessions = sessions
}

// PreviousWeek moves the window one week back.
func (p *Planner) PreviousWeek() {
	p.window = p.window.Shift(-1)
}

// NextWeek moves the window one week forward.
func (p *Planner) NextWeek() {
	p.window = p.window.Shift(1)
}

// DaySessions returns the snapshot's sessions on the given calendar day.
func (p *Planner) DaySessions(day time.Time) []models.Session {
	return SessionsOnDay(p.sessions, day)
}

// Evaluate classifies a session and gates the viewer's booking attempt
// against the supplied timestamp. Results are computed fresh on every call.
func (p *Planner) Evaluate(s models.Session, viewer models.ViewerContext, now time.Time) (Classification, Decision) {
	c := Classify(s, now)
	return c, CanAttemptBooking(c, viewer)
}

// WeekView renders the current window as per-day session buckets. The whole
// pass uses the single now passed in and the current session snapshot, so a
// session cannot flip classification between two entries of the same view.
func (p *Planner) WeekView(viewer models.ViewerContext, now time.Time) []DayView {
	days := p.window.Days()
	view := make([]DayView, 0, len(days))
	for _, day := range days {
		sessions := SessionsOnDay(p.sessions, day)
		views := make([]SessionView, 0, len(sessions))
		for _, s := range sessions {
			c, d := p.Evaluate(s, viewer, now)
			views = append(views, SessionView{Session: s, Classification: c, Decision: d})
		}
		view = append(view, DayView{Day: day, Sessions: views})
	}
	return view
}
