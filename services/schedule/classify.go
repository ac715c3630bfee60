package schedule

import (
	"time"

	"wellspring/models"
)

// Classification is the derived availability label of a session at a point
// in time. It is recomputed on every evaluation; never cached, since "now"
// and participant counts move between calls.
type Classification int

const (
	// Past sessions have already started. Nothing about them is actionable,
	// so Past wins over Full when both hold.
	Past Classification = iota
	// Full sessions have no remaining capacity.
	Full
	// Available sessions can still be booked.
	Available
)

func (c Classification) String() string {
	switch c {
	case Past:
		return "past"
	case Full:
		return "full"
	case Available:
		return "available"
	default:
		return "unknown"
	}
}

// Classify labels a session relative to now. Decision order, first match
// wins:
//
//  1. past      — the session's start time is before now.
//  2. full      — participant count has reached (or exceeded) capacity.
//  3. available — otherwise.
//
// Overbooked sessions (count > capacity) classify as full; the >= check is
// deliberate.
func Classify(s models.Session, now time.Time) Classification {
	if s.StartTime.Before(now) {
		return Past
	}
	if s.ParticipantCount >= s.MaxParticipants {
		return Full
	}
	return Available
}
