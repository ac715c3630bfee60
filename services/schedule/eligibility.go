package schedule

import "wellspring/models"

// DecisionKind says what should happen when a viewer tries to book a session.
type DecisionKind int

const (
	// Allowed lets the booking flow proceed.
	Allowed DecisionKind = iota
	// RequiresLogin means the viewer must authenticate first; the caller is
	// responsible for preserving the original navigation intent.
	RequiresLogin
	// Blocked means the attempt must not proceed; Reason carries the
	// user-facing explanation.
	Blocked
)

func (k DecisionKind) String() string {
	switch k {
	case Allowed:
		return "allowed"
	case RequiresLogin:
		return "requiresLogin"
	case Blocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// Decision is the outcome of an eligibility check.
type Decision struct {
	Kind   DecisionKind `json:"kind"`
	Reason string       `json:"reason,omitempty"`
}

// Blocking reasons.
const (
	ReasonSessionOccurred   = "session already occurred"
	ReasonSessionAtCapacity = "session at capacity"
)

// CanAttemptBooking decides whether a booking attempt should proceed,
// redirect to login, or be blocked. Rules in order:
//
//  1. past classification blocks regardless of the viewer.
//  2. full classification blocks regardless of the viewer.
//  3. unauthenticated viewers are sent to login.
//  4. otherwise the attempt is allowed.
//
// The professional's booking mode and payment flag never change the
// outcome here; they only steer what happens after an Allowed decision.
func CanAttemptBooking(c Classification, viewer models.ViewerContext) Decision {
	switch c {
	case Past:
		return Decision{Kind: Blocked, Reason: ReasonSessionOccurred}
	case Full:
		return Decision{Kind: Blocked, Reason: ReasonSessionAtCapacity}
	}
	if !viewer.IsAuthenticated {
		return Decision{Kind: RequiresLogin}
	}
	return Decision{Kind: Allowed}
}
