package booking

import "fmt"

// FlowState is a stage of the booking checkout flow.
type FlowState string

const (
	StateIdle               FlowState = "idle"
	StateAwaitingSubmission FlowState = "awaiting_submission"
	StateAwaitingPayment    FlowState = "awaiting_payment"
	StateCompleted          FlowState = "completed"
	StateFailed             FlowState = "failed"
)

// Trigger advances the flow.
type Trigger string

const (
	// TriggerSubmit starts a booking attempt.
	TriggerSubmit Trigger = "submit"
	// TriggerConfirmed reports the booking was accepted and no payment step
	// is needed.
	TriggerConfirmed Trigger = "confirmed"
	// TriggerPaymentRequired reports the booking was accepted and the
	// professional collects payment online.
	TriggerPaymentRequired Trigger = "paymentRequired"
	// TriggerPaymentSubmitted reports the payment step finished.
	TriggerPaymentSubmitted Trigger = "paymentSubmitted"
	// TriggerError aborts the flow from any non-terminal state.
	TriggerError Trigger = "error"
)

// Effect is a side-effect request returned with a transition. The flow never
// performs the effect itself; the caller does.
type Effect string

const (
	EffectNone          Effect = ""
	EffectSubmitBooking Effect = "submitBooking"
	EffectSubmitPayment Effect = "submitPayment"
)

// Flow is the explicit state machine behind a checkout. It is a value: Apply
// returns the next flow and leaves the receiver untouched, so an invalid
// trigger cannot corrupt stored state.
type Flow struct {
	State FlowState `json:"state"`
}

// NewFlow returns a flow in the idle state.
func NewFlow() Flow {
	return Flow{State: StateIdle}
}

// Terminal reports whether the flow can no longer advance.
func (f Flow) Terminal() bool {
	return f.State == StateCompleted || f.State == StateFailed
}

// Apply advances the flow by one trigger, returning the next flow and the
// side effect the caller should run. Invalid triggers return an error with
// the flow unchanged.
func (f Flow) Apply(t Trigger) (Flow, Effect, error) {
	if t == TriggerError {
		if f.Terminal() {
			return f, EffectNone, fmt.Errorf("flow already terminal in state %q", f.State)
		}
		return Flow{State: StateFailed}, EffectNone, nil
	}

	switch f.State {
	case StateIdle:
		if t == TriggerSubmit {
			return Flow{State: StateAwaitingSubmission}, EffectSubmitBooking, nil
		}
	case StateAwaitingSubmission:
		switch t {
		case TriggerConfirmed:
			return Flow{State: StateCompleted}, EffectNone, nil
		case TriggerPaymentRequired:
			return Flow{State: StateAwaitingPayment}, EffectSubmitPayment, nil
		}
	case StateAwaitingPayment:
		if t == TriggerPaymentSubmitted {
			return Flow{State: StateCompleted}, EffectNone, nil
		}
	}

	return f, EffectNone, fmt.Errorf("invalid trigger %q in state %q", t, f.State)
}
