package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlow_DirectConfirmation(t *testing.T) {
	f := NewFlow()
	assert.Equal(t, StateIdle, f.State)

	f, effect, err := f.Apply(TriggerSubmit)
	require.NoError(t, err)
	assert.Equal(t, StateAwaitingSubmission, f.State)
	assert.Equal(t, EffectSubmitBooking, effect)

	f, effect, err = f.Apply(TriggerConfirmed)
	require.NoError(t, err)
	assert.Equal(t, StateCompleted, f.State)
	assert.Equal(t, EffectNone, effect)
	assert.True(t, f.Terminal())
}

func TestFlow_PaymentPath(t *testing.T) {
	f := NewFlow()

	f, _, err := f.Apply(TriggerSubmit)
	require.NoError(t, err)

	f, effect, err := f.Apply(TriggerPaymentRequired)
	require.NoError(t, err)
	assert.Equal(t, StateAwaitingPayment, f.State)
	assert.Equal(t, EffectSubmitPayment, effect)

	f, effect, err = f.Apply(TriggerPaymentSubmitted)
	require.NoError(t, err)
	assert.Equal(t, StateCompleted, f.State)
	assert.Equal(t, EffectNone, effect)
}

func TestFlow_ErrorFromAnyNonTerminalState(t *testing.T) {
	states := []FlowState{StateIdle, StateAwaitingSubmission, StateAwaitingPayment}
	for _, s := range states {
		f := Flow{State: s}
		next, effect, err := f.Apply(TriggerError)
		require.NoError(t, err, "state %s", s)
		assert.Equal(t, StateFailed, next.State)
		assert.Equal(t, EffectNone, effect)
	}

	for _, s := range []FlowState{StateCompleted, StateFailed} {
		f := Flow{State: s}
		next, _, err := f.Apply(TriggerError)
		assert.Error(t, err, "state %s", s)
		assert.Equal(t, s, next.State, "terminal state must not change")
	}
}

func TestFlow_InvalidTriggersLeaveStateUnchanged(t *testing.T) {
	cases := []struct {
		state   FlowState
		trigger Trigger
	}{
		{StateIdle, TriggerConfirmed},
		{StateIdle, TriggerPaymentSubmitted},
		{StateAwaitingSubmission, TriggerSubmit},
		{StateAwaitingSubmission, TriggerPaymentSubmitted},
		{StateAwaitingPayment, TriggerSubmit},
		{StateAwaitingPayment, TriggerPaymentRequired},
		{StateCompleted, TriggerSubmit},
		{StateFailed, TriggerSubmit},
	}

	for _, tc := range cases {
		f := Flow{State: tc.state}
		next, effect, err := f.Apply(tc.trigger)
		assert.Error(t, err, "%s in %s", tc.trigger, tc.state)
		assert.Equal(t, tc.state, next.State)
		assert.Equal(t, EffectNone, effect)
	}
}
