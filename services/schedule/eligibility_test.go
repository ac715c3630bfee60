package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wellspring/models"
)

func TestCanAttemptBooking(t *testing.T) {
	authed := models.ViewerContext{IsAuthenticated: true}
	anon := models.ViewerContext{IsAuthenticated: false}

	tests := []struct {
		name           string
		classification Classification
		viewer         models.ViewerContext
		want           Decision
	}{
		{
			name:           "available and authenticated",
			classification: Available,
			viewer:         authed,
			want:           Decision{Kind: Allowed},
		},
		{
			name:           "available but anonymous",
			classification: Available,
			viewer:         anon,
			want:           Decision{Kind: RequiresLogin},
		},
		{
			name:           "full blocks even when authenticated",
			classification: Full,
			viewer:         authed,
			want:           Decision{Kind: Blocked, Reason: ReasonSessionAtCapacity},
		},
		{
			name:           "past blocks regardless of auth",
			classification: Past,
			viewer:         anon,
			want:           Decision{Kind: Blocked, Reason: ReasonSessionOccurred},
		},
		{
			name:           "past blocks authenticated viewers too",
			classification: Past,
			viewer:         authed,
			want:           Decision{Kind: Blocked, Reason: ReasonSessionOccurred},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAttemptBooking(tt.classification, tt.viewer))
		})
	}
}

func TestCanAttemptBooking_LoginMonotonicity(t *testing.T) {
	// If a decision is Allowed, flipping only IsAuthenticated to false must
	// yield RequiresLogin, never Allowed or Blocked.
	for _, c := range []Classification{Past, Full, Available} {
		authed := CanAttemptBooking(c, models.ViewerContext{IsAuthenticated: true})
		if authed.Kind != Allowed {
			continue
		}
		anon := CanAttemptBooking(c, models.ViewerContext{IsAuthenticated: false})
		assert.Equal(t, RequiresLogin, anon.Kind)
	}
}

func TestCanAttemptBooking_BookingModeIsIrrelevant(t *testing.T) {
	// auto vs manual mode and the payment flag never change eligibility.
	for _, mode := range []string{models.BookingModeAuto, models.BookingModeManual} {
		for _, paid := range []bool{true, false} {
			viewer := models.ViewerContext{
				IsAuthenticated:            true,
				ProfessionalBookingMode:    mode,
				ProfessionalPaymentEnabled: paid,
			}
			assert.Equal(t, Allowed, CanAttemptBooking(Available, viewer).Kind)
		}
	}
}
