package bookingRepo

import (
	"context"
	"time"

	"wellspring/models"
)

// BookingRepository persists booking records.
type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) error
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	GetByClientID(ctx context.Context, clientID string) ([]models.Booking, error)
	SetStatus(ctx context.Context, bookingID, status string) error
	SetPaymentStatus(ctx context.Context, bookingID, paymentStatus string) error
	// ListPendingCreatedBefore feeds the expiry worker: manual-approval
	// bookings the professional never acted on.
	ListPendingCreatedBefore(ctx context.Context, cutoff time.Time) ([]models.Booking, error)
	// ListConfirmedStartingBetween feeds the reminder worker.
	ListConfirmedStartingBetween(ctx context.Context, from, to time.Time) ([]models.Booking, error)
}
