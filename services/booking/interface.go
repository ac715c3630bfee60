package booking

import (
	"context"
	"time"

	"wellspring/models"
	"wellspring/services/schedule"
)

// WeekSchedule is the rendering surface for one professional's week: per-day
// session buckets with classification and eligibility, plus the login
// redirect path for RequiresLogin decisions.
type WeekSchedule struct {
	ProfessionalID string              `json:"professionalId"`
	BookingMode    string              `json:"bookingMode"`
	PaymentEnabled bool                `json:"paymentEnabled"`
	Window         schedule.WeekWindow `json:"window"`
	Days           []schedule.DayView  `json:"days"`
	LoginRedirect  string              `json:"loginRedirect"`
}

// BookingService drives the schedule view and the checkout flow.
type BookingService interface {
	WeeklySchedule(ctx context.Context, professionalID string, weekIndex int, viewer models.ViewerContext) (*WeekSchedule, error)
	InitiateCheckout(ctx context.Context, clientID, professionalID string) (*models.Checkout, error)
	SubmitBooking(ctx context.Context, checkoutID, sessionID, notes string) (*models.Booking, error)
	SubmitPayment(ctx context.Context, checkoutID, method string) (*models.Invoice, error)
	CancelCheckout(ctx context.Context, checkoutID string) error
	ApproveBooking(ctx context.Context, professionalID, bookingID string) (*models.Booking, error)
	ExpireStalePending(ctx context.Context, olderThan time.Duration) (int, error)
}

// PaymentHandler settles a booking's payment.
type PaymentHandler interface {
	ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
}
