// File: services/booking/service.go
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "wellspring/database/repository/booking"
	professionalRepo "wellspring/database/repository/professional"
	sessionRepo "wellspring/database/repository/session"
	"wellspring/models"
	"wellspring/services/notification"
	"wellspring/services/schedule"
	"wellspring/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService is the production booking engine.
type DefaultBookingService struct {
	SessionRepo      sessionRepo.SessionRepository
	BookingRepo      bookingRepo.BookingRepository
	ProfessionalRepo professionalRepo.ProfessionalRepository
	Checkouts        CheckoutStore
	PaymentHandler   PaymentHandler
	Notification     notification.NotificationService

	// Now is the clock for schedule evaluation; tests inject a fixed one.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultBookingService) dropCheckout(ctx context.Context, checkoutID string) {
	if err := s.Checkouts.Delete(ctx, checkoutID); err != nil {
		utils.GetLogger().Warn("failed to drop checkout",
			zap.String("checkoutID", checkoutID), zap.Error(err))
	}
}

// WeeklySchedule renders one professional's week at the given offset from
// the current week. The whole pass uses one timestamp and one session
// snapshot; every session carries its classification and the viewer's
// eligibility decision.
func (s *DefaultBookingService) WeeklySchedule(ctx context.Context, professionalID string, weekIndex int, viewer models.ViewerContext) (*WeekSchedule, error) {
	logger := utils.GetLogger()

	professional, err := s.ProfessionalRepo.GetByID(ctx, professionalID)
	if err != nil {
		return nil, fmt.Errorf("professional not found: %w", err)
	}
	viewer.ProfessionalBookingMode = professional.BookingMode
	viewer.ProfessionalPaymentEnabled = professional.PaymentEnabled

	now := s.now()
	weekStart := schedule.ShiftWeek(schedule.WeekStartOf(now), weekIndex)

	sessions, err := s.SessionRepo.GetByProfessionalFrom(ctx, professionalID, weekStart)
	if err != nil {
		logger.Error("WeeklySchedule: error fetching sessions",
			zap.String("professionalID", professionalID), zap.Error(err))
		// Render an empty week rather than failing the page; the caller's
		// loading state owns the fetch-failure distinction.
		sessions = nil
	}

	planner := schedule.NewPlanner(weekStart, sessions)

	return &WeekSchedule{
		ProfessionalID: professionalID,
		BookingMode:    professional.BookingMode,
		PaymentEnabled: professional.PaymentEnabled,
		Window:         planner.Window(),
		Days:           planner.WeekView(viewer, now),
		LoginRedirect:  fmt.Sprintf("/professionals/%s/schedule?week=%d", professionalID, weekIndex),
	}, nil
}

// SubmitBooking finalizes a checkout against a fresh session read. The
// schedule view's classification is advisory; this is the authoritative
// check, so a session that looked available can still be rejected here.
func (s *DefaultBookingService) SubmitBooking(ctx context.Context, checkoutID, sessionID, notes string) (*models.Booking, error) {
	logger := utils.GetLogger()

	checkout, err := s.Checkouts.Load(ctx, checkoutID)
	if err != nil {
		return nil, err
	}

	flow := Flow{State: FlowState(checkout.State)}
	flow, _, err = flow.Apply(TriggerSubmit)
	if err != nil {
		return nil, err
	}

	session, err := s.SessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	now := s.now()
	switch schedule.Classify(*session, now) {
	case schedule.Past:
		return nil, ErrSessionPast
	case schedule.Full:
		return nil, ErrSessionFull
	}

	professional, err := s.ProfessionalRepo.GetByID(ctx, session.ProfessionalID)
	if err != nil {
		return nil, fmt.Errorf("professional not found: %w", err)
	}

	if err := s.SessionRepo.IncrementParticipants(ctx, sessionID); err != nil {
		if errors.Is(err, sessionRepo.ErrCapacityExhausted) {
			return nil, ErrSessionFull
		}
		return nil, fmt.Errorf("failed to reserve seat: %w", err)
	}

	status := models.BookingStatusConfirmed
	if professional.BookingMode == models.BookingModeManual {
		status = models.BookingStatusPending
	}
	paymentStatus := models.PaymentStatusNone
	if professional.PaymentEnabled {
		paymentStatus = models.PaymentStatusPending
	}

	booking := models.Booking{
		ID:             uuid.New().String(),
		SessionID:      session.ID,
		ProfessionalID: session.ProfessionalID,
		ClientID:       checkout.ClientID,
		Notes:          notes,
		Status:         status,
		PaymentStatus:  paymentStatus,
		PaymentDue:     professional.PaymentEnabled,
		Price:          session.Price,
		SessionStart:   session.StartTime,
		CreatedAt:      now,
	}

	if err := s.BookingRepo.Create(ctx, booking); err != nil {
		// Give the seat back; the reservation and the record must agree.
		if derr := s.SessionRepo.DecrementParticipants(ctx, sessionID); derr != nil {
			logger.Error("failed to release seat after create failure",
				zap.String("sessionID", sessionID), zap.Error(derr))
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if s.Notification != nil {
		if err := s.Notification.NotifyBookingReceived(ctx, booking); err != nil {
			logger.Warn("booking notification failed", zap.Error(err))
		}
	}

	trigger := TriggerConfirmed
	if professional.PaymentEnabled {
		trigger = TriggerPaymentRequired
	}
	flow, _, err = flow.Apply(trigger)
	if err != nil {
		return nil, err
	}

	if flow.Terminal() {
		s.dropCheckout(ctx, checkoutID)
		return &booking, nil
	}

	checkout.SessionID = session.ID
	checkout.BookingID = booking.ID
	checkout.Notes = notes
	checkout.State = string(flow.State)
	if err := s.Checkouts.Save(ctx, *checkout); err != nil {
		return nil, err
	}
	return &booking, nil
}

// SubmitPayment settles the payment step of a checkout whose professional
// collects payment online, completing the flow.
func (s *DefaultBookingService) SubmitPayment(ctx context.Context, checkoutID, method string) (*models.Invoice, error) {
	checkout, err := s.Checkouts.Load(ctx, checkoutID)
	if err != nil {
		return nil, err
	}

	// Validate the transition before charging anyone; the flow only moves
	// once the payment goes through.
	flow := Flow{State: FlowState(checkout.State)}
	next, _, err := flow.Apply(TriggerPaymentSubmitted)
	if err != nil {
		return nil, err
	}

	booking, err := s.BookingRepo.GetByID(ctx, checkout.BookingID)
	if err != nil {
		return nil, fmt.Errorf("booking not found: %w", err)
	}
	if !booking.PaymentDue {
		return nil, ErrPaymentNotEnabled
	}

	invoice, err := s.PaymentHandler.ProcessPayment(ctx, models.PaymentRequest{
		BookingID:   booking.ID,
		ClientID:    booking.ClientID,
		Amount:      booking.Price.Amount,
		Currency:    booking.Price.Currency,
		Method:      method,
		Idempotency: booking.ID,
		Description: fmt.Sprintf("Session booking %s", booking.SessionID),
	})
	if err != nil {
		return nil, fmt.Errorf("payment failed: %w", err)
	}

	if err := s.BookingRepo.SetPaymentStatus(ctx, booking.ID, invoice.Status); err != nil {
		return nil, fmt.Errorf("failed to record payment status: %w", err)
	}

	if next.Terminal() {
		s.dropCheckout(ctx, checkoutID)
	} else {
		checkout.State = string(next.State)
		if err := s.Checkouts.Save(ctx, *checkout); err != nil {
			return nil, err
		}
	}
	return invoice, nil
}

// ApproveBooking confirms a pending booking in manual mode. Only the owning
// professional may approve.
func (s *DefaultBookingService) ApproveBooking(ctx context.Context, professionalID, bookingID string) (*models.Booking, error) {
	booking, err := s.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("booking not found: %w", err)
	}
	if booking.ProfessionalID != professionalID {
		return nil, fmt.Errorf("booking %s does not belong to professional %s", bookingID, professionalID)
	}
	if booking.Status != models.BookingStatusPending {
		return nil, ErrNotPending
	}

	if err := s.BookingRepo.SetStatus(ctx, bookingID, models.BookingStatusConfirmed); err != nil {
		return nil, err
	}
	booking.Status = models.BookingStatusConfirmed

	if s.Notification != nil {
		if err := s.Notification.NotifyBookingApproved(ctx, *booking); err != nil {
			utils.GetLogger().Warn("approval notification failed", zap.Error(err))
		}
	}
	return booking, nil
}

// ExpireStalePending cancels manual-approval bookings the professional never
// acted on and releases their seats. Returns how many were expired.
func (s *DefaultBookingService) ExpireStalePending(ctx context.Context, olderThan time.Duration) (int, error) {
	logger := utils.GetLogger()
	cutoff := s.now().Add(-olderThan)

	stale, err := s.BookingRepo.ListPendingCreatedBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to list stale bookings: %w", err)
	}

	expired := 0
	for _, b := range stale {
		if err := s.BookingRepo.SetStatus(ctx, b.ID, models.BookingStatusCancelled); err != nil {
			logger.Error("failed to expire booking", zap.String("bookingID", b.ID), zap.Error(err))
			continue
		}
		if err := s.SessionRepo.DecrementParticipants(ctx, b.SessionID); err != nil {
			logger.Error("failed to release seat for expired booking",
				zap.String("bookingID", b.ID), zap.Error(err))
		}
		expired++
	}
	return expired, nil
}
