package notification

import (
	"context"
	"fmt"

	clientRepo "wellspring/database/repository/client"
	professionalRepo "wellspring/database/repository/professional"
	"wellspring/models"
	"wellspring/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Clients       clientRepo.ClientRepository
	Professionals professionalRepo.ProfessionalRepository
}

func (s *DefaultNotificationService) SendClientPush(ctx context.Context, clientID, title, body string, data map[string]string) error {
	c, err := s.Clients.GetByID(ctx, clientID)
	if err != nil {
		return fmt.Errorf("SendClientPush: could not find client %s: %w", clientID, err)
	}
	return s.send(ctx, c.FCMToken, title, body, data, "client")
}

func (s *DefaultNotificationService) SendProfessionalPush(ctx context.Context, professionalID, title, body string, data map[string]string) error {
	p, err := s.Professionals.GetByID(ctx, professionalID)
	if err != nil {
		return fmt.Errorf("SendProfessionalPush: could not find professional %s: %w", professionalID, err)
	}
	return s.send(ctx, p.FCMToken, title, body, data, "professional")
}

func (s *DefaultNotificationService) send(ctx context.Context, token, title, body string, data map[string]string, role string) error {
	if utils.FCMClient == nil {
		return fmt.Errorf("push notifications are disabled")
	}
	if token == "" {
		return fmt.Errorf("recipient has no FCM token")
	}
	if data == nil {
		data = map[string]string{}
	}
	if _, ok := data["role"]; !ok {
		data["role"] = role
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	id, err := utils.FCMClient.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to send push: %w", err)
	}
	utils.GetLogger().Debug("push sent", zap.String("messageID", id))
	return nil
}

// NotifyBookingReceived tells the professional a new booking arrived. The
// wording depends on whether it still needs approval.
func (s *DefaultNotificationService) NotifyBookingReceived(ctx context.Context, booking models.Booking) error {
	title := "New booking"
	body := fmt.Sprintf("A seat was booked for your session on %s.", booking.SessionStart.Format("Mon Jan 2 15:04"))
	if booking.Status == models.BookingStatusPending {
		title = "Booking awaiting approval"
		body = fmt.Sprintf("A booking request for %s needs your approval.", booking.SessionStart.Format("Mon Jan 2 15:04"))
	}
	return s.SendProfessionalPush(ctx, booking.ProfessionalID, title, body, map[string]string{
		"bookingId": booking.ID,
		"sessionId": booking.SessionID,
		"type":      "booking_received",
	})
}

// NotifyBookingApproved tells the client their pending booking was confirmed.
func (s *DefaultNotificationService) NotifyBookingApproved(ctx context.Context, booking models.Booking) error {
	body := fmt.Sprintf("Your booking for %s is confirmed.", booking.SessionStart.Format("Mon Jan 2 15:04"))
	return s.SendClientPush(ctx, booking.ClientID, "Booking confirmed", body, map[string]string{
		"bookingId": booking.ID,
		"type":      "booking_approved",
	})
}

// NotifySessionReminder nudges the client ahead of a confirmed session.
func (s *DefaultNotificationService) NotifySessionReminder(ctx context.Context, booking models.Booking) error {
	body := fmt.Sprintf("Your session starts at %s.", booking.SessionStart.Format("15:04"))
	return s.SendClientPush(ctx, booking.ClientID, "Upcoming session", body, map[string]string{
		"bookingId": booking.ID,
		"type":      "session_reminder",
	})
}
