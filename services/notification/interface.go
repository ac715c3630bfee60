package notification

import (
	"context"

	"wellspring/models"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendClientPush(ctx context.Context, clientID, title, body string, data map[string]string) error
	SendProfessionalPush(ctx context.Context, professionalID, title, body string, data map[string]string) error
	NotifyBookingReceived(ctx context.Context, booking models.Booking) error
	NotifyBookingApproved(ctx context.Context, booking models.Booking) error
	NotifySessionReminder(ctx context.Context, booking models.Booking) error
}
