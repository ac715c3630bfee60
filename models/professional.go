package models

import "time"

// Booking modes. Auto confirms a booking immediately; manual parks it as
// pending until the professional approves.
const (
	BookingModeAuto   = "auto"
	BookingModeManual = "manual"
)

// Professional is a service provider publishing bookable sessions.
type Professional struct {
	ID             string    `bson:"id" json:"id"`
	Name           string    `bson:"name" json:"name"`
	Email          string    `bson:"email" json:"email"`
	PasswordHash   string    `bson:"password_hash" json:"-"`
	Bio            string    `bson:"bio,omitempty" json:"bio,omitempty"`
	Specialty      string    `bson:"specialty,omitempty" json:"specialty,omitempty"`
	BookingMode    string    `bson:"bookingMode" json:"bookingMode"` // "auto" or "manual"
	PaymentEnabled bool      `bson:"paymentEnabled" json:"paymentEnabled"`
	Currency       string    `bson:"currency,omitempty" json:"currency,omitempty"`
	FCMToken       string    `bson:"fcmToken,omitempty" json:"-"`
	TokenHash      string    `bson:"token_hash,omitempty" json:"-"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updatedAt"`
}
