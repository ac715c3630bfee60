package models

import "time"

// Booking statuses.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusPending   = "pending"
	BookingStatusCancelled = "cancelled"
)

// Payment statuses on a booking.
const (
	PaymentStatusNone    = "none"
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

// Booking represents a confirmed or pending booking record.
type Booking struct {
	ID             string    `bson:"id" json:"id"`
	SessionID      string    `bson:"sessionId" json:"sessionId"`
	ProfessionalID string    `bson:"professionalId" json:"professionalId"`
	ClientID       string    `bson:"clientId" json:"clientId"`
	Notes          string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Status         string    `bson:"status" json:"status"`               // "confirmed", "pending" or "cancelled"
	PaymentStatus  string    `bson:"paymentStatus" json:"paymentStatus"` // "none", "pending" or "paid"
	PaymentDue     bool      `bson:"paymentDue" json:"paymentDue"`       // professional has payments enabled
	Price          Price     `bson:"price" json:"price"`
	SessionStart   time.Time `bson:"sessionStart" json:"sessionStart"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updatedAt"`
}
