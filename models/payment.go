package models

import "time"

// --- PaymentRequest & Invoice ---
type PaymentRequest struct {
	BookingID   string
	ClientID    string
	Amount      float64
	Method      string // "cash" or "card"
	Currency    string
	Idempotency string
	Description string
}

type Invoice struct {
	InvoiceID string    `bson:"invoiceId" json:"invoiceId"`
	BookingID string    `bson:"bookingId" json:"bookingId"`
	ClientID  string    `bson:"clientId" json:"clientId"`
	Amount    float64   `bson:"amount" json:"amount"`
	Currency  string    `bson:"currency" json:"currency"`
	Status    string    `bson:"status" json:"status"`
	Method    string    `bson:"method" json:"method"`
	PaymentID string    `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	// ClientSecret lets the caller complete a card payment with Stripe.
	ClientSecret string    `bson:"-" json:"clientSecret,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}
