package models

// Checkout holds context between viewing a schedule and confirming a booking.
// It lives in the checkout cache for a short TTL.
type Checkout struct {
	CheckoutID     string `json:"checkoutId"`
	ClientID       string `json:"clientId"`
	ProfessionalID string `json:"professionalId"`
	SessionID      string `json:"sessionId,omitempty"`
	BookingID      string `json:"bookingId,omitempty"`
	Notes          string `json:"notes,omitempty"`
	State          string `json:"state"` // booking flow state name
}
