package models

import "time"

// Price is a display amount with its currency code.
type Price struct {
	Amount   float64 `bson:"amount" json:"amount"`
	Currency string  `bson:"currency" json:"currency"`
}

// Session is a bookable time-slotted offering by a professional, with fixed
// capacity. Sessions are immutable to readers; participant counts change
// server-side when a booking is accepted.
type Session struct {
	ID               string    `bson:"id" json:"id"`
	ProfessionalID   string    `bson:"professionalId" json:"professionalId"`
	Title            string    `bson:"title" json:"title"`
	Description      string    `bson:"description,omitempty" json:"description,omitempty"`
	StartTime        time.Time `bson:"startTime" json:"startTime"`
	DurationMinutes  int       `bson:"durationMinutes" json:"durationMinutes"`
	MaxParticipants  int       `bson:"maxParticipants" json:"maxParticipants"`
	ParticipantCount int       `bson:"participantCount" json:"participantCount"`
	Price            Price     `bson:"price" json:"price"`
	CreatedAt        time.Time `bson:"created_at" json:"createdAt"`
}

// SetupSessionsRequest defines the payload for a professional publishing sessions.
type SetupSessionsRequest struct {
	Sessions []Session `json:"sessions" binding:"required"`
}
