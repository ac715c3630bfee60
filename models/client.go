package models

import "time"

// Client is an end user booking sessions.
type Client struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	FCMToken     string    `bson:"fcmToken,omitempty" json:"-"`
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// ViewerContext captures who is looking at a schedule when eligibility is
// evaluated. It is read-only to the schedule core.
type ViewerContext struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	ClientID        string `json:"clientId,omitempty"`
	// Professional-level flags. They never change eligibility to attempt a
	// booking; they only steer what happens after an allowed attempt.
	ProfessionalBookingMode    string `json:"professionalBookingMode,omitempty"`
	ProfessionalPaymentEnabled bool   `json:"professionalPaymentEnabled,omitempty"`
}
