package client

import (
	"context"

	"wellspring/models"
)

// AuthResponse is returned after a successful register or login.
type AuthResponse struct {
	Token  string        `json:"token"`
	Client models.Client `json:"client"`
}

// ClientService manages client accounts.
type ClientService interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	GetByID(ctx context.Context, clientID string) (*models.Client, error)
	MyBookings(ctx context.Context, clientID string) ([]models.Booking, error)
	UpdateFCMToken(ctx context.Context, clientID, token string) error
}

// RegisterRequest is the signup payload for a client.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}
