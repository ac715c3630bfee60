package professional

import (
	"context"

	"wellspring/models"
)

// AuthResponse is returned after a successful register or login.
type AuthResponse struct {
	Token        string              `json:"token"`
	Professional models.Professional `json:"professional"`
}

// ProfessionalService manages professional accounts and their published
// sessions.
type ProfessionalService interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	GetByID(ctx context.Context, professionalID string) (*models.Professional, error)

	PublishSessions(ctx context.Context, professionalID string, req models.SetupSessionsRequest) ([]string, error)
	GetSessions(ctx context.Context, professionalID string) ([]models.Session, error)
	DeleteSession(ctx context.Context, professionalID, sessionID string) error

	UpdateFCMToken(ctx context.Context, professionalID, token string) error
}

// RegisterRequest is the signup payload for a professional.
type RegisterRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	Specialty      string `json:"specialty"`
	Bio            string `json:"bio"`
	BookingMode    string `json:"bookingMode"`
	PaymentEnabled bool   `json:"paymentEnabled"`
	Currency       string `json:"currency"`
}
