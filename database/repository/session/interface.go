package sessionRepo

import (
	"context"
	"time"

	"wellspring/models"
)

// SessionRepository persists a professional's published sessions.
type SessionRepository interface {
	CreateMany(ctx context.Context, sessions []models.Session) ([]string, error)
	GetByID(ctx context.Context, sessionID string) (*models.Session, error)
	// GetByProfessionalFrom returns the professional's sessions starting at
	// or after from. Sessions with a missing start timestamp are excluded:
	// they are a data-quality problem and never reach the schedule core.
	GetByProfessionalFrom(ctx context.Context, professionalID string, from time.Time) ([]models.Session, error)
	// IncrementParticipants reserves one seat. The update is guarded by a
	// capacity filter so two concurrent bookings cannot oversell the last
	// seat; a full session returns ErrCapacityExhausted.
	IncrementParticipants(ctx context.Context, sessionID string) error
	DecrementParticipants(ctx context.Context, sessionID string) error
	DeleteByID(ctx context.Context, professionalID, sessionID string) error
}
