package professionalRepo

import (
	"context"

	"wellspring/models"
)

// ProfessionalRepository persists professional accounts.
type ProfessionalRepository interface {
	Create(ctx context.Context, professional models.Professional) error
	GetByID(ctx context.Context, professionalID string) (*models.Professional, error)
	GetByEmail(ctx context.Context, email string) (*models.Professional, error)
	Update(ctx context.Context, professional models.Professional) error
}
