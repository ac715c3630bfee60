package clientRepo

import (
	"context"

	"wellspring/models"
)

// ClientRepository persists client accounts.
type ClientRepository interface {
	Create(ctx context.Context, client models.Client) error
	GetByID(ctx context.Context, clientID string) (*models.Client, error)
	GetByEmail(ctx context.Context, email string) (*models.Client, error)
	Update(ctx context.Context, client models.Client) error
}
