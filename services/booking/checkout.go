// File: services/booking/checkout.go
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"wellspring/config"
	"wellspring/models"
	"wellspring/utils"

	"github.com/google/uuid"
)

// CheckoutStore persists in-flight checkouts for the duration of the booking
// flow.
type CheckoutStore interface {
	Save(ctx context.Context, checkout models.Checkout) error
	// Load returns ErrCheckoutNotFound for a missing or expired checkout.
	Load(ctx context.Context, checkoutID string) (*models.Checkout, error)
	Delete(ctx context.Context, checkoutID string) error
}

func checkoutTTL() time.Duration {
	minutes := config.AppConfig.CheckoutTTLMinutes
	if minutes <= 0 {
		minutes = 10
	}
	return time.Duration(minutes) * time.Minute
}

type redisCheckoutStore struct{}

// NewRedisCheckoutStore returns the production checkout store, backed by the
// checkout cache with the configured TTL.
func NewRedisCheckoutStore() CheckoutStore {
	return &redisCheckoutStore{}
}

func (r *redisCheckoutStore) Save(ctx context.Context, checkout models.Checkout) error {
	data, err := json.Marshal(checkout)
	if err != nil {
		return fmt.Errorf("failed to marshal checkout: %w", err)
	}
	if err := utils.GetCheckoutCacheClient().Set(ctx, checkout.CheckoutID, data, checkoutTTL()).Err(); err != nil {
		return fmt.Errorf("failed to store checkout: %w", err)
	}
	return nil
}

func (r *redisCheckoutStore) Load(ctx context.Context, checkoutID string) (*models.Checkout, error) {
	data, err := utils.GetCheckoutCacheClient().Get(ctx, checkoutID).Result()
	if err != nil {
		return nil, ErrCheckoutNotFound
	}
	var checkout models.Checkout
	if err := json.Unmarshal([]byte(data), &checkout); err != nil {
		return nil, fmt.Errorf("failed to parse checkout: %w", err)
	}
	return &checkout, nil
}

func (r *redisCheckoutStore) Delete(ctx context.Context, checkoutID string) error {
	return utils.GetCheckoutCacheClient().Del(ctx, checkoutID).Err()
}

// InitiateCheckout creates a new checkout, assigns it a unique CheckoutID,
// and stores it with the flow in its idle state.
func (s *DefaultBookingService) InitiateCheckout(ctx context.Context, clientID, professionalID string) (*models.Checkout, error) {
	if _, err := s.ProfessionalRepo.GetByID(ctx, professionalID); err != nil {
		return nil, fmt.Errorf("professional not found: %w", err)
	}

	checkout := models.Checkout{
		CheckoutID:     uuid.New().String(),
		ClientID:       clientID,
		ProfessionalID: professionalID,
		State:          string(StateIdle),
	}

	if err := s.Checkouts.Save(ctx, checkout); err != nil {
		return nil, err
	}
	return &checkout, nil
}

// CancelCheckout allows the client to explicitly abandon a checkout.
func (s *DefaultBookingService) CancelCheckout(ctx context.Context, checkoutID string) error {
	if err := s.Checkouts.Delete(ctx, checkoutID); err != nil {
		return fmt.Errorf("failed to cancel checkout: %w", err)
	}
	return nil
}
