// File: services/client/service.go
package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	bookingRepo "wellspring/database/repository/booking"
	clientRepo "wellspring/database/repository/client"
	"wellspring/models"
	"wellspring/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenValidity = 72 * time.Hour

var ErrInvalidCredentials = errors.New("invalid email or password")

// DefaultClientService is the production implementation.
type DefaultClientService struct {
	Repo        clientRepo.ClientRepository
	BookingRepo bookingRepo.BookingRepository
}

func (s *DefaultClientService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if existing, _ := s.Repo.GetByEmail(ctx, email); existing != nil {
		return nil, fmt.Errorf("email %s is already registered", email)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	c := models.Client{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	token, err := utils.GenerateToken(c.ID, "client", tokenValidity)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	c.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	utils.CacheTokenHash(ctx, c.ID, c.TokenHash, tokenValidity)

	utils.GetLogger().Info("client registered", zap.String("clientID", c.ID))
	return &AuthResponse{Token: token, Client: c}, nil
}

func (s *DefaultClientService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	c, err := s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(c.ID, "client", tokenValidity)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	c.TokenHash = utils.HashToken(token)
	c.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, *c); err != nil {
		return nil, fmt.Errorf("failed to persist session token: %w", err)
	}
	utils.CacheTokenHash(ctx, c.ID, c.TokenHash, tokenValidity)

	return &AuthResponse{Token: token, Client: *c}, nil
}

func (s *DefaultClientService) GetByID(ctx context.Context, clientID string) (*models.Client, error) {
	return s.Repo.GetByID(ctx, clientID)
}

func (s *DefaultClientService) MyBookings(ctx context.Context, clientID string) ([]models.Booking, error) {
	return s.BookingRepo.GetByClientID(ctx, clientID)
}

func (s *DefaultClientService) UpdateFCMToken(ctx context.Context, clientID, token string) error {
	c, err := s.Repo.GetByID(ctx, clientID)
	if err != nil {
		return fmt.Errorf("client not found: %w", err)
	}
	c.FCMToken = token
	c.UpdatedAt = time.Now()
	return s.Repo.Update(ctx, *c)
}
