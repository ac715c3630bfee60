// File: services/professional/service.go
package professional

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	professionalRepo "wellspring/database/repository/professional"
	sessionRepo "wellspring/database/repository/session"
	"wellspring/models"
	"wellspring/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenValidity = 72 * time.Hour

var ErrInvalidCredentials = errors.New("invalid email or password")

// DefaultProfessionalService is the production implementation.
type DefaultProfessionalService struct {
	Repo        professionalRepo.ProfessionalRepository
	SessionRepo sessionRepo.SessionRepository
}

func (s *DefaultProfessionalService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	logger := utils.GetLogger()

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if existing, _ := s.Repo.GetByEmail(ctx, email); existing != nil {
		return nil, fmt.Errorf("email %s is already registered", email)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	bookingMode := req.BookingMode
	if bookingMode == "" {
		bookingMode = models.BookingModeAuto
	}
	if bookingMode != models.BookingModeAuto && bookingMode != models.BookingModeManual {
		return nil, fmt.Errorf("invalid booking mode: %s", bookingMode)
	}

	now := time.Now()
	professional := models.Professional{
		ID:             uuid.New().String(),
		Name:           req.Name,
		Email:          email,
		PasswordHash:   string(hashed),
		Bio:            req.Bio,
		Specialty:      req.Specialty,
		BookingMode:    bookingMode,
		PaymentEnabled: req.PaymentEnabled,
		Currency:       req.Currency,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	token, err := utils.GenerateToken(professional.ID, "professional", tokenValidity)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	professional.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(ctx, professional); err != nil {
		return nil, fmt.Errorf("failed to create professional: %w", err)
	}
	utils.CacheTokenHash(ctx, professional.ID, professional.TokenHash, tokenValidity)

	logger.Info("professional registered",
		zap.String("professionalID", professional.ID), zap.String("bookingMode", bookingMode))
	return &AuthResponse{Token: token, Professional: professional}, nil
}

func (s *DefaultProfessionalService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	professional, err := s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(professional.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(professional.ID, "professional", tokenValidity)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	professional.TokenHash = utils.HashToken(token)
	professional.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, *professional); err != nil {
		return nil, fmt.Errorf("failed to persist session token: %w", err)
	}
	utils.CacheTokenHash(ctx, professional.ID, professional.TokenHash, tokenValidity)

	return &AuthResponse{Token: token, Professional: *professional}, nil
}

func (s *DefaultProfessionalService) GetByID(ctx context.Context, professionalID string) (*models.Professional, error) {
	return s.Repo.GetByID(ctx, professionalID)
}

// PublishSessions validates and stores a batch of sessions for the
// professional. IDs and ownership are assigned server-side.
func (s *DefaultProfessionalService) PublishSessions(ctx context.Context, professionalID string, req models.SetupSessionsRequest) ([]string, error) {
	if len(req.Sessions) == 0 {
		return nil, errors.New("no sessions to publish")
	}

	professional, err := s.Repo.GetByID(ctx, professionalID)
	if err != nil {
		return nil, fmt.Errorf("professional not found: %w", err)
	}

	now := time.Now()
	prepared := make([]models.Session, 0, len(req.Sessions))
	for i, sess := range req.Sessions {
		if sess.StartTime.IsZero() {
			return nil, fmt.Errorf("session %d has no start time", i)
		}
		if sess.MaxParticipants <= 0 {
			return nil, fmt.Errorf("session %d has invalid capacity %d", i, sess.MaxParticipants)
		}
		if sess.DurationMinutes <= 0 {
			return nil, fmt.Errorf("session %d has invalid duration %d", i, sess.DurationMinutes)
		}

		sess.ID = uuid.New().String()
		sess.ProfessionalID = professionalID
		sess.ParticipantCount = 0
		sess.CreatedAt = now
		if sess.Price.Currency == "" {
			sess.Price.Currency = professional.Currency
		}
		prepared = append(prepared, sess)
	}

	ids, err := s.SessionRepo.CreateMany(ctx, prepared)
	if err != nil {
		return nil, fmt.Errorf("failed to publish sessions: %w", err)
	}

	utils.GetLogger().Info("sessions published",
		zap.String("professionalID", professionalID), zap.Int("count", len(ids)))
	return ids, nil
}

func (s *DefaultProfessionalService) GetSessions(ctx context.Context, professionalID string) ([]models.Session, error) {
	return s.SessionRepo.GetByProfessionalFrom(ctx, professionalID, time.Time{})
}

func (s *DefaultProfessionalService) DeleteSession(ctx context.Context, professionalID, sessionID string) error {
	return s.SessionRepo.DeleteByID(ctx, professionalID, sessionID)
}

func (s *DefaultProfessionalService) UpdateFCMToken(ctx context.Context, professionalID, token string) error {
	professional, err := s.Repo.GetByID(ctx, professionalID)
	if err != nil {
		return fmt.Errorf("professional not found: %w", err)
	}
	professional.FCMToken = token
	professional.UpdatedAt = time.Now()
	return s.Repo.Update(ctx, *professional)
}
