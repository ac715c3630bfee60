// File: middleware/auth.go
package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	clientRepo "wellspring/database/repository/client"
	professionalRepo "wellspring/database/repository/professional"
	"wellspring/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	ContextSubjectID = "subjectID"
	ContextRole      = "role"
)

const cachedHashTTL = 10 * time.Minute

// TokenStore verifies a presented token against the account's stored token
// hash, with the auth cache as a lookaside. A signature-valid JWT whose hash
// no longer matches (new login, revocation) is rejected.
type TokenStore struct {
	Clients       clientRepo.ClientRepository
	Professionals professionalRepo.ProfessionalRepository
}

// Verify reports whether tokenHash is the subject's current token hash.
func (s *TokenStore) Verify(ctx context.Context, subject, role, tokenHash string) bool {
	if cached := utils.CachedTokenHash(ctx, subject); cached != "" && cached == tokenHash {
		return true
	}

	var stored string
	switch role {
	case "client":
		c, err := s.Clients.GetByID(ctx, subject)
		if err != nil {
			return false
		}
		stored = c.TokenHash
	case "professional":
		p, err := s.Professionals.GetByID(ctx, subject)
		if err != nil {
			return false
		}
		stored = p.TokenHash
	default:
		return false
	}

	if stored == "" || stored != tokenHash {
		return false
	}
	utils.CacheTokenHash(ctx, subject, stored, cachedHashTTL)
	return true
}

// AuthMiddleware validates the bearer token and stores the caller's identity
// on the context. Requests without a valid, current token are rejected.
func AuthMiddleware(tokens *TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject, role, ok := identityFromRequest(c, tokens)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid authorization token"})
			return
		}
		c.Set(ContextSubjectID, subject)
		c.Set(ContextRole, role)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the caller's identity when a token is
// present but lets anonymous requests through. The weekly schedule endpoint
// uses it: anonymous viewers still see the week, they just cannot book.
func OptionalAuthMiddleware(tokens *TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if subject, role, ok := identityFromRequest(c, tokens); ok {
			c.Set(ContextSubjectID, subject)
			c.Set(ContextRole, role)
		}
		c.Next()
	}
}

// RequireRole gates a route group to one role. Must run after AuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextRole) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}
		c.Next()
	}
}

func identityFromRequest(c *gin.Context, tokens *TokenStore) (subject, role string, ok bool) {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", "", false
	}
	token := strings.TrimPrefix(header, "Bearer ")

	subject, role, err := utils.ExtractIdentityFromToken(token)
	if err != nil {
		return "", "", false
	}
	if !tokens.Verify(c.Request.Context(), subject, role, utils.HashToken(token)) {
		return "", "", false
	}
	return subject, role, true
}
