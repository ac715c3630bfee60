package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wellspring/config"
	"wellspring/models"
	"wellspring/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClients struct {
	clients map[string]*models.Client
}

func (f *fakeClients) Create(_ context.Context, c models.Client) error {
	f.clients[c.ID] = &c
	return nil
}

func (f *fakeClients) GetByID(_ context.Context, id string) (*models.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, errors.New("client not found")
	}
	copied := *c
	return &copied, nil
}

func (f *fakeClients) GetByEmail(_ context.Context, email string) (*models.Client, error) {
	for _, c := range f.clients {
		if c.Email == email {
			copied := *c
			return &copied, nil
		}
	}
	return nil, errors.New("client not found")
}

func (f *fakeClients) Update(_ context.Context, c models.Client) error {
	f.clients[c.ID] = &c
	return nil
}

type fakeProfessionals struct {
	professionals map[string]*models.Professional
}

func (f *fakeProfessionals) Create(_ context.Context, p models.Professional) error {
	f.professionals[p.ID] = &p
	return nil
}

func (f *fakeProfessionals) GetByID(_ context.Context, id string) (*models.Professional, error) {
	p, ok := f.professionals[id]
	if !ok {
		return nil, errors.New("professional not found")
	}
	copied := *p
	return &copied, nil
}

func (f *fakeProfessionals) GetByEmail(_ context.Context, email string) (*models.Professional, error) {
	for _, p := range f.professionals {
		if p.Email == email {
			copied := *p
			return &copied, nil
		}
	}
	return nil, errors.New("professional not found")
}

func (f *fakeProfessionals) Update(_ context.Context, p models.Professional) error {
	f.professionals[p.ID] = &p
	return nil
}

func newAuthTestRouter(t *testing.T, tokens *TokenStore, optional bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := AuthMiddleware(tokens)
	if optional {
		mw = OptionalAuthMiddleware(tokens)
	}
	r.GET("/whoami", mw, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"subject": c.GetString(ContextSubjectID),
			"role":    c.GetString(ContextRole),
		})
	})
	return r
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_AcceptsCurrentToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := utils.GenerateToken("c-1", "client", time.Hour)
	require.NoError(t, err)

	tokens := &TokenStore{
		Clients: &fakeClients{clients: map[string]*models.Client{
			"c-1": {ID: "c-1", TokenHash: utils.HashToken(token)},
		}},
		Professionals: &fakeProfessionals{professionals: map[string]*models.Professional{}},
	}

	w := doRequest(newAuthTestRouter(t, tokens, false), token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"subject":"c-1"`)
	assert.Contains(t, w.Body.String(), `"role":"client"`)
}

func TestAuthMiddleware_RejectsSupersededToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	oldToken, err := utils.GenerateToken("c-1", "client", time.Hour)
	require.NoError(t, err)
	newToken, err := utils.GenerateToken("c-1", "client", 2*time.Hour)
	require.NoError(t, err)

	// Only the newest token's hash is on record; the old one is signature
	// valid but revoked.
	tokens := &TokenStore{
		Clients: &fakeClients{clients: map[string]*models.Client{
			"c-1": {ID: "c-1", TokenHash: utils.HashToken(newToken)},
		}},
		Professionals: &fakeProfessionals{professionals: map[string]*models.Professional{}},
	}
	router := newAuthTestRouter(t, tokens, false)

	assert.Equal(t, http.StatusUnauthorized, doRequest(router, oldToken).Code)
	assert.Equal(t, http.StatusOK, doRequest(router, newToken).Code)
}

func TestAuthMiddleware_RejectsUnknownSubjectAndBadToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := utils.GenerateToken("ghost", "client", time.Hour)
	require.NoError(t, err)

	tokens := &TokenStore{
		Clients:       &fakeClients{clients: map[string]*models.Client{}},
		Professionals: &fakeProfessionals{professionals: map[string]*models.Professional{}},
	}
	router := newAuthTestRouter(t, tokens, false)

	assert.Equal(t, http.StatusUnauthorized, doRequest(router, token).Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(router, "not-a-jwt").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(router, "").Code)
}

func TestAuthMiddleware_VerifiesProfessionalRole(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := utils.GenerateToken("pro-1", "professional", time.Hour)
	require.NoError(t, err)

	tokens := &TokenStore{
		Clients: &fakeClients{clients: map[string]*models.Client{}},
		Professionals: &fakeProfessionals{professionals: map[string]*models.Professional{
			"pro-1": {ID: "pro-1", TokenHash: utils.HashToken(token)},
		}},
	}

	w := doRequest(newAuthTestRouter(t, tokens, false), token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"professional"`)
}

func TestOptionalAuthMiddleware_AllowsAnonymous(t *testing.T) {
	tokens := &TokenStore{
		Clients:       &fakeClients{clients: map[string]*models.Client{}},
		Professionals: &fakeProfessionals{professionals: map[string]*models.Professional{}},
	}

	w := doRequest(newAuthTestRouter(t, tokens, true), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"subject":""`)
}
