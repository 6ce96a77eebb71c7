package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/janidumadawa/GameStore/internal/models"
	"github.com/janidumadawa/GameStore/internal/services"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthHandler() (*AuthHandler, *services.AuthService) {
	logger := zerolog.Nop()
	userService := services.NewUserService(&fakeUserStore{}, logger)
	authService := services.NewAuthService("test-secret", logger)
	return NewAuthHandler(userService, authService, logger), authService
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestRegisterCreated(t *testing.T) {
	h, _ := newTestAuthHandler()

	rec := postJSON(t, h.Register, "/api/auth/register", models.RegisterRequest{
		Username: "jani",
		Email:    "jani@example.com",
		Password: "secret1",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "User registered successfully")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	h, _ := newTestAuthHandler()

	first := postJSON(t, h.Register, "/api/auth/register", models.RegisterRequest{
		Username: "jani",
		Email:    "jani@example.com",
		Password: "secret1",
	})
	require.Equal(t, http.StatusCreated, first.Code)

	second := postJSON(t, h.Register, "/api/auth/register", models.RegisterRequest{
		Username: "other",
		Email:    "jani@example.com",
		Password: "secret2",
	})

	assert.Equal(t, http.StatusBadRequest, second.Code)
	assert.Contains(t, second.Body.String(), "duplicate_key")
}

func TestRegisterMissingFields(t *testing.T) {
	h, _ := newTestAuthHandler()

	rec := postJSON(t, h.Register, "/api/auth/register", models.RegisterRequest{Username: "jani"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error  string   `json:"error"`
		Fields []string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation_error", resp.Error)
	assert.ElementsMatch(t, []string{"email", "password"}, resp.Fields)
}

func TestRegisterInvalidBody(t *testing.T) {
	h, _ := newTestAuthHandler()

	req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginReturnsVerifiableToken(t *testing.T) {
	h, tokens := newTestAuthHandler()

	created := postJSON(t, h.Register, "/api/auth/register", models.RegisterRequest{
		Username: "jani",
		Email:    "jani@example.com",
		Password: "secret1",
		Role:     "admin",
	})
	require.Equal(t, http.StatusCreated, created.Code)

	rec := postJSON(t, h.Login, "/api/auth/login", models.LoginRequest{
		Email:    "jani@example.com",
		Password: "secret1",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "jani", resp.User.Username)
	assert.Equal(t, "admin", resp.User.Role)

	claims, err := tokens.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginInvalidCredentials(t *testing.T) {
	h, _ := newTestAuthHandler()

	created := postJSON(t, h.Register, "/api/auth/register", models.RegisterRequest{
		Username: "jani",
		Email:    "jani@example.com",
		Password: "secret1",
	})
	require.Equal(t, http.StatusCreated, created.Code)

	rec := postJSON(t, h.Login, "/api/auth/login", models.LoginRequest{
		Email:    "jani@example.com",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid email or password")
}
