package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/janidumadawa/GameStore/internal/apperr"
	"github.com/janidumadawa/GameStore/internal/models"
	"github.com/janidumadawa/GameStore/internal/services"

	"github.com/rs/zerolog"
)

type AuthHandler struct {
	userService *services.UserService
	authService *services.AuthService
	logger      zerolog.Logger
}

func NewAuthHandler(userService *services.UserService, authService *services.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		authService: authService,
		logger:      logger,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithAppError(w, apperr.Validation("invalid request body"))
		return
	}

	_, err := h.userService.Register(r.Context(), &req)
	if err != nil {
		h.respondWithAppError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusCreated, map[string]string{
		"message": "User registered successfully",
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithAppError(w, apperr.Validation("invalid request body"))
		return
	}

	user, err := h.userService.Authenticate(r.Context(), &req)
	if err != nil {
		h.respondWithAppError(w, err)
		return
	}

	token, err := h.authService.IssueToken(user.ID.Hex(), user.Role)
	if err != nil {
		h.logger.Error().Err(err).Msg("Token generation failed")
		h.respondWithAppError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, models.AuthResponse{
		Token: token,
		User: models.PublicUser{
			Username: user.Username,
			Role:     user.Role,
		},
	})
}

func (h *AuthHandler) respondWithAppError(w http.ResponseWriter, err error) {
	appErr := apperr.From(err)
	if appErr.Kind == apperr.KindInternal {
		h.logger.Error().Err(err).Msg("Request failed")
	}

	payload := map[string]interface{}{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Fields) > 0 {
		payload["fields"] = appErr.Fields
	}

	h.respondWithJSON(w, apperr.Status(err), payload)
}

func (h *AuthHandler) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
