package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/janidumadawa/GameStore/internal/apperr"
	"github.com/janidumadawa/GameStore/internal/models"
	"github.com/janidumadawa/GameStore/internal/services"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type GameHandler struct {
	gameService *services.GameService
	logger      zerolog.Logger
}

func NewGameHandler(gameService *services.GameService, logger zerolog.Logger) *GameHandler {
	return &GameHandler{
		gameService: gameService,
		logger:      logger,
	}
}

func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameService.List(r.Context())
	if err != nil {
		h.respondWithAppError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, games)
}

func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	game, err := h.gameService.Get(r.Context(), id)
	if err != nil {
		h.respondWithAppError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, game)
}

func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithAppError(w, apperr.Validation("invalid request body"))
		return
	}

	game, err := h.gameService.Create(r.Context(), &req)
	if err != nil {
		h.respondWithAppError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusCreated, game)
}

func (h *GameHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.UpdateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithAppError(w, apperr.Validation("invalid request body"))
		return
	}

	game, err := h.gameService.Update(r.Context(), id, &req)
	if err != nil {
		h.respondWithAppError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, game)
}

func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.gameService.Delete(r.Context(), id); err != nil {
		h.respondWithAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *GameHandler) respondWithAppError(w http.ResponseWriter, err error) {
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

func (h *GameHandler) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
