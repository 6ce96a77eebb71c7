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

type NewsHandler struct {
	newsService *services.NewsService
	logger      zerolog.Logger
}

func NewNewsHandler(newsService *services.NewsService, logger zerolog.Logger) *NewsHandler {
	return &NewsHandler{
		newsService: newsService,
		logger:      logger,
	}
}

func (h *NewsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.newsService.List(r.Context())
	if err != nil {
		h.respondWithAppError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, items)
}

func (h *NewsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	item, err := h.newsService.Get(r.Context(), id)
	if err != nil {
		h.respondWithAppError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, item)
}

func (h *NewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateNewsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithAppError(w, apperr.Validation("invalid request body"))
		return
	}

	item, err := h.newsService.Create(r.Context(), &req)
	if err != nil {
		h.respondWithAppError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusCreated, item)
}

func (h *NewsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.UpdateNewsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithAppError(w, apperr.Validation("invalid request body"))
		return
	}

	item, err := h.newsService.Update(r.Context(), id, &req)
	if err != nil {
		h.respondWithAppError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, item)
}

func (h *NewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.newsService.Delete(r.Context(), id); err != nil {
		h.respondWithAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *NewsHandler) respondWithAppError(w http.ResponseWriter, err error) {
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

func (h *NewsHandler) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
