package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"f1proxy/internal/domain"
	"f1proxy/internal/store"
)

// FavoritesHandler serves the persisted favorite drivers and constructors.
// These endpoints never touch the upstream API.
type FavoritesHandler struct {
	store  store.Favorites
	logger *slog.Logger
}

// NewFavoritesHandler accepts a nil store: the endpoints then answer 500, but
// the rest of the server keeps working.
func NewFavoritesHandler(s store.Favorites, logger *slog.Logger) *FavoritesHandler {
	return &FavoritesHandler{store: s, logger: logger}
}

type insertResponse struct {
	ID string `json:"id"`
}

type listResponse struct {
	Count int              `json:"count"`
	Items []map[string]any `json:"items"`
}

func (h *FavoritesHandler) AddDriver(w http.ResponseWriter, r *http.Request) {
	var payload domain.FavoriteDriver
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if payload.DriverID == "" {
		respondError(w, http.StatusUnprocessableEntity, "driver_id is required")
		return
	}

	h.insert(w, r, store.CollectionFavoriteDrivers, payload)
}

func (h *FavoritesHandler) ListDrivers(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, store.CollectionFavoriteDrivers)
}

func (h *FavoritesHandler) AddConstructor(w http.ResponseWriter, r *http.Request) {
	var payload domain.FavoriteConstructor
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if payload.ConstructorID == "" {
		respondError(w, http.StatusUnprocessableEntity, "constructor_id is required")
		return
	}

	h.insert(w, r, store.CollectionFavoriteConstructors, payload)
}

func (h *FavoritesHandler) ListConstructors(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, store.CollectionFavoriteConstructors)
}

func (h *FavoritesHandler) insert(w http.ResponseWriter, r *http.Request, collection string, doc any) {
	if h.store == nil {
		respondError(w, http.StatusInternalServerError, "favorites store not configured")
		return
	}

	id, err := h.store.InsertOne(r.Context(), collection, doc)
	if err != nil {
		h.logger.Error("favorites insert failed", "collection", collection, "error", err)
		respondError(w, http.StatusInternalServerError, "could not save favorite")
		return
	}

	respondJSON(w, http.StatusOK, insertResponse{ID: id})
}

func (h *FavoritesHandler) list(w http.ResponseWriter, r *http.Request, collection string) {
	if h.store == nil {
		respondError(w, http.StatusInternalServerError, "favorites store not configured")
		return
	}

	docs, err := h.store.ListAll(r.Context(), collection)
	if err != nil {
		h.logger.Error("favorites list failed", "collection", collection, "error", err)
		respondError(w, http.StatusInternalServerError, "could not list favorites")
		return
	}

	respondJSON(w, http.StatusOK, listResponse{Count: len(docs), Items: docs})
}
