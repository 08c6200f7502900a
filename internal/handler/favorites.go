package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/rehmoapp/rehmo/internal/domain"
	"github.com/rehmoapp/rehmo/internal/service"
)

// FavoritesHandler exposes the favorites store. Every operation carries the
// request's identity, so concurrent requests from different users act on
// their own sets.
type FavoritesHandler struct {
	favorites *service.FavoritesService
}

// NewFavoritesHandler creates a new FavoritesHandler.
func NewFavoritesHandler(favorites *service.FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{favorites: favorites}
}

// sync makes sure the caller's favorites are loaded before a read. Reports
// false after writing the error response.
func (h *FavoritesHandler) sync(w http.ResponseWriter, r *http.Request, user *domain.User) bool {
	if err := h.favorites.OnUserChanged(r.Context(), user); err != nil {
		slog.Error("load favorites", "error", err)
		writeError(w, http.StatusInternalServerError, "Could not load your favorites. Please try again.")
		return false
	}
	return true
}

// HandleList returns the caller's favorite recipe IDs.
// GET /api/favorites
// Response: {"favorites": ["r1", ...]}
func (h *FavoritesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if !h.sync(w, r, user) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"favorites": h.favorites.Snapshot(user),
	})
}

// HandleCheck reports whether one recipe is a favorite.
// GET /api/favorites/{id}
// Response: {"favorite": true}
func (h *FavoritesHandler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if !h.sync(w, r, user) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"favorite": h.favorites.IsFavorite(user, r.PathValue("id")),
	})
}

// HandleAdd saves a recipe to the caller's favorites.
// PUT /api/favorites/{id}
// Response: {"favorites": [...]} or 401 for anonymous callers
func (h *FavoritesHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	if err := h.favorites.Add(r.Context(), user, r.PathValue("id")); err != nil {
		if errors.Is(err, domain.ErrAuthRequired) {
			writeError(w, http.StatusUnauthorized, "Please sign in to save recipes to your favorites.")
			return
		}
		slog.Error("add favorite", "error", err)
		writeError(w, http.StatusInternalServerError, "Could not save your favorite. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"favorites": h.favorites.Snapshot(user),
	})
}

// HandleRemove deletes a recipe from the caller's favorites.
// DELETE /api/favorites/{id}
// Response: {"favorites": [...]}
func (h *FavoritesHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	if err := h.favorites.Remove(r.Context(), user, r.PathValue("id")); err != nil {
		slog.Error("remove favorite", "error", err)
		writeError(w, http.StatusInternalServerError, "Could not remove your favorite. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"favorites": h.favorites.Snapshot(user),
	})
}
