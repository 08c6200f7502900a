package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/rehmoapp/rehmo/internal/domain"
	"github.com/rehmoapp/rehmo/internal/service"
)

// AdsHandler serves ad inventory. Premium viewers get a 204 instead of ads,
// and an empty rotation is also a 204, so clients render nothing either way.
type AdsHandler struct {
	ads *service.AdService
}

// NewAdsHandler creates a new AdsHandler.
func NewAdsHandler(ads *service.AdService) *AdsHandler {
	return &AdsHandler{ads: ads}
}

// HandleList returns the inventory for a placement.
// GET /api/ads?placement=banner
// Response: {"ads": [...]} or 204 when suppressed
func (h *AdsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if !h.ads.ShouldShow(ViewerFromContext(r.Context())) {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	placement := domain.AdPlacement(r.URL.Query().Get("placement"))
	ads, err := h.ads.ListByPlacement(r.Context(), placement)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("list ads", "placement", placement, "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ads": toAdDTOs(ads),
	})
}

// HandleRandom returns the next ad in the placement's rotation.
// GET /api/ads/random?placement=banner
// Response: {"ad": {...}} or 204 when suppressed or empty
func (h *AdsHandler) HandleRandom(w http.ResponseWriter, r *http.Request) {
	if !h.ads.ShouldShow(ViewerFromContext(r.Context())) {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	placement := domain.AdPlacement(r.URL.Query().Get("placement"))
	ad, err := h.ads.Next(r.Context(), placement)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		slog.Error("next ad", "placement", placement, "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ad": toAdDTO(ad),
	})
}
