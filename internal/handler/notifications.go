package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/rehmoapp/rehmo/internal/domain"
	"github.com/rehmoapp/rehmo/internal/service"
)

// NotificationsHandler exposes a user's in-app notifications.
type NotificationsHandler struct {
	notes *service.NotificationService
}

// NewNotificationsHandler creates a new NotificationsHandler.
func NewNotificationsHandler(notes *service.NotificationService) *NotificationsHandler {
	return &NotificationsHandler{notes: notes}
}

// HandleList returns the caller's notifications, newest first.
// GET /api/notifications
// Response: {"notifications": [...]}
func (h *NotificationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	notes, err := h.notes.ListByUser(r.Context(), user.ID)
	if err != nil {
		slog.Error("list notifications", "user_id", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"notifications": toNotificationDTOs(notes),
	})
}

// HandleMarkRead marks one of the caller's notifications as read.
// POST /api/notifications/{id}/read
// Response: 204 No Content
func (h *NotificationsHandler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	if err := h.notes.MarkRead(r.Context(), user.ID, r.PathValue("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Notification not found.")
			return
		}
		slog.Error("mark notification read", "user_id", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
