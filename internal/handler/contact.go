package handler

import (
	"log/slog"
	"net/http"
	"strings"
)

// ContactHandler accepts contact-form and feedback posts. Messages are
// logged for the operations team; there is no ticketing backend.
type ContactHandler struct{}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler() *ContactHandler {
	return &ContactHandler{}
}

// HandleContact accepts a contact-form message.
// POST /api/contact
// Request:  {"name":"...","email":"...","subject":"...","message":"..."}
// Response: 202 Accepted
func (h *ContactHandler) HandleContact(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		writeError(w, http.StatusUnprocessableEntity, "Name, email, and message are required.")
		return
	}
	if !strings.Contains(req.Email, "@") {
		writeError(w, http.StatusUnprocessableEntity, "Please provide a valid email address.")
		return
	}

	slog.Info("contact message",
		"name", req.Name, "email", req.Email, "subject", req.Subject, "message", req.Message)

	writeJSON(w, http.StatusAccepted, map[string]string{
		"status": "received",
	})
}

// HandleFeedback accepts a product feedback rating.
// POST /api/feedback
// Request:  {"rating":1-5,"message":"..."}
// Response: 202 Accepted
func (h *ContactHandler) HandleFeedback(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Rating  int    `json:"rating"`
		Message string `json:"message"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.Rating < 1 || req.Rating > 5 {
		writeError(w, http.StatusUnprocessableEntity, "Rating must be between 1 and 5.")
		return
	}

	user := UserFromContext(r.Context())
	var userID int64
	if user != nil {
		userID = user.ID
	}

	slog.Info("feedback", "user_id", userID, "rating", req.Rating, "message", req.Message)

	writeJSON(w, http.StatusAccepted, map[string]string{
		"status": "received",
	})
}
