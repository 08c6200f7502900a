package handler

import (
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/rehmoapp/rehmo/internal/domain"
	"github.com/rehmoapp/rehmo/internal/service"
)

// maxSubmissionBody bounds the multipart body: 100MB video + 10MB image plus
// form fields.
const maxSubmissionBody = 115 * 1024 * 1024

// SubmissionsHandler handles user recipe submissions with media uploads.
type SubmissionsHandler struct {
	subs *service.SubmissionService
}

// NewSubmissionsHandler creates a new SubmissionsHandler.
func NewSubmissionsHandler(subs *service.SubmissionService) *SubmissionsHandler {
	return &SubmissionsHandler{subs: subs}
}

// HandleSubmit accepts a multipart recipe submission.
// POST /api/submissions
// Form fields: name, description, region, category, prepTime, difficulty,
// keyIngredients (comma-separated), videoDuration (seconds).
// File parts: image, video (both optional).
// Response: {"submission": {...}}
func (h *SubmissionsHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxSubmissionBody)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart request body.")
		return
	}

	sub := &domain.RecipeSubmission{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Region:      r.FormValue("region"),
		Category:    domain.RecipeCategory(r.FormValue("category")),
		PrepTime:    r.FormValue("prepTime"),
		Difficulty:  r.FormValue("difficulty"),
	}
	for _, ing := range strings.Split(r.FormValue("keyIngredients"), ",") {
		if ing = strings.TrimSpace(ing); ing != "" {
			sub.KeyIngredients = append(sub.KeyIngredients, ing)
		}
	}

	image, err := readUpload(r, "image", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Could not read the uploaded image.")
		return
	}

	duration, _ := strconv.Atoi(r.FormValue("videoDuration"))
	video, err := readUpload(r, "video", duration)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Could not read the uploaded video.")
		return
	}

	created, err := h.subs.Submit(r.Context(), user.ID, sub, image, video)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("create submission", "user_id", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Could not submit your recipe. Please try again.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"submission": toSubmissionDTO(created),
	})
}

// readUpload pulls one optional file part out of the parsed form. A missing
// part yields a nil upload, not an error.
func readUpload(r *http.Request, field string, duration int) (*service.MediaUpload, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &service.MediaUpload{
		Filename:        header.Filename,
		ContentType:     detectContentType(header, data),
		Data:            data,
		DurationSeconds: duration,
	}, nil
}

// detectContentType prefers the part's declared type and falls back to
// sniffing the bytes.
func detectContentType(header *multipart.FileHeader, data []byte) string {
	if ct := header.Header.Get("Content-Type"); ct != "" && ct != "application/octet-stream" {
		return ct
	}
	return http.DetectContentType(data)
}

// HandleList returns the caller's submissions, newest first.
// GET /api/submissions
// Response: {"submissions": [...]}
func (h *SubmissionsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	subs, err := h.subs.ListByUser(r.Context(), user.ID)
	if err != nil {
		slog.Error("list submissions", "user_id", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"submissions": toSubmissionDTOs(subs),
	})
}

// HandleMedia streams a submission's uploaded image or video back to its
// owner.
// GET /api/submissions/{id}/media/{kind}
func (h *SubmissionsHandler) HandleMedia(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	data, contentType, err := h.subs.GetMedia(r.Context(), user.ID, r.PathValue("id"), r.PathValue("kind"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "Media not found.")
		case errors.Is(err, domain.ErrUnauthorized):
			writeError(w, http.StatusForbidden, "You do not have access to this media.")
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			slog.Error("get submission media", "user_id", user.ID, "error", err)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		}
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}
