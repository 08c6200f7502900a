package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rehmoapp/rehmo/internal/domain"
)

const (
	maxImageSize    = 10 * 1024 * 1024  // 10MB
	maxVideoSize    = 100 * 1024 * 1024 // 100MB
	maxVideoSeconds = 300               // 5 minutes
)

// MediaUpload is one uploaded file plus the metadata the client reports
// about it. Video duration cannot be derived server-side without decoding,
// so the client-measured value is validated as-is.
type MediaUpload struct {
	Filename        string
	ContentType     string
	Data            []byte
	DurationSeconds int
}

// SubmissionService accepts user recipe submissions with optional media,
// validating uploads before anything is stored.
type SubmissionService struct {
	subs     domain.SubmissionRepository
	files    domain.FileStore
	notifier domain.Notifier
}

// NewSubmissionService creates a new SubmissionService.
func NewSubmissionService(subs domain.SubmissionRepository, files domain.FileStore, notifier domain.Notifier) *SubmissionService {
	return &SubmissionService{subs: subs, files: files, notifier: notifier}
}

// Submit validates and stores a recipe submission. Media blobs are saved
// first; if the metadata insert then fails, stored blobs are deleted on a
// best-effort basis.
func (s *SubmissionService) Submit(ctx context.Context, userID int64, sub *domain.RecipeSubmission, image, video *MediaUpload) (*domain.RecipeSubmission, error) {
	if sub.Name == "" {
		return nil, fmt.Errorf("%w: recipe name is required", domain.ErrInvalidInput)
	}
	if !domain.ValidCategory(sub.Category) {
		return nil, fmt.Errorf("%w: category must be vegetarian, non-vegetarian, or other", domain.ErrInvalidInput)
	}

	if image != nil {
		if image.ContentType != "image/jpeg" && image.ContentType != "image/png" {
			return nil, fmt.Errorf("%w: only JPEG and PNG images are accepted", domain.ErrInvalidInput)
		}
		if len(image.Data) > maxImageSize {
			return nil, fmt.Errorf("%w: image exceeds 10MB limit", domain.ErrInvalidInput)
		}
	}
	if video != nil {
		if !strings.HasPrefix(video.ContentType, "video/") {
			return nil, fmt.Errorf("%w: only video files are accepted", domain.ErrInvalidInput)
		}
		if len(video.Data) > maxVideoSize {
			return nil, fmt.Errorf("%w: video exceeds 100MB limit", domain.ErrInvalidInput)
		}
		if video.DurationSeconds > maxVideoSeconds {
			return nil, fmt.Errorf("%w: video must be 5 minutes or shorter", domain.ErrInvalidInput)
		}
	}

	var savedKeys []string
	cleanup := func() {
		for _, key := range savedKeys {
			s.files.Delete(ctx, key)
		}
	}

	if image != nil {
		key := "submission-media/" + uuid.NewString()
		if err := s.files.Save(ctx, key, image.Data); err != nil {
			return nil, fmt.Errorf("save image: %w", err)
		}
		savedKeys = append(savedKeys, key)
		sub.ImageKey = key
		sub.ImageType = image.ContentType
	}

	if video != nil {
		key := "submission-media/" + uuid.NewString()
		if err := s.files.Save(ctx, key, video.Data); err != nil {
			cleanup()
			return nil, fmt.Errorf("save video: %w", err)
		}
		savedKeys = append(savedKeys, key)
		sub.VideoKey = key
		sub.VideoType = video.ContentType
		sub.VideoDuration = video.DurationSeconds
	}

	sub.ID = uuid.NewString()
	sub.UserID = userID
	sub.Status = domain.SubmissionPending

	if err := s.subs.Create(ctx, sub); err != nil {
		cleanup()
		return nil, fmt.Errorf("create submission: %w", err)
	}

	s.notifier.Notify(ctx, userID, domain.NotifyInfo,
		"Recipe Submitted", "Your recipe has been submitted for review.")
	return sub, nil
}

// ListByUser returns a user's submissions, newest first.
func (s *SubmissionService) ListByUser(ctx context.Context, userID int64) ([]domain.RecipeSubmission, error) {
	return s.subs.ListByUser(ctx, userID)
}

// GetMedia returns the bytes and content type of a submission's media after
// an ownership check.
func (s *SubmissionService) GetMedia(ctx context.Context, userID int64, submissionID, kind string) ([]byte, string, error) {
	sub, err := s.subs.GetByID(ctx, submissionID)
	if err != nil {
		return nil, "", fmt.Errorf("get submission: %w", err)
	}
	if sub.UserID != userID {
		return nil, "", domain.ErrUnauthorized
	}

	var key, contentType string
	switch kind {
	case domain.MediaImage:
		key, contentType = sub.ImageKey, sub.ImageType
	case domain.MediaVideo:
		key, contentType = sub.VideoKey, sub.VideoType
	default:
		return nil, "", fmt.Errorf("%w: unknown media kind %q", domain.ErrInvalidInput, kind)
	}
	if key == "" {
		return nil, "", domain.ErrNotFound
	}

	data, err := s.files.Get(ctx, key)
	if err != nil {
		return nil, "", fmt.Errorf("get media blob: %w", err)
	}
	return data, contentType, nil
}
