package domain

import (
	"context"
	"time"
)

// SubmissionStatus tracks the review state of a user-submitted recipe.
type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)

// Media kinds attached to a submission.
const (
	MediaImage = "image"
	MediaVideo = "video"
)

// RecipeSubmission is a user-submitted recipe awaiting review, with optional
// uploaded media stored in the file store under the recorded keys.
type RecipeSubmission struct {
	ID             string
	UserID         int64
	Name           string
	Description    string
	Region         string
	Category       RecipeCategory
	PrepTime       string
	Difficulty     string
	KeyIngredients []string
	ImageKey       string
	ImageType      string
	VideoKey       string
	VideoType      string
	VideoDuration  int // seconds, client-reported
	Status         SubmissionStatus
	CreatedAt      time.Time
}

// SubmissionRepository defines persistence operations for recipe submissions.
type SubmissionRepository interface {
	Create(ctx context.Context, sub *RecipeSubmission) error
	GetByID(ctx context.Context, id string) (*RecipeSubmission, error)
	ListByUser(ctx context.Context, userID int64) ([]RecipeSubmission, error)
}
