package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rehmoapp/rehmo/internal/domain"
)

// NotificationService persists in-app notifications and implements
// domain.Notifier for the services that emit user feedback.
type NotificationService struct {
	notes domain.NotificationRepository
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(notes domain.NotificationRepository) *NotificationService {
	return &NotificationService{notes: notes}
}

// Notify records a notification for the user. It is fire-and-forget:
// failures are logged, never returned, so emitting feedback can't break the
// operation that triggered it. Notifications addressed to nobody (userID 0)
// are only logged.
func (s *NotificationService) Notify(ctx context.Context, userID int64, kind, title, message string) {
	slog.Info("notify", "user_id", userID, "kind", kind, "title", title)

	if userID == 0 {
		return
	}

	n := &domain.Notification{
		ID:      uuid.NewString(),
		UserID:  userID,
		Kind:    kind,
		Title:   title,
		Message: message,
	}
	if err := s.notes.Create(ctx, n); err != nil {
		slog.Error("store notification", "user_id", userID, "error", err)
	}
}

// ListByUser returns a user's notifications, newest first.
func (s *NotificationService) ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	return s.notes.ListByUser(ctx, userID)
}

// MarkRead marks one of the user's notifications as read.
func (s *NotificationService) MarkRead(ctx context.Context, userID int64, id string) error {
	return s.notes.MarkRead(ctx, userID, id)
}
