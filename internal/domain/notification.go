package domain

import (
	"context"
	"time"
)

// Notification kinds.
const (
	NotifyInfo  = "info"
	NotifyAlert = "alert"
)

// Notification is an in-app message shown to a user.
type Notification struct {
	ID        string
	UserID    int64
	Kind      string
	Title     string
	Message   string
	Read      bool
	CreatedAt time.Time
}

// NotificationRepository defines persistence operations for notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
	ListByUser(ctx context.Context, userID int64) ([]Notification, error)
	MarkRead(ctx context.Context, userID int64, id string) error
}

// Notifier is a fire-and-forget sink for user feedback. Callers must not
// depend on delivery; failures are the sink's problem. A userID of zero
// addresses no one and is only logged.
type Notifier interface {
	Notify(ctx context.Context, userID int64, kind, title, message string)
}
