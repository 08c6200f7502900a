package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rehmoapp/rehmo/internal/domain"
)

// NotificationRepository implements domain.NotificationRepository using SQLite.
type NotificationRepository struct {
	db *sql.DB
}

// NewNotificationRepository creates a new SQLite-backed NotificationRepository.
func NewNotificationRepository(db *DB) *NotificationRepository {
	return &NotificationRepository{db: db.SqlDB}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO notifications (id, user_id, kind, title, message, read, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		n.ID, n.UserID, n.Kind, n.Title, n.Message, n.Read, now,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	n.CreatedAt = now
	return nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, kind, title, message, read, created_at
		 FROM notifications WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var notes []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Kind, &n.Title, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *NotificationRepository) MarkRead(ctx context.Context, userID int64, id string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE notifications SET read = 1 WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
