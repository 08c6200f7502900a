package sqlite_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rehmoapp/rehmo/internal/domain"
	"github.com/rehmoapp/rehmo/internal/repository/sqlite"
)

func seedUsers(t *testing.T, db *sqlite.DB, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		if err := db.Users().Create(context.Background(), &domain.User{
			Email:        fmt.Sprintf("user%d@example.com", i),
			DisplayName:  fmt.Sprintf("User %d", i),
			PasswordHash: "hash",
		}); err != nil {
			t.Fatalf("create user %d: %v", i, err)
		}
	}
}

func TestNotificationRepository_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	seedUsers(t, db, 2)
	notes := db.Notifications()
	ctx := context.Background()

	n1 := &domain.Notification{ID: "n1", UserID: 1, Kind: domain.NotifyInfo, Title: "First", Message: "one"}
	n2 := &domain.Notification{ID: "n2", UserID: 1, Kind: domain.NotifyAlert, Title: "Second", Message: "two"}
	other := &domain.Notification{ID: "n3", UserID: 2, Kind: domain.NotifyInfo, Title: "Other", Message: "x"}

	for _, n := range []*domain.Notification{n1, n2, other} {
		if err := notes.Create(ctx, n); err != nil {
			t.Fatalf("Create %s: %v", n.ID, err)
		}
	}

	list, err := notes.ListByUser(ctx, 1)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 notifications for user 1, got %d", len(list))
	}
	for _, n := range list {
		if n.UserID != 1 {
			t.Fatalf("user 2's notification leaked: %+v", n)
		}
		if n.Read {
			t.Fatal("new notifications must start unread")
		}
	}
}

func TestNotificationRepository_MarkRead(t *testing.T) {
	db := newTestDB(t)
	seedUsers(t, db, 2)
	notes := db.Notifications()
	ctx := context.Background()

	n := &domain.Notification{ID: "n1", UserID: 1, Kind: domain.NotifyInfo, Title: "T", Message: "m"}
	if err := notes.Create(ctx, n); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := notes.MarkRead(ctx, 1, "n1"); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}

	list, err := notes.ListByUser(ctx, 1)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(list) != 1 || !list[0].Read {
		t.Fatalf("expected the notification to be read, got %+v", list)
	}

	// A different user can't mark it.
	if err := notes.MarkRead(ctx, 2, "n1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for another user's notification, got %v", err)
	}

	// Unknown ID.
	if err := notes.MarkRead(ctx, 1, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown ID, got %v", err)
	}
}
