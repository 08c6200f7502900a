package domain

import (
	"context"
	"time"
)

// User represents a registered user of the application.
//
// Premium is session-scoped: it is carried in the auth token, seeded to
// false at login, and never written to the database. A fresh session always
// starts non-premium.
type User struct {
	ID           int64
	Email        string
	DisplayName  string
	PasswordHash string
	Premium      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
