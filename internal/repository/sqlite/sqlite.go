package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rehmoapp/rehmo/internal/repository/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite connection and hands out repository implementations
// bound to it.
type DB struct {
	SqlDB *sql.DB
}

// New opens a SQLite database at the given path and configures it for use.
// It enables WAL mode and foreign keys.
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// Enable foreign key enforcement.
	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// Serialize writers; SQLite allows only one anyway.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{SqlDB: db}, nil
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, db.SqlDB)
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	return db.SqlDB.Close()
}

// Users returns the user repository bound to this database.
func (db *DB) Users() *UserRepository { return NewUserRepository(db) }

// Recipes returns the recipe catalog repository.
func (db *DB) Recipes() *RecipeRepository { return NewRecipeRepository(db) }

// MealPlan returns the meal-plan repository.
func (db *DB) MealPlan() *MealPlanRepository { return NewMealPlanRepository(db) }

// Ads returns the ad inventory repository.
func (db *DB) Ads() *AdRepository { return NewAdRepository(db) }

// Submissions returns the recipe submission repository.
func (db *DB) Submissions() *SubmissionRepository { return NewSubmissionRepository(db) }

// Notifications returns the notification repository.
func (db *DB) Notifications() *NotificationRepository { return NewNotificationRepository(db) }

// KV returns the durable key-value store.
func (db *DB) KV() *KVStore { return &KVStore{db: db.SqlDB} }

// Files returns the media blob store.
func (db *DB) Files() *FileStore { return &FileStore{db: db.SqlDB} }
