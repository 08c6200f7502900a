package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rehmoapp/rehmo/internal/domain"
)

// SubmissionRepository implements domain.SubmissionRepository using SQLite.
type SubmissionRepository struct {
	db *sql.DB
}

// NewSubmissionRepository creates a new SQLite-backed SubmissionRepository.
func NewSubmissionRepository(db *DB) *SubmissionRepository {
	return &SubmissionRepository{db: db.SqlDB}
}

func (r *SubmissionRepository) Create(ctx context.Context, sub *domain.RecipeSubmission) error {
	ingredients, err := json.Marshal(sub.KeyIngredients)
	if err != nil {
		return fmt.Errorf("marshal ingredients: %w", err)
	}

	now := time.Now().UTC()
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO submissions (id, user_id, name, description, region, category, prep_time, difficulty,
		   key_ingredients, image_key, image_type, video_key, video_type, video_duration, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sub.ID, sub.UserID, sub.Name, sub.Description, sub.Region, string(sub.Category),
		sub.PrepTime, sub.Difficulty, string(ingredients),
		sub.ImageKey, sub.ImageType, sub.VideoKey, sub.VideoType, sub.VideoDuration,
		string(sub.Status), now,
	)
	if err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}

	sub.CreatedAt = now
	return nil
}

func (r *SubmissionRepository) GetByID(ctx context.Context, id string) (*domain.RecipeSubmission, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, description, region, category, prep_time, difficulty,
		   key_ingredients, image_key, image_type, video_key, video_type, video_duration, status, created_at
		 FROM submissions WHERE id = ?`, id)

	sub, err := scanSubmission(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query submission by id: %w", err)
	}
	return sub, nil
}

func (r *SubmissionRepository) ListByUser(ctx context.Context, userID int64) ([]domain.RecipeSubmission, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, name, description, region, category, prep_time, difficulty,
		   key_ingredients, image_key, image_type, video_key, video_type, video_duration, status, created_at
		 FROM submissions WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	var subs []domain.RecipeSubmission
	for rows.Next() {
		sub, err := scanSubmission(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		subs = append(subs, *sub)
	}
	return subs, rows.Err()
}

func scanSubmission(scan func(dest ...any) error) (*domain.RecipeSubmission, error) {
	sub := &domain.RecipeSubmission{}
	var category, status, ingredients string
	if err := scan(&sub.ID, &sub.UserID, &sub.Name, &sub.Description, &sub.Region, &category,
		&sub.PrepTime, &sub.Difficulty, &ingredients,
		&sub.ImageKey, &sub.ImageType, &sub.VideoKey, &sub.VideoType, &sub.VideoDuration,
		&status, &sub.CreatedAt); err != nil {
		return nil, err
	}
	sub.Category = domain.RecipeCategory(category)
	sub.Status = domain.SubmissionStatus(status)
	if err := json.Unmarshal([]byte(ingredients), &sub.KeyIngredients); err != nil {
		return nil, fmt.Errorf("unmarshal ingredients: %w", err)
	}
	return sub, nil
}
