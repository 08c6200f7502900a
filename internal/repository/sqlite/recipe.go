package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rehmoapp/rehmo/internal/domain"
)

// RecipeRepository implements domain.RecipeRepository using SQLite.
// Key ingredients are stored as a JSON array in a text column.
type RecipeRepository struct {
	db *sql.DB
}

// NewRecipeRepository creates a new SQLite-backed RecipeRepository.
func NewRecipeRepository(db *DB) *RecipeRepository {
	return &RecipeRepository{db: db.SqlDB}
}

func (r *RecipeRepository) Upsert(ctx context.Context, recipe *domain.Recipe) error {
	ingredients, err := json.Marshal(recipe.KeyIngredients)
	if err != nil {
		return fmt.Errorf("marshal ingredients: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO recipes (id, name, description, image, region, category, premium, prep_time, difficulty, key_ingredients)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		   name = excluded.name,
		   description = excluded.description,
		   image = excluded.image,
		   region = excluded.region,
		   category = excluded.category,
		   premium = excluded.premium,
		   prep_time = excluded.prep_time,
		   difficulty = excluded.difficulty,
		   key_ingredients = excluded.key_ingredients`,
		recipe.ID, recipe.Name, recipe.Description, recipe.Image, recipe.Region,
		string(recipe.Category), recipe.Premium, recipe.PrepTime, recipe.Difficulty, string(ingredients),
	)
	if err != nil {
		return fmt.Errorf("upsert recipe: %w", err)
	}
	return nil
}

func (r *RecipeRepository) GetByID(ctx context.Context, id string) (*domain.Recipe, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, description, image, region, category, premium, prep_time, difficulty, key_ingredients
		 FROM recipes WHERE id = ?`, id)

	recipe, err := scanRecipe(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query recipe by id: %w", err)
	}
	return recipe, nil
}

func (r *RecipeRepository) List(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, error) {
	query := `SELECT id, name, description, image, region, category, premium, prep_time, difficulty, key_ingredients
		 FROM recipes WHERE 1=1`
	var args []any

	if filter.Region != "" {
		query += " AND region = ?"
		args = append(args, filter.Region)
	}
	if filter.Category != "" {
		query += " AND category = ?"
		args = append(args, string(filter.Category))
	}
	if filter.Query != "" {
		query += " AND (name LIKE ? OR description LIKE ?)"
		pattern := "%" + filter.Query + "%"
		args = append(args, pattern, pattern)
	}
	query += " ORDER BY category, id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	var recipes []domain.Recipe
	for rows.Next() {
		recipe, err := scanRecipe(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		recipes = append(recipes, *recipe)
	}
	return recipes, rows.Err()
}

func (r *RecipeRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM recipes").Scan(&count); err != nil {
		return 0, fmt.Errorf("count recipes: %w", err)
	}
	return count, nil
}

func scanRecipe(scan func(dest ...any) error) (*domain.Recipe, error) {
	recipe := &domain.Recipe{}
	var category, ingredients string
	if err := scan(&recipe.ID, &recipe.Name, &recipe.Description, &recipe.Image, &recipe.Region,
		&category, &recipe.Premium, &recipe.PrepTime, &recipe.Difficulty, &ingredients); err != nil {
		return nil, err
	}
	recipe.Category = domain.RecipeCategory(category)
	if err := json.Unmarshal([]byte(ingredients), &recipe.KeyIngredients); err != nil {
		return nil, fmt.Errorf("unmarshal ingredients: %w", err)
	}
	return recipe, nil
}
