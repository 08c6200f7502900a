package service

import (
	"context"
	"fmt"

	"github.com/rehmoapp/rehmo/internal/domain"
)

// RecipeService handles catalog queries and seeding.
type RecipeService struct {
	recipes domain.RecipeRepository
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(recipes domain.RecipeRepository) *RecipeService {
	return &RecipeService{recipes: recipes}
}

// List returns catalog recipes matching the filter.
func (s *RecipeService) List(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, error) {
	if filter.Category != "" && !domain.ValidCategory(filter.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, filter.Category)
	}
	return s.recipes.List(ctx, filter)
}

// GetByID returns a recipe by its catalog ID.
func (s *RecipeService) GetByID(ctx context.Context, id string) (*domain.Recipe, error) {
	return s.recipes.GetByID(ctx, id)
}

// SeedCatalog loads the built-in recipe catalog on first run (idempotent).
func (s *RecipeService) SeedCatalog(ctx context.Context) error {
	count, err := s.recipes.Count(ctx)
	if err != nil {
		return fmt.Errorf("count recipes: %w", err)
	}
	if count > 0 {
		return nil
	}

	for i := range builtinRecipes {
		if err := s.recipes.Upsert(ctx, &builtinRecipes[i]); err != nil {
			return fmt.Errorf("seed recipe %s: %w", builtinRecipes[i].ID, err)
		}
	}
	return nil
}
