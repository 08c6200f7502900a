package domain

import "context"

// RecipeCategory classifies a recipe in the catalog.
type RecipeCategory string

const (
	CategoryVegetarian    RecipeCategory = "vegetarian"
	CategoryNonVegetarian RecipeCategory = "non-vegetarian"
	CategoryOther         RecipeCategory = "other"
)

// ValidCategory reports whether c is one of the known catalog categories.
func ValidCategory(c RecipeCategory) bool {
	switch c {
	case CategoryVegetarian, CategoryNonVegetarian, CategoryOther:
		return true
	}
	return false
}

// Recipe is a catalog entry. Premium recipes are gated behind the
// entitlement policy.
type Recipe struct {
	ID             string
	Name           string
	Description    string
	Image          string
	Region         string
	Category       RecipeCategory
	Premium        bool
	PrepTime       string
	Difficulty     string
	KeyIngredients []string
}

// RecipeFilter narrows a catalog listing. Zero values match everything.
type RecipeFilter struct {
	Region   string
	Category RecipeCategory
	Query    string
}

// RecipeRepository defines persistence operations for the recipe catalog.
type RecipeRepository interface {
	Upsert(ctx context.Context, recipe *Recipe) error
	GetByID(ctx context.Context, id string) (*Recipe, error)
	List(ctx context.Context, filter RecipeFilter) ([]Recipe, error)
	Count(ctx context.Context) (int, error)
}
