package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/rehmoapp/rehmo/internal/domain"
	"github.com/rehmoapp/rehmo/internal/service"
)

// RecipesHandler serves the recipe catalog. Premium recipes pass through the
// entitlement policy; locked ones still return 200 with the card fields and
// locked set, never an error.
type RecipesHandler struct {
	recipes *service.RecipeService
	policy  *service.EntitlementPolicy
}

// NewRecipesHandler creates a new RecipesHandler.
func NewRecipesHandler(recipes *service.RecipeService, policy *service.EntitlementPolicy) *RecipesHandler {
	return &RecipesHandler{recipes: recipes, policy: policy}
}

// HandleList returns catalog recipes, optionally filtered.
// GET /api/recipes?region=...&category=...&q=...
// Response: {"recipes": [...]}
func (h *RecipesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	filter := domain.RecipeFilter{
		Region:   r.URL.Query().Get("region"),
		Category: domain.RecipeCategory(r.URL.Query().Get("category")),
		Query:    r.URL.Query().Get("q"),
	}

	recipes, err := h.recipes.List(r.Context(), filter)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("list recipes", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	viewer := ViewerFromContext(r.Context())
	dtos := make([]RecipeDTO, len(recipes))
	for i := range recipes {
		dtos[i] = toRecipeDTO(&recipes[i], h.policy.Check(recipes[i].Premium, viewer))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"recipes": dtos,
	})
}

// HandleGet returns one recipe by catalog ID.
// GET /api/recipes/{id}
// Response: {"recipe": {...}}
func (h *RecipesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	recipe, err := h.recipes.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Recipe not found.")
			return
		}
		slog.Error("get recipe", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	viewer := ViewerFromContext(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"recipe": toRecipeDTO(recipe, h.policy.Check(recipe.Premium, viewer)),
	})
}
