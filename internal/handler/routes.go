package handler

import (
	"net/http"

	"github.com/rehmoapp/rehmo/internal/service"
)

// Services bundles everything the HTTP layer depends on.
type Services struct {
	Auth          *service.AuthService
	Policy        *service.EntitlementPolicy
	Favorites     *service.FavoritesService
	Recipes       *service.RecipeService
	MealPlan      *service.MealPlanService
	Ads           *service.AdService
	Submissions   *service.SubmissionService
	Notifications *service.NotificationService
	Limiter       *service.TokenBucket
	CookieSecure  bool
}

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, svc Services) {
	authH := NewAuthHandler(svc.Auth, svc.Policy, svc.CookieSecure)
	recipesH := NewRecipesHandler(svc.Recipes, svc.Policy)
	planH := NewMealPlanHandler(svc.MealPlan, svc.Policy)
	favH := NewFavoritesHandler(svc.Favorites)
	adsH := NewAdsHandler(svc.Ads)
	subsH := NewSubmissionsHandler(svc.Submissions)
	notesH := NewNotificationsHandler(svc.Notifications)
	contactH := NewContactHandler()

	optional := func(h http.HandlerFunc) http.Handler {
		return OptionalAuth(svc.Auth, h)
	}
	required := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(svc.Auth, h)
	}
	limited := func(h http.Handler) http.Handler {
		return RateLimit(svc.Limiter, h)
	}

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.Handle("POST /api/auth/register", limited(http.HandlerFunc(authH.HandleRegister)))
	mux.Handle("POST /api/auth/login", limited(http.HandlerFunc(authH.HandleLogin)))
	mux.HandleFunc("POST /api/auth/logout", authH.HandleLogout)
	mux.Handle("GET /api/auth/me", required(authH.HandleMe))
	mux.Handle("POST /api/auth/upgrade", required(authH.HandleUpgrade))

	mux.Handle("GET /api/recipes", optional(recipesH.HandleList))
	mux.Handle("GET /api/recipes/{id}", optional(recipesH.HandleGet))

	mux.Handle("GET /api/meal-plan/week/{week}", optional(planH.HandleWeek))
	mux.Handle("GET /api/meal-plan/day/{day}", optional(planH.HandleDay))

	mux.Handle("GET /api/favorites", optional(favH.HandleList))
	mux.Handle("GET /api/favorites/{id}", optional(favH.HandleCheck))
	mux.Handle("PUT /api/favorites/{id}", optional(favH.HandleAdd))
	mux.Handle("DELETE /api/favorites/{id}", optional(favH.HandleRemove))

	mux.Handle("GET /api/ads", optional(adsH.HandleList))
	mux.Handle("GET /api/ads/random", optional(adsH.HandleRandom))

	mux.Handle("POST /api/submissions", limited(required(subsH.HandleSubmit)))
	mux.Handle("GET /api/submissions", required(subsH.HandleList))
	mux.Handle("GET /api/submissions/{id}/media/{kind}", required(subsH.HandleMedia))

	mux.Handle("GET /api/notifications", required(notesH.HandleList))
	mux.Handle("POST /api/notifications/{id}/read", required(notesH.HandleMarkRead))

	mux.Handle("POST /api/contact", limited(http.HandlerFunc(contactH.HandleContact)))
	mux.Handle("POST /api/feedback", limited(optional(contactH.HandleFeedback)))
}
