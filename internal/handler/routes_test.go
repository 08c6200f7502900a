package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rehmoapp/rehmo/internal/handler"
	"github.com/rehmoapp/rehmo/internal/repository/sqlite"
	"github.com/rehmoapp/rehmo/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *http.ServeMux {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(context.Background()))
	t.Cleanup(func() { db.Close() })

	policy := service.NewEntitlementPolicy()
	notes := service.NewNotificationService(db.Notifications())
	recipes := service.NewRecipeService(db.Recipes())
	plan := service.NewMealPlanService(db.MealPlan())
	ads := service.NewAdService(db.Ads(), policy)

	ctx := context.Background()
	require.NoError(t, recipes.SeedCatalog(ctx))
	require.NoError(t, plan.SeedPlan(ctx))
	require.NoError(t, ads.SeedInventory(ctx))

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, handler.Services{
		Auth:          service.NewAuthService(db.Users(), testJWTSecret, 4),
		Policy:        policy,
		Favorites:     service.NewFavoritesService(db.KV(), notes),
		Recipes:       recipes,
		MealPlan:      plan,
		Ads:           ads,
		Submissions:   service.NewSubmissionService(db.Submissions(), db.Files(), notes),
		Notifications: notes,
		Limiter:       service.NewTokenBucket(100, 100),
		CookieSecure:  false,
	})
	return mux
}

func do(t *testing.T, mux *http.ServeMux, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func authCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == "auth_token" {
			return c
		}
	}
	t.Fatal("no auth_token cookie in response")
	return nil
}

func signIn(t *testing.T, mux *http.ServeMux) *http.Cookie {
	t.Helper()
	w := do(t, mux, http.MethodPost, "/api/auth/register",
		`{"email":"flow@example.com","displayName":"Flow","password":"password123","confirmPassword":"password123"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, mux, http.MethodPost, "/api/auth/login",
		`{"email":"flow@example.com","password":"password123"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	return authCookie(t, w)
}

func TestHealthz(t *testing.T) {
	mux := newTestServer(t)
	w := do(t, mux, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
}

func TestPremiumRecipeIsLockedUntilUpgrade(t *testing.T) {
	mux := newTestServer(t)

	// Anonymous viewers get the premium recipe with locked set, still 200.
	w := do(t, mux, http.MethodGet, "/api/recipes/v3", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	recipe := decode(t, w)["recipe"].(map[string]any)
	assert.Equal(t, true, recipe["locked"])
	assert.Equal(t, "/premium", recipe["upgradeUrl"])
	assert.Nil(t, recipe["description"])

	// Signing in is not enough; premium content stays locked.
	cookie := signIn(t, mux)
	w = do(t, mux, http.MethodGet, "/api/recipes/v3", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	recipe = decode(t, w)["recipe"].(map[string]any)
	assert.Equal(t, true, recipe["locked"])

	// Upgrading re-issues the cookie with the premium claim.
	w = do(t, mux, http.MethodPost, "/api/auth/upgrade", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	upgraded := authCookie(t, w)

	w = do(t, mux, http.MethodGet, "/api/recipes/v3", "", upgraded)
	require.Equal(t, http.StatusOK, w.Code)
	recipe = decode(t, w)["recipe"].(map[string]any)
	assert.Equal(t, false, recipe["locked"])
	assert.Equal(t, "Ghanaian Red Red", recipe["name"])
	assert.NotEmpty(t, recipe["description"])

	// Logging out and back in drops the premium claim.
	w = do(t, mux, http.MethodPost, "/api/auth/login",
		`{"email":"flow@example.com","password":"password123"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	fresh := authCookie(t, w)

	w = do(t, mux, http.MethodGet, "/api/recipes/v3", "", fresh)
	recipe = decode(t, w)["recipe"].(map[string]any)
	assert.Equal(t, true, recipe["locked"])
}

func TestMealPlanGating(t *testing.T) {
	mux := newTestServer(t)

	// Day 3 is free for everyone.
	w := do(t, mux, http.MethodGet, "/api/meal-plan/day/3", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	day := decode(t, w)["day"].(map[string]any)
	assert.Equal(t, false, day["locked"])
	assert.NotNil(t, day["breakfast"])

	// Day 6 is premium; anonymous viewers see it locked.
	w = do(t, mux, http.MethodGet, "/api/meal-plan/day/6", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	day = decode(t, w)["day"].(map[string]any)
	assert.Equal(t, true, day["locked"])
	assert.Nil(t, day["breakfast"])

	// Week pages mix free and locked days.
	w = do(t, mux, http.MethodGet, "/api/meal-plan/week/1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	days := decode(t, w)["days"].([]any)
	require.Len(t, days, 7)
	assert.Equal(t, false, days[0].(map[string]any)["locked"])
	assert.Equal(t, true, days[6].(map[string]any)["locked"])
}

func TestFavoritesFlow(t *testing.T) {
	mux := newTestServer(t)

	// Anonymous add is rejected.
	w := do(t, mux, http.MethodPut, "/api/favorites/v1", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	cookie := signIn(t, mux)

	w = do(t, mux, http.MethodPut, "/api/favorites/v1", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, mux, http.MethodGet, "/api/favorites", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	favs := decode(t, w)["favorites"].([]any)
	require.Len(t, favs, 1)
	assert.Equal(t, "v1", favs[0])

	w = do(t, mux, http.MethodGet, "/api/favorites/v1", "", cookie)
	assert.Equal(t, true, decode(t, w)["favorite"])

	w = do(t, mux, http.MethodDelete, "/api/favorites/v1", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["favorites"])

	// The add emitted a notification the user can read and mark.
	w = do(t, mux, http.MethodGet, "/api/notifications", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	notes := decode(t, w)["notifications"].([]any)
	require.NotEmpty(t, notes)

	id := notes[0].(map[string]any)["id"].(string)
	w = do(t, mux, http.MethodPost, "/api/notifications/"+id+"/read", "", cookie)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAdsSuppressedForPremium(t *testing.T) {
	mux := newTestServer(t)

	// Anonymous viewers get ads.
	w := do(t, mux, http.MethodGet, "/api/ads/random?placement=banner", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	ad := decode(t, w)["ad"].(map[string]any)
	assert.Equal(t, "banner", ad["placement"])

	// Premium sessions get nothing.
	cookie := signIn(t, mux)
	w = do(t, mux, http.MethodPost, "/api/auth/upgrade", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	upgraded := authCookie(t, w)

	w = do(t, mux, http.MethodGet, "/api/ads/random?placement=banner", "", upgraded)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, mux, http.MethodGet, "/api/ads?placement=sidebar", "", upgraded)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestContactAndFeedback(t *testing.T) {
	mux := newTestServer(t)

	w := do(t, mux, http.MethodPost, "/api/contact",
		`{"name":"A","email":"a@example.com","subject":"Hi","message":"Hello"}`, nil)
	assert.Equal(t, http.StatusAccepted, w.Code)

	w = do(t, mux, http.MethodPost, "/api/contact",
		`{"name":"A","email":"not-an-email","message":"Hello"}`, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(t, mux, http.MethodPost, "/api/feedback", `{"rating":5,"message":"Great"}`, nil)
	assert.Equal(t, http.StatusAccepted, w.Code)

	w = do(t, mux, http.MethodPost, "/api/feedback", `{"rating":9}`, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
