package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rehmoapp/rehmo/internal/handler"
	"github.com/rehmoapp/rehmo/internal/repository/sqlite"
	"github.com/rehmoapp/rehmo/internal/service"
	"github.com/robfig/cron/v3"
)

func main() {
	// Load .env for local development; a missing file is fine.
	_ = godotenv.Load()

	logOpts := &slog.HandlerOptions{Level: slog.LevelInfo}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, logOpts)))

	port := envOrDefault("PORT", "8080")
	dbPath := envOrDefault("DATABASE_PATH", "rehmo.db")
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if len(jwtSecret) < 32 {
		slog.Error("JWT_SECRET must be at least 32 characters for HMAC-SHA256 security")
		os.Exit(1)
	}

	// Default to secure cookies; disable only for local development.
	cookieSecure := os.Getenv("COOKIE_SECURE") != "false"

	bcryptCost := 12
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			slog.Error("invalid BCRYPT_COST", "error", err)
			os.Exit(1)
		}
		if parsed < 4 || parsed > 14 {
			slog.Error("BCRYPT_COST must be between 4 and 14", "value", parsed)
			os.Exit(1)
		}
		bcryptCost = parsed
	}

	db, err := sqlite.New(dbPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations applied")

	policy := service.NewEntitlementPolicy()
	authService := service.NewAuthService(db.Users(), jwtSecret, bcryptCost)
	notificationService := service.NewNotificationService(db.Notifications())
	favoritesService := service.NewFavoritesService(db.KV(), notificationService)
	recipeService := service.NewRecipeService(db.Recipes())
	mealPlanService := service.NewMealPlanService(db.MealPlan())
	adService := service.NewAdService(db.Ads(), policy)
	submissionService := service.NewSubmissionService(db.Submissions(), db.Files(), notificationService)

	// Seed the built-in catalog, meal plan, and ad inventory (idempotent).
	if err := recipeService.SeedCatalog(context.Background()); err != nil {
		slog.Error("failed to seed recipe catalog", "error", err)
		os.Exit(1)
	}
	if err := mealPlanService.SeedPlan(context.Background()); err != nil {
		slog.Error("failed to seed meal plan", "error", err)
		os.Exit(1)
	}
	if err := adService.SeedInventory(context.Background()); err != nil {
		slog.Error("failed to seed ad inventory", "error", err)
		os.Exit(1)
	}
	slog.Info("built-in content seeded")

	// Reshuffle the ad rotation daily so placements don't go stale.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@daily", func() {
		if err := adService.Reshuffle(context.Background()); err != nil {
			slog.Error("ad reshuffle failed", "error", err)
		}
	}); err != nil {
		slog.Error("failed to schedule ad reshuffle", "error", err)
		os.Exit(1)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// 10 requests burst, refilling one per second, per client IP.
	limiter := service.NewTokenBucket(1, 10)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, handler.Services{
		Auth:          authService,
		Policy:        policy,
		Favorites:     favoritesService,
		Recipes:       recipeService,
		MealPlan:      mealPlanService,
		Ads:           adService,
		Submissions:   submissionService,
		Notifications: notificationService,
		Limiter:       limiter,
		CookieSecure:  cookieSecure,
	})

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler.SecurityHeaders(mux),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
