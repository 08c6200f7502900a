package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rehmoapp/rehmo/internal/domain"
	"github.com/rehmoapp/rehmo/internal/service"
)

func newTestMealPlan(t *testing.T) *service.MealPlanService {
	t.Helper()
	db := newTestDB(t)
	plan := service.NewMealPlanService(db.MealPlan())
	if err := plan.SeedPlan(context.Background()); err != nil {
		t.Fatalf("SeedPlan: %v", err)
	}
	return plan
}

func TestIsPremiumDay(t *testing.T) {
	for day := 1; day <= service.FreeDays; day++ {
		if service.IsPremiumDay(day) {
			t.Fatalf("day %d should be free", day)
		}
	}
	for day := service.FreeDays + 1; day <= service.PlanDays; day++ {
		if !service.IsPremiumDay(day) {
			t.Fatalf("day %d should be premium", day)
		}
	}
}

func TestMealPlanService_Day(t *testing.T) {
	plan := newTestMealPlan(t)
	ctx := context.Background()

	day, err := plan.Day(ctx, 1)
	if err != nil {
		t.Fatalf("Day: %v", err)
	}
	if day.Breakfast.Name != "Moroccan Mint Tea with Msemen" {
		t.Fatalf("unexpected day 1 breakfast: %q", day.Breakfast.Name)
	}

	// Premium days carry generated placeholder meals.
	day, err = plan.Day(ctx, 15)
	if err != nil {
		t.Fatalf("Day 15: %v", err)
	}
	if !strings.HasPrefix(day.Breakfast.ID, "premium-breakfast-") {
		t.Fatalf("unexpected day 15 breakfast ID: %q", day.Breakfast.ID)
	}
}

func TestMealPlanService_Day_OutOfRange(t *testing.T) {
	plan := newTestMealPlan(t)
	ctx := context.Background()

	for _, day := range []int{0, -1, service.PlanDays + 1} {
		_, err := plan.Day(ctx, day)
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("day %d: expected ErrInvalidInput, got %v", day, err)
		}
	}
}

func TestMealPlanService_Week(t *testing.T) {
	plan := newTestMealPlan(t)
	ctx := context.Background()

	days, err := plan.Week(ctx, 1)
	if err != nil {
		t.Fatalf("Week 1: %v", err)
	}
	if len(days) != service.WeekLength {
		t.Fatalf("expected %d days in week 1, got %d", service.WeekLength, len(days))
	}
	if days[0].Day != 1 || days[6].Day != 7 {
		t.Fatalf("week 1 spans days %d-%d, expected 1-7", days[0].Day, days[6].Day)
	}

	// The final week page is short: days 29 and 30 only.
	days, err = plan.Week(ctx, service.PlanWeeks)
	if err != nil {
		t.Fatalf("Week %d: %v", service.PlanWeeks, err)
	}
	if len(days) != 2 {
		t.Fatalf("expected 2 days in the last week, got %d", len(days))
	}
	if days[len(days)-1].Day != service.PlanDays {
		t.Fatalf("last day is %d, expected %d", days[len(days)-1].Day, service.PlanDays)
	}
}

func TestMealPlanService_Week_OutOfRange(t *testing.T) {
	plan := newTestMealPlan(t)
	ctx := context.Background()

	for _, week := range []int{0, service.PlanWeeks + 1} {
		_, err := plan.Week(ctx, week)
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("week %d: expected ErrInvalidInput, got %v", week, err)
		}
	}
}

func TestMealPlanService_SeedIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	plan := service.NewMealPlanService(db.MealPlan())
	ctx := context.Background()

	if err := plan.SeedPlan(ctx); err != nil {
		t.Fatalf("first SeedPlan: %v", err)
	}
	if err := plan.SeedPlan(ctx); err != nil {
		t.Fatalf("second SeedPlan: %v", err)
	}

	count, err := db.MealPlan().CountDays(ctx)
	if err != nil {
		t.Fatalf("CountDays: %v", err)
	}
	if count != service.PlanDays {
		t.Fatalf("expected %d plan days, got %d", service.PlanDays, count)
	}
}
