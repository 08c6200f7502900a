package service

import (
	"context"
	"fmt"

	"github.com/rehmoapp/rehmo/internal/domain"
)

const (
	// PlanDays is the length of the rolling meal plan.
	PlanDays = 30
	// FreeDays is how many leading days are available to everyone;
	// days beyond this are premium content.
	FreeDays = 5
	// WeekLength is the paging unit for the plan view.
	WeekLength = 7
)

// PlanWeeks is the number of week pages in the plan (the last page is short).
const PlanWeeks = (PlanDays + WeekLength - 1) / WeekLength

// MealPlanService handles the 30-day meal plan.
type MealPlanService struct {
	plan domain.MealPlanRepository
}

// NewMealPlanService creates a new MealPlanService.
func NewMealPlanService(plan domain.MealPlanRepository) *MealPlanService {
	return &MealPlanService{plan: plan}
}

// IsPremiumDay reports whether a plan day is premium content.
func IsPremiumDay(day int) bool {
	return day > FreeDays
}

// Day returns the plan for a single day, 1-based.
func (s *MealPlanService) Day(ctx context.Context, day int) (*domain.DayPlan, error) {
	if day < 1 || day > PlanDays {
		return nil, fmt.Errorf("%w: day must be between 1 and %d", domain.ErrInvalidInput, PlanDays)
	}
	return s.plan.GetDay(ctx, day)
}

// Week returns the plan days for the given week page, 1-based. The final
// week is shorter than seven days.
func (s *MealPlanService) Week(ctx context.Context, week int) ([]domain.DayPlan, error) {
	if week < 1 || week > PlanWeeks {
		return nil, fmt.Errorf("%w: week must be between 1 and %d", domain.ErrInvalidInput, PlanWeeks)
	}

	start := (week-1)*WeekLength + 1
	end := min(start+WeekLength-1, PlanDays)

	days := make([]domain.DayPlan, 0, end-start+1)
	for day := start; day <= end; day++ {
		plan, err := s.plan.GetDay(ctx, day)
		if err != nil {
			return nil, fmt.Errorf("get day %d: %w", day, err)
		}
		days = append(days, *plan)
	}
	return days, nil
}

// SeedPlan loads the built-in 30-day plan on first run (idempotent).
func (s *MealPlanService) SeedPlan(ctx context.Context) error {
	count, err := s.plan.CountDays(ctx)
	if err != nil {
		return fmt.Errorf("count plan days: %w", err)
	}
	if count >= PlanDays {
		return nil
	}

	for _, day := range builtinMealPlan() {
		if err := s.plan.UpsertDay(ctx, &day); err != nil {
			return fmt.Errorf("seed day %d: %w", day.Day, err)
		}
	}
	return nil
}
