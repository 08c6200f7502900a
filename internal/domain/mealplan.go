package domain

import "context"

// Meal is a single entry in a meal-plan day.
type Meal struct {
	ID          string
	Name        string
	Description string
}

// DayPlan holds the three meals planned for one day of the 30-day plan.
type DayPlan struct {
	Day       int
	Breakfast Meal
	Lunch     Meal
	Supper    Meal
}

// MealPlanRepository defines persistence operations for the meal plan.
type MealPlanRepository interface {
	UpsertDay(ctx context.Context, plan *DayPlan) error
	GetDay(ctx context.Context, day int) (*DayPlan, error)
	CountDays(ctx context.Context) (int, error)
}
