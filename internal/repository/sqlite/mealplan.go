package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rehmoapp/rehmo/internal/domain"
)

// MealPlanRepository implements domain.MealPlanRepository using SQLite.
// Each day stores one row per slot (breakfast, lunch, supper).
type MealPlanRepository struct {
	db *sql.DB
}

// NewMealPlanRepository creates a new SQLite-backed MealPlanRepository.
func NewMealPlanRepository(db *DB) *MealPlanRepository {
	return &MealPlanRepository{db: db.SqlDB}
}

const (
	slotBreakfast = "breakfast"
	slotLunch     = "lunch"
	slotSupper    = "supper"
)

func (r *MealPlanRepository) UpsertDay(ctx context.Context, plan *domain.DayPlan) error {
	slots := []struct {
		slot string
		meal domain.Meal
	}{
		{slotBreakfast, plan.Breakfast},
		{slotLunch, plan.Lunch},
		{slotSupper, plan.Supper},
	}

	for _, s := range slots {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO meal_plan_meals (day, slot, meal_id, name, description)
			 VALUES (?, ?, ?, ?, ?)
			 ON CONFLICT (day, slot) DO UPDATE SET
			   meal_id = excluded.meal_id,
			   name = excluded.name,
			   description = excluded.description`,
			plan.Day, s.slot, s.meal.ID, s.meal.Name, s.meal.Description,
		)
		if err != nil {
			return fmt.Errorf("upsert day %d %s: %w", plan.Day, s.slot, err)
		}
	}
	return nil
}

func (r *MealPlanRepository) GetDay(ctx context.Context, day int) (*domain.DayPlan, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT slot, meal_id, name, description FROM meal_plan_meals WHERE day = ?`, day)
	if err != nil {
		return nil, fmt.Errorf("query day %d: %w", day, err)
	}
	defer rows.Close()

	plan := &domain.DayPlan{Day: day}
	found := false
	for rows.Next() {
		var slot string
		var meal domain.Meal
		if err := rows.Scan(&slot, &meal.ID, &meal.Name, &meal.Description); err != nil {
			return nil, fmt.Errorf("scan meal: %w", err)
		}
		found = true
		switch slot {
		case slotBreakfast:
			plan.Breakfast = meal
		case slotLunch:
			plan.Lunch = meal
		case slotSupper:
			plan.Supper = meal
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	return plan, nil
}

func (r *MealPlanRepository) CountDays(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(DISTINCT day) FROM meal_plan_meals").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count meal plan days: %w", err)
	}
	return count, nil
}
