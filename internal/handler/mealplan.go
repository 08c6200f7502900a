package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rehmoapp/rehmo/internal/domain"
	"github.com/rehmoapp/rehmo/internal/service"
)

// MealPlanHandler serves the 30-day meal plan. Days past the free window are
// gated for non-premium viewers.
type MealPlanHandler struct {
	plan   *service.MealPlanService
	policy *service.EntitlementPolicy
}

// NewMealPlanHandler creates a new MealPlanHandler.
func NewMealPlanHandler(plan *service.MealPlanService, policy *service.EntitlementPolicy) *MealPlanHandler {
	return &MealPlanHandler{plan: plan, policy: policy}
}

// HandleWeek returns the plan days for one week page.
// GET /api/meal-plan/week/{week}
// Response: {"week": N, "weeks": M, "days": [...]}
func (h *MealPlanHandler) HandleWeek(w http.ResponseWriter, r *http.Request) {
	week, err := strconv.Atoi(r.PathValue("week"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Week must be a number.")
		return
	}

	days, err := h.plan.Week(r.Context(), week)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("get plan week", "week", week, "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	viewer := ViewerFromContext(r.Context())
	dtos := make([]DayPlanDTO, len(days))
	for i := range days {
		decision := h.policy.Check(service.IsPremiumDay(days[i].Day), viewer)
		dtos[i] = toDayPlanDTO(&days[i], decision)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"week":  week,
		"weeks": service.PlanWeeks,
		"days":  dtos,
	})
}

// HandleDay returns the plan for a single day.
// GET /api/meal-plan/day/{day}
// Response: {"day": {...}}
func (h *MealPlanHandler) HandleDay(w http.ResponseWriter, r *http.Request) {
	day, err := strconv.Atoi(r.PathValue("day"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Day must be a number.")
		return
	}

	plan, err := h.plan.Day(r.Context(), day)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Plan day not found.")
			return
		}
		slog.Error("get plan day", "day", day, "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	viewer := ViewerFromContext(r.Context())
	decision := h.policy.Check(service.IsPremiumDay(plan.Day), viewer)

	writeJSON(w, http.StatusOK, map[string]any{
		"day": toDayPlanDTO(plan, decision),
	})
}
