package handler

import (
	"time"

	"github.com/rehmoapp/rehmo/internal/domain"
	"github.com/rehmoapp/rehmo/internal/service"
)

// upgradeURL is where locked content points the viewer.
const upgradeURL = "/premium"

// UserDTO is the JSON representation of a user.
type UserDTO struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Premium     bool   `json:"premium"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Premium:     u.Premium,
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   u.UpdatedAt.Format(time.RFC3339),
	}
}

// RecipeDTO is the JSON representation of a catalog recipe. Locked recipes
// keep their card fields (name, image, region, category) so the catalog can
// still render them, but the cooking details are withheld.
type RecipeDTO struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	Image          string   `json:"image"`
	Region         string   `json:"region"`
	Category       string   `json:"category"`
	Premium        bool     `json:"premium"`
	Locked         bool     `json:"locked"`
	UpgradeURL     string   `json:"upgradeUrl,omitempty"`
	PrepTime       string   `json:"prepTime,omitempty"`
	Difficulty     string   `json:"difficulty,omitempty"`
	KeyIngredients []string `json:"keyIngredients,omitempty"`
}

func toRecipeDTO(r *domain.Recipe, decision service.Decision) RecipeDTO {
	dto := RecipeDTO{
		ID:       r.ID,
		Name:     r.Name,
		Image:    r.Image,
		Region:   r.Region,
		Category: string(r.Category),
		Premium:  r.Premium,
	}
	if decision == service.Gated {
		dto.Locked = true
		dto.UpgradeURL = upgradeURL
		return dto
	}
	dto.Description = r.Description
	dto.PrepTime = r.PrepTime
	dto.Difficulty = r.Difficulty
	dto.KeyIngredients = r.KeyIngredients
	return dto
}

// MealDTO is the JSON representation of one meal in a plan day.
type MealDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func toMealDTO(m domain.Meal) MealDTO {
	return MealDTO{ID: m.ID, Name: m.Name, Description: m.Description}
}

// DayPlanDTO is the JSON representation of a meal-plan day. Locked days
// withhold the meals and carry the upgrade link instead.
type DayPlanDTO struct {
	Day        int      `json:"day"`
	Premium    bool     `json:"premium"`
	Locked     bool     `json:"locked"`
	UpgradeURL string   `json:"upgradeUrl,omitempty"`
	Breakfast  *MealDTO `json:"breakfast,omitempty"`
	Lunch      *MealDTO `json:"lunch,omitempty"`
	Supper     *MealDTO `json:"supper,omitempty"`
}

func toDayPlanDTO(d *domain.DayPlan, decision service.Decision) DayPlanDTO {
	dto := DayPlanDTO{
		Day:     d.Day,
		Premium: service.IsPremiumDay(d.Day),
	}
	if decision == service.Gated {
		dto.Locked = true
		dto.UpgradeURL = upgradeURL
		return dto
	}
	breakfast := toMealDTO(d.Breakfast)
	lunch := toMealDTO(d.Lunch)
	supper := toMealDTO(d.Supper)
	dto.Breakfast = &breakfast
	dto.Lunch = &lunch
	dto.Supper = &supper
	return dto
}

// AdDTO is the JSON representation of an ad.
type AdDTO struct {
	ID          string `json:"id"`
	Placement   string `json:"placement"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Link        string `json:"link"`
	CTA         string `json:"cta"`
	Category    string `json:"category"`
}

func toAdDTO(a *domain.Ad) AdDTO {
	return AdDTO{
		ID:          a.ID,
		Placement:   string(a.Placement),
		Title:       a.Title,
		Description: a.Description,
		Image:       a.Image,
		Link:        a.Link,
		CTA:         a.CTA,
		Category:    a.Category,
	}
}

func toAdDTOs(ads []domain.Ad) []AdDTO {
	dtos := make([]AdDTO, len(ads))
	for i := range ads {
		dtos[i] = toAdDTO(&ads[i])
	}
	return dtos
}

// SubmissionDTO is the JSON representation of a recipe submission.
type SubmissionDTO struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Region         string   `json:"region"`
	Category       string   `json:"category"`
	PrepTime       string   `json:"prepTime"`
	Difficulty     string   `json:"difficulty"`
	KeyIngredients []string `json:"keyIngredients"`
	HasImage       bool     `json:"hasImage"`
	HasVideo       bool     `json:"hasVideo"`
	Status         string   `json:"status"`
	CreatedAt      string   `json:"createdAt"`
}

func toSubmissionDTO(s *domain.RecipeSubmission) SubmissionDTO {
	return SubmissionDTO{
		ID:             s.ID,
		Name:           s.Name,
		Description:    s.Description,
		Region:         s.Region,
		Category:       string(s.Category),
		PrepTime:       s.PrepTime,
		Difficulty:     s.Difficulty,
		KeyIngredients: s.KeyIngredients,
		HasImage:       s.ImageKey != "",
		HasVideo:       s.VideoKey != "",
		Status:         string(s.Status),
		CreatedAt:      s.CreatedAt.Format(time.RFC3339),
	}
}

func toSubmissionDTOs(subs []domain.RecipeSubmission) []SubmissionDTO {
	dtos := make([]SubmissionDTO, len(subs))
	for i := range subs {
		dtos[i] = toSubmissionDTO(&subs[i])
	}
	return dtos
}

// NotificationDTO is the JSON representation of a notification.
type NotificationDTO struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt"`
}

func toNotificationDTO(n *domain.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        n.ID,
		Kind:      n.Kind,
		Title:     n.Title,
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
}

func toNotificationDTOs(notes []domain.Notification) []NotificationDTO {
	dtos := make([]NotificationDTO, len(notes))
	for i := range notes {
		dtos[i] = toNotificationDTO(&notes[i])
	}
	return dtos
}
