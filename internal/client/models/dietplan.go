package models

import (
	"encoding/json"
	"fmt"
)

type Meal struct {
	Name     string `json:"name" validate:"required"`
	Time     string `json:"time,omitempty"`
	Calories int    `json:"calories,omitempty" validate:"gte=0"`
}

type DietPlan struct {
	ID            string   `json:"_id,omitempty"`
	Name          string   `json:"name" validate:"required"`
	Type          string   `json:"type" validate:"required"`
	DietType      string   `json:"dietType" validate:"required"`
	Goal          string   `json:"goal" validate:"required"`
	DailyCalories int      `json:"dailyCalories" validate:"required,gt=0"`
	Meals         []Meal   `json:"meals"`
	Days          []string `json:"days"`
}

func (p DietPlan) GetID() string { return p.ID }

func (p DietPlan) Validate() error { return checkStruct(p) }

// DefaultDietPlan is the draft a fresh editor opens with: a predefined
// maintenance plan covering the whole week.
func DefaultDietPlan() DietPlan {
	return DietPlan{
		Type:          "Predefined",
		DietType:      "Non-Vegetarian",
		Goal:          "Maintenance",
		DailyCalories: 2000,
		Meals:         []Meal{},
		Days:          append([]string(nil), DaysOfWeek...),
	}
}

// ParseMeals decodes the meals field from its free-text JSON form and
// validates every entry. The raw text is never accepted into a draft without
// passing through here; a malformed document leaves the draft untouched.
func ParseMeals(raw string) ([]Meal, error) {
	var meals []Meal
	if err := json.Unmarshal([]byte(raw), &meals); err != nil {
		return nil, &ValidationError{Fields: map[string]string{
			"Meals": "meals must be a JSON array of meal objects",
		}}
	}
	for i, m := range meals {
		if err := checkStruct(m); err != nil {
			return nil, fmt.Errorf("meal %d: %w", i+1, err)
		}
	}
	return meals, nil
}
