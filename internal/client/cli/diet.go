package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/avanags/fitpulse/internal/client/models"
	"github.com/avanags/fitpulse/internal/client/sync"
)

func (a *App) DietPlans(ctx context.Context, args []string) error {
	return resourceCommand(ctx, a, a.dietPlans, args, editDietPlan, renderDietPlan)
}

func renderDietPlan(p models.DietPlan) string {
	return fmt.Sprintf("%s (%s) - %s, %s, %d cal", p.Name, p.Type, p.DietType, p.Goal, p.DailyCalories)
}

func editDietPlan(a *App, c *sync.Controller[models.DietPlan]) error {
	draft, open := c.Draft()
	if !open {
		return sync.ErrEditorClosed
	}

	name, err := promptDefault(a.reader, "Plan name", draft.Name, os.Stdout)
	if err != nil {
		return err
	}
	ptype, err := promptDefault(a.reader, "Type (Predefined/Custom)", draft.Type, os.Stdout)
	if err != nil {
		return err
	}
	dietType, err := promptDefault(a.reader, "Diet type", draft.DietType, os.Stdout)
	if err != nil {
		return err
	}
	goal, err := promptDefault(a.reader, "Goal", draft.Goal, os.Stdout)
	if err != nil {
		return err
	}
	calories, err := promptInt(a.reader, "Daily calories", draft.DailyCalories, os.Stdout)
	if err != nil {
		return err
	}

	// Meals are entered as a JSON array and must parse and validate before
	// they are accepted; a malformed document keeps the previous meals.
	meals := draft.Meals
	currentMeals, _ := json.Marshal(draft.Meals)
	rawMeals, err := promptDefault(a.reader, "Meals (JSON)", string(currentMeals), os.Stdout)
	if err != nil {
		return err
	}
	if rawMeals != string(currentMeals) {
		parsed, perr := models.ParseMeals(rawMeals)
		if perr != nil {
			fmt.Println("ERROR:", perr.Error())
			fmt.Println("Keeping previous meals.")
		} else {
			meals = parsed
		}
	}

	return c.UpdateDraft(func(p *models.DietPlan) {
		p.Name = name
		p.Type = ptype
		p.DietType = dietType
		p.Goal = goal
		p.DailyCalories = calories
		p.Meals = meals
	})
}
