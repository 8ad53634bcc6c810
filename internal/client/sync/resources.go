package sync

import (
	"github.com/avanags/fitpulse/internal/client/api"
	"github.com/avanags/fitpulse/internal/client/models"
	"github.com/avanags/fitpulse/internal/logging"
)

// The three resource kinds share one controller implementation and differ
// only in base path and default draft.

func NewWorkouts(client *api.Client, notify func(Notice), log logging.Logger) *Controller[models.Workout] {
	return New(client, Config[models.Workout]{
		BasePath: "/api/workouts",
		Singular: "workout",
		Plural:   "workouts",
		NewDraft: models.DefaultWorkout,
	}, notify, log)
}

func NewDietPlans(client *api.Client, notify func(Notice), log logging.Logger) *Controller[models.DietPlan] {
	return New(client, Config[models.DietPlan]{
		BasePath: "/api/diet-plans",
		Singular: "diet plan",
		Plural:   "diet plans",
		NewDraft: models.DefaultDietPlan,
	}, notify, log)
}

func NewSleepEntries(client *api.Client, notify func(Notice), log logging.Logger) *Controller[models.SleepEntry] {
	return New(client, Config[models.SleepEntry]{
		BasePath: "/api/sleep",
		Singular: "sleep entry",
		Plural:   "sleep entries",
		NewDraft: models.DefaultSleepEntry,
	}, notify, log)
}
