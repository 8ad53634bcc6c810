package models

// WorkoutTypes and DaysOfWeek mirror the selector options the server accepts.
var (
	WorkoutTypes = []string{"Cardio", "Strength", "Flexibility", "Mixed", "Sports"}
	DaysOfWeek   = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
)

type Workout struct {
	ID        string   `json:"_id,omitempty"`
	Name      string   `json:"name" validate:"required"`
	Type      string   `json:"type" validate:"required"`
	Day       string   `json:"day" validate:"required"`
	Time      string   `json:"time" validate:"required"`
	Duration  int      `json:"duration" validate:"required,gt=0"`
	Exercises []string `json:"exercises"`
	Notes     string   `json:"notes"`
}

func (w Workout) GetID() string { return w.ID }

func (w Workout) Validate() error { return checkStruct(w) }

// DefaultWorkout is the draft a fresh editor opens with.
func DefaultWorkout() Workout {
	return Workout{
		Type:      "Cardio",
		Day:       "Monday",
		Time:      "07:00",
		Duration:  60,
		Exercises: []string{},
	}
}
