package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/avanags/fitpulse/internal/client/models"
	"github.com/avanags/fitpulse/internal/client/sync"
)

func (a *App) Workouts(ctx context.Context, args []string) error {
	return resourceCommand(ctx, a, a.workouts, args, editWorkout, renderWorkout)
}

func renderWorkout(w models.Workout) string {
	return fmt.Sprintf("%s (%s) - %s at %s, %d min", w.Name, w.Type, w.Day, w.Time, w.Duration)
}

func editWorkout(a *App, c *sync.Controller[models.Workout]) error {
	draft, open := c.Draft()
	if !open {
		return sync.ErrEditorClosed
	}

	name, err := promptDefault(a.reader, "Workout name", draft.Name, os.Stdout)
	if err != nil {
		return err
	}
	wtype, err := promptDefault(a.reader, "Type "+optionHint(models.WorkoutTypes), draft.Type, os.Stdout)
	if err != nil {
		return err
	}
	day, err := promptDefault(a.reader, "Day", draft.Day, os.Stdout)
	if err != nil {
		return err
	}
	when, err := promptDefault(a.reader, "Time (HH:MM)", draft.Time, os.Stdout)
	if err != nil {
		return err
	}
	duration, err := promptInt(a.reader, "Duration (min)", draft.Duration, os.Stdout)
	if err != nil {
		return err
	}
	notes, err := promptDefault(a.reader, "Notes", draft.Notes, os.Stdout)
	if err != nil {
		return err
	}

	return c.UpdateDraft(func(w *models.Workout) {
		w.Name = name
		w.Type = wtype
		w.Day = day
		w.Time = when
		w.Duration = duration
		w.Notes = notes
	})
}

func optionHint(options []string) string {
	return "(" + strings.Join(options, "/") + ")"
}
