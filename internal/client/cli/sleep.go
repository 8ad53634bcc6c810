package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/avanags/fitpulse/internal/client/models"
	"github.com/avanags/fitpulse/internal/client/sync"
)

func (a *App) Sleep(ctx context.Context, args []string) error {
	return resourceCommand(ctx, a, a.sleep, args, editSleepEntry, renderSleepEntry)
}

func renderSleepEntry(s models.SleepEntry) string {
	return fmt.Sprintf("%s - %s to %s, %.1fh, %s", s.Date, s.SleepTime, s.WakeUpTime, s.Duration, s.Quality)
}

func editSleepEntry(a *App, c *sync.Controller[models.SleepEntry]) error {
	draft, open := c.Draft()
	if !open {
		return sync.ErrEditorClosed
	}

	date, err := promptDefault(a.reader, "Date (YYYY-MM-DD)", draft.Date, os.Stdout)
	if err != nil {
		return err
	}
	sleepTime, err := promptDefault(a.reader, "Sleep time (HH:MM)", draft.SleepTime, os.Stdout)
	if err != nil {
		return err
	}
	wakeTime, err := promptDefault(a.reader, "Wake up time (HH:MM)", draft.WakeUpTime, os.Stdout)
	if err != nil {
		return err
	}
	duration, err := promptFloat(a.reader, "Duration (hours)", draft.Duration, os.Stdout)
	if err != nil {
		return err
	}
	quality, err := promptDefault(a.reader, "Quality "+optionHint(models.SleepQualities), draft.Quality, os.Stdout)
	if err != nil {
		return err
	}
	notes, err := promptDefault(a.reader, "Notes", draft.Notes, os.Stdout)
	if err != nil {
		return err
	}

	return c.UpdateDraft(func(s *models.SleepEntry) {
		s.Date = date
		s.SleepTime = sleepTime
		s.WakeUpTime = wakeTime
		s.Duration = duration
		s.Quality = quality
		s.Notes = notes
	})
}
