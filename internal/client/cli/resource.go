package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/avanags/fitpulse/internal/client/models"
	"github.com/avanags/fitpulse/internal/client/sync"
)

// fieldEditor prompts for the open draft's fields, writing each accepted
// value through Controller.UpdateDraft.
type fieldEditor[T models.Entity] func(a *App, c *sync.Controller[T]) error

// resourceCommand drives one resource kind from the REPL. Subcommands:
// list (default), add, edit <id>, del <id>. Save and delete outcomes are
// surfaced through the controller's notifications.
func resourceCommand[T models.Entity](
	ctx context.Context,
	a *App,
	c *sync.Controller[T],
	args []string,
	edit fieldEditor[T],
	render func(T) string,
) error {
	sub := "list"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "list", "l":
		if err := c.Refresh(ctx); err != nil {
			return nil // the failure notice has already been surfaced
		}
		items := c.Items()
		if len(items) == 0 {
			fmt.Println("(empty)")
			return nil
		}
		for _, item := range items {
			fmt.Printf("%s  %s\n", item.GetID(), render(item))
		}
		return nil

	case "add":
		if err := c.OpenEditor(nil); err != nil {
			return err
		}
		return editAndSubmit(ctx, a, c, edit)

	case "edit":
		if len(args) < 2 {
			return errors.New("usage: edit <id>")
		}
		item, ok := findByID(c.Items(), args[1])
		if !ok {
			return fmt.Errorf("no item with id %q, try list first", args[1])
		}
		if err := c.OpenEditor(&item); err != nil {
			return err
		}
		return editAndSubmit(ctx, a, c, edit)

	case "del", "delete":
		if len(args) < 2 {
			return errors.New("usage: del <id>")
		}
		item, ok := findByID(c.Items(), args[1])
		if !ok {
			return fmt.Errorf("no item with id %q, try list first", args[1])
		}
		confirm := func() bool {
			return confirmYesNo(a.reader, "Delete "+render(item)+"?", os.Stdout)
		}
		if err := c.Remove(ctx, item, confirm); err != nil {
			return nil // notice already surfaced
		}
		return nil

	default:
		return fmt.Errorf("unknown subcommand %q (list, add, edit <id>, del <id>)", sub)
	}
}

// editAndSubmit runs the field editor over the open draft and submits it.
// A validation failure keeps the editor open with the draft intact and loops
// back into editing; any other failure leaves the decision to the user and
// closes the editor (no automatic retry).
func editAndSubmit[T models.Entity](ctx context.Context, a *App, c *sync.Controller[T], edit fieldEditor[T]) error {
	for {
		if err := edit(a, c); err != nil {
			_ = c.CloseEditor()
			return err
		}

		err := c.Submit(ctx)
		if err == nil {
			return nil
		}

		var valErr *models.ValidationError
		if errors.As(err, &valErr) {
			for field, msg := range valErr.Fields {
				fmt.Printf("ERROR: %s: %s\n", field, msg)
			}
			if confirmYesNo(a.reader, "Fix and resubmit?", os.Stdout) {
				continue
			}
			_ = c.CloseEditor()
			return nil
		}

		// Save failed; the notice is already printed and the draft was
		// preserved, but a REPL has no background dialog to leave open.
		_ = c.CloseEditor()
		return nil
	}
}

func findByID[T models.Entity](items []T, id string) (T, bool) {
	for _, item := range items {
		if item.GetID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}
