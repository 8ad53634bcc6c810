package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/avanags/fitpulse/internal/client/models"
	"github.com/avanags/fitpulse/internal/client/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. Auth failures are shown
// inline and leave the session anonymous; they are not returned as command
// errors.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		var authErr *session.AuthError
		if errors.As(err, &authErr) {
			fmt.Println("ERROR:", authErr.Message)
			return nil
		}
		return err
	}

	fmt.Printf("Logged in as %s.\n", a.session.User().Email())
	return nil
}

// Register walks through the registration form, validates it client-side and
// creates the account. Validation failures are printed per field; no request
// is sent until they pass.
func (a *App) Register(ctx context.Context) error {
	draft := models.DefaultRegisterDraft()

	var err error
	if draft.Name, err = getSimpleText(a.reader, "Enter name", os.Stdout); err != nil {
		return err
	}
	if draft.Email, err = getSimpleText(a.reader, "Enter email", os.Stdout); err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	confirm, err := getPassword(os.Stdout, "Confirm password")
	if err != nil {
		return err
	}
	draft.Password = string(password)
	draft.ConfirmPassword = string(confirm)

	if draft.Height, err = promptFloat(a.reader, "Height (cm)", 170, os.Stdout); err != nil {
		return err
	}
	if draft.Weight, err = promptFloat(a.reader, "Weight (kg)", 70, os.Stdout); err != nil {
		return err
	}
	if draft.TargetWeight, err = promptFloat(a.reader, "Target weight (kg)", draft.Weight, os.Stdout); err != nil {
		return err
	}
	if draft.Goal, err = promptDefault(a.reader, "Goal", draft.Goal, os.Stdout); err != nil {
		return err
	}
	if draft.ActivityLevel, err = promptDefault(a.reader, "Activity level", draft.ActivityLevel, os.Stdout); err != nil {
		return err
	}

	if err := a.session.Register(ctx, draft); err != nil {
		var valErr *models.ValidationError
		if errors.As(err, &valErr) {
			for field, msg := range valErr.Fields {
				fmt.Printf("ERROR: %s: %s\n", field, msg)
			}
			return nil
		}
		var authErr *session.AuthError
		if errors.As(err, &authErr) {
			fmt.Println("ERROR:", authErr.Message)
			return nil
		}
		return err
	}

	fmt.Println("Success! You are now logged in.")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.session.Logout()
	fmt.Println("Logged out.")
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	user := a.session.User()
	if user == nil {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("%s <%s>\n", user.Name(), user.Email())
	return nil
}
