package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
)

// Profile shows the current profile and optionally walks through an edit.
// A successful save feeds the server's fresh copy back into the session.
func (a *App) Profile(ctx context.Context) error {
	profile, err := a.session.FetchProfile(ctx)
	if err != nil {
		fmt.Println("ERROR: Failed to load profile.")
		return nil
	}

	keys := make([]string, 0, len(profile))
	for k := range profile {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %s: %v\n", k, profile[k])
	}

	if !confirmYesNo(a.reader, "Edit profile?", os.Stdout) {
		return nil
	}

	name, err := promptDefault(a.reader, "Name", profile.Name(), os.Stdout)
	if err != nil {
		return err
	}
	height, err := promptFloat(a.reader, "Height (cm)", numField(profile, "height"), os.Stdout)
	if err != nil {
		return err
	}
	weight, err := promptFloat(a.reader, "Weight (kg)", numField(profile, "weight"), os.Stdout)
	if err != nil {
		return err
	}
	target, err := promptFloat(a.reader, "Target weight (kg)", numField(profile, "targetWeight"), os.Stdout)
	if err != nil {
		return err
	}

	profile["name"] = name
	profile["height"] = height
	profile["weight"] = weight
	profile["targetWeight"] = target

	if _, err := a.session.SaveProfile(ctx, profile); err != nil {
		fmt.Println("ERROR: Failed to save profile.")
		return nil
	}
	fmt.Println("OK: Profile updated!")
	return nil
}

func numField(profile map[string]any, key string) float64 {
	if v, ok := profile[key].(float64); ok {
		return v
	}
	return 0
}
