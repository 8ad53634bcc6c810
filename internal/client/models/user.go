package models

// UserProfile is the server-defined user record. Beyond the registration
// checks the client never enforces a schema on it, so it stays an open
// mapping of field name to value.
type UserProfile map[string]any

// Merge overlays patch onto the profile, replacing existing keys.
func (u UserProfile) Merge(patch map[string]any) {
	for k, v := range patch {
		u[k] = v
	}
}

func (u UserProfile) Name() string {
	return u.str("name")
}

func (u UserProfile) Email() string {
	return u.str("email")
}

func (u UserProfile) str(key string) string {
	if v, ok := u[key].(string); ok {
		return v
	}
	return ""
}

// RegisterDraft is the registration form. ConfirmPassword exists only for the
// client-side equality check and is never serialized.
type RegisterDraft struct {
	Name            string  `json:"name" validate:"required"`
	Email           string  `json:"email" validate:"required,email"`
	Password        string  `json:"password" validate:"required,min=6"`
	ConfirmPassword string  `json:"-" validate:"required,eqfield=Password"`
	Profession      string  `json:"profession"`
	Height          float64 `json:"height" validate:"required,gte=100,lte=250"`
	Weight          float64 `json:"weight" validate:"required,gte=30,lte=300"`
	TargetWeight    float64 `json:"targetWeight" validate:"required,gte=30,lte=300"`
	BodyStructure   string  `json:"bodyStructure"`
	Goal            string  `json:"goal"`
	ActivityLevel   string  `json:"activityLevel"`
}

// DefaultRegisterDraft returns a draft with the selector fields preset the way
// the registration screen presets them.
func DefaultRegisterDraft() RegisterDraft {
	return RegisterDraft{
		Profession:    "Other",
		BodyStructure: "Average",
		Goal:          "General Fitness",
		ActivityLevel: "Moderately Active",
	}
}

// Validate runs the registration guards: name non-empty, email well-formed,
// password length and confirmation, height 100-250, weights 30-300.
func (d RegisterDraft) Validate() error {
	return checkStruct(d)
}
