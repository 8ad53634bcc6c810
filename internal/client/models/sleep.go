package models

var SleepQualities = []string{"Poor", "Fair", "Good", "Excellent"}

type SleepEntry struct {
	ID         string  `json:"_id,omitempty"`
	Date       string  `json:"date" validate:"required"`
	SleepTime  string  `json:"sleepTime" validate:"required"`
	WakeUpTime string  `json:"wakeUpTime" validate:"required"`
	Duration   float64 `json:"duration" validate:"required,gt=0"`
	Quality    string  `json:"quality" validate:"required"`
	Notes      string  `json:"notes"`
}

func (s SleepEntry) GetID() string { return s.ID }

func (s SleepEntry) Validate() error { return checkStruct(s) }

// DefaultSleepEntry is the draft a fresh editor opens with.
func DefaultSleepEntry() SleepEntry {
	return SleepEntry{
		SleepTime:  "22:00",
		WakeUpTime: "06:00",
		Duration:   8,
		Quality:    "Good",
	}
}
