package models

// Analytics payloads are computed server-side and consumed read-only. Only
// the numeric fields the client classifies for display are typed; everything
// else rides along as opaque text.

type BodyMetrics struct {
	BMI         float64 `json:"bmi"`
	BMICategory string  `json:"bmiCategory"`
	Weight      float64 `json:"weight"`
	Height      float64 `json:"height"`
}

type Progress struct {
	CompletionRate float64 `json:"completionRate"`
}

type DashboardSummary struct {
	BodyMetrics     BodyMetrics `json:"bodyMetrics"`
	Progress        Progress    `json:"progress"`
	Recommendations []string    `json:"recommendations"`
}

type HealthScore struct {
	Score           float64            `json:"score"`
	Breakdown       map[string]float64 `json:"breakdown"`
	Recommendations []string           `json:"recommendations"`
}
