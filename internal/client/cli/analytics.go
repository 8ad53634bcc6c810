package cli

import (
	"context"
	"fmt"

	"github.com/avanags/fitpulse/internal/client/metrics"
)

// Analytics fetches the two aggregate payloads and renders them with the
// local classification colors. Either fetch failing fails the whole screen.
func (a *App) Analytics(ctx context.Context) error {
	report, err := a.analytics.Load(ctx)
	if err != nil {
		fmt.Println("ERROR: Failed to load analytics.")
		return nil
	}

	bmi := report.Dashboard.BodyMetrics.BMI
	fmt.Printf("BMI: %.1f [%s] (%s)\n",
		bmi,
		report.Dashboard.BodyMetrics.BMICategory,
		metrics.ClassifyBMI(bmi).Color())

	rate := report.Dashboard.Progress.CompletionRate
	fmt.Printf("Completion rate: %.0f%% (%s)\n", rate, metrics.ClassifyCompletion(rate))

	fmt.Printf("Health score: %.0f\n", report.HealthScore.Score)
	for key, val := range report.HealthScore.Breakdown {
		fmt.Printf("  %s: %.0f\n", key, val)
	}

	if len(report.Dashboard.Recommendations) > 0 {
		fmt.Println("Recommendations:")
		for _, rec := range report.Dashboard.Recommendations {
			fmt.Println("  -", rec)
		}
	}
	for _, rec := range report.HealthScore.Recommendations {
		fmt.Println("  -", rec)
	}
	return nil
}
