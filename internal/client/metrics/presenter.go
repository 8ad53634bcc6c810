// Package metrics fetches the server-computed aggregate payloads and applies
// the local display classification rules. It is read-only: the numbers come
// from the server, the client only picks categories and colors.
package metrics

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/avanags/fitpulse/internal/client/api"
	"github.com/avanags/fitpulse/internal/client/models"
)

// Report bundles the two aggregate payloads. It only exists once both
// fetches have succeeded; there is no partial rendering.
type Report struct {
	Dashboard   models.DashboardSummary
	HealthScore models.HealthScore
}

type Presenter struct {
	api *api.Client
}

func NewPresenter(client *api.Client) *Presenter {
	return &Presenter{api: client}
}

// Load fetches the dashboard summary and the health score concurrently.
// If either fetch fails the whole load fails; no retry beyond the single
// attempt per payload.
func (p *Presenter) Load(ctx context.Context) (*Report, error) {
	var report Report

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return p.api.Get(ctx, "/api/analytics/dashboard", &report.Dashboard)
	})
	g.Go(func() error {
		return p.api.Get(ctx, "/api/analytics/health-score", &report.HealthScore)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &report, nil
}
