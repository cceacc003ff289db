package storefront

import (
	"context"
	"time"

	healthuc "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/usecase/health"
)

// HealthStatus represents the aggregated system health.
type HealthStatus struct {
	Status string            // "ok", "degraded", "error"
	Checks map[string]string // catalog, llm, cache → "ok"/"error"
}

// Health checks the health of all system components.
// Only a catalog failure makes the status "error".
func (c *Client) Health(ctx context.Context) HealthStatus {
	start := time.Now()
	report := c.healthSvc.Check(ctx)

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	out := HealthStatus{
		Status: string(report.Status),
		Checks: checks,
	}
	c.obs.observe("health", start, healthStatus(out), nil)
	return out
}

// healthUseCase is the internal interface for health checks.
type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}
