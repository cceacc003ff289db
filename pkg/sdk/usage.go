package storefront

import (
	"context"
	"time"

	domusage "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/usage"
)

// UsagePeriod is the aggregation granularity for usage reports.
type UsagePeriod string

// UsagePeriod constants.
const (
	PeriodDay   UsagePeriod = "day"
	PeriodMonth UsagePeriod = "month"
)

// UsageReport contains language-model token usage for a budget period.
// TokensLimit and TokensRemaining are 0 when the period is uncapped.
type UsageReport struct {
	Period          UsagePeriod
	PeriodStart     time.Time
	PeriodEnd       time.Time
	TokensUsed      int64
	TokensLimit     int64
	TokensRemaining int64
	IsExhausted     bool
}

// Usage returns a token usage report for the given period. Unknown periods report the month.
// An exhausted budget is recorded as degraded.
func (c *Client) Usage(ctx context.Context, period UsagePeriod) UsageReport {
	start := time.Now()
	r := c.usageSvc.GetReport(ctx, domusage.Period(period))

	st := statusOK
	if r.Exhausted() {
		st = statusDegraded
	}
	c.obs.observe("usage", start, st, nil)

	return UsageReport{
		Period:          UsagePeriod(r.Period()),
		PeriodStart:     r.PeriodStart(),
		PeriodEnd:       r.PeriodEnd(),
		TokensUsed:      r.TokensUsed(),
		TokensLimit:     r.TokensLimit(),
		TokensRemaining: r.TokensRemaining(),
		IsExhausted:     r.Exhausted(),
	}
}

// usageUseCase is the internal interface for usage reports.
type usageUseCase interface {
	GetReport(ctx context.Context, period domusage.Period) domusage.Report
}
