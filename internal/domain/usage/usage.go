// Package usage models language-model token consumption reports.
package usage

import "time"

// Period is the aggregation granularity.
type Period string

// Aggregation period constants.
const (
	PeriodDay   Period = "day"
	PeriodMonth Period = "month"
)

// IsValid checks if the period is one of the supported values.
func (p Period) IsValid() bool {
	return p == PeriodDay || p == PeriodMonth
}

// Report is a token usage report for one budget period.
// A zero limit means the period is not capped.
type Report struct {
	period    Period
	start     time.Time
	end       time.Time
	used      int64
	limit     int64
	remaining int64
}

// NewReport creates a usage report. remaining is ignored for an uncapped period.
func NewReport(period Period, start, end time.Time, used, limit, remaining int64) Report {
	if limit <= 0 {
		limit, remaining = 0, 0
	}
	return Report{
		period:    period,
		start:     start,
		end:       end,
		used:      used,
		limit:     limit,
		remaining: remaining,
	}
}

// Period returns the aggregation granularity.
func (r Report) Period() Period { return r.period }

// PeriodStart returns the inclusive period start.
func (r Report) PeriodStart() time.Time { return r.start }

// PeriodEnd returns the exclusive period end, which is also when the counter resets.
func (r Report) PeriodEnd() time.Time { return r.end }

// TokensUsed returns tokens consumed in the period.
func (r Report) TokensUsed() int64 { return r.used }

// TokensLimit returns the cap, 0 when uncapped.
func (r Report) TokensLimit() int64 { return r.limit }

// TokensRemaining returns tokens left before the cap, 0 when uncapped.
func (r Report) TokensRemaining() int64 { return r.remaining }

// Capped reports whether the period has a token limit.
func (r Report) Capped() bool { return r.limit > 0 }

// Exhausted reports whether a capped period has no tokens left.
func (r Report) Exhausted() bool { return r.limit > 0 && r.remaining <= 0 }
