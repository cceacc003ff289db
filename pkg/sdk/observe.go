package storefront

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// status is the outcome of one SDK call as reported in logs and metrics.
type status string

const (
	statusOK       status = "ok"
	statusDegraded status = "degraded"
	statusError    status = "error"
)

func statusOf(err error) status {
	if err != nil {
		return statusError
	}
	return statusOK
}

// recommendStatus reports an apology answer as degraded, not ok.
func recommendStatus(rec Recommendation, err error) status {
	switch {
	case err != nil:
		return statusError
	case rec.Degraded:
		return statusDegraded
	default:
		return statusOK
	}
}

// healthStatus maps an aggregated health status onto the call outcome.
func healthStatus(h HealthStatus) status {
	switch h.Status {
	case string(statusOK):
		return statusOK
	case string(statusDegraded):
		return statusDegraded
	default:
		return statusError
	}
}

type sdkMetrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	matches    prometheus.Histogram
}

func newSDKMetrics(reg prometheus.Registerer) (*sdkMetrics, error) {
	m := &sdkMetrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "sdk",
			Name:      "operations_total",
			Help:      "SDK calls by operation and outcome (ok, degraded, error).",
		}, []string{"operation", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "storefront",
			Subsystem: "sdk",
			Name:      "operation_duration_seconds",
			Help:      "SDK call duration in seconds.",
			Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1, 2.5, 5, 10, 30},
		}, []string{"operation"}),
		matches: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "storefront",
			Subsystem: "sdk",
			Name:      "recommendation_matches",
			Help:      "Catalog matches shown to the language model per recommendation.",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
		}),
	}
	if err := registerOrReuse(reg, &m.operations); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.duration); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.matches); err != nil {
		return nil, err
	}
	return m, nil
}

// registerOrReuse registers c or adopts the collector already registered under its name.
func registerOrReuse[T prometheus.Collector](reg prometheus.Registerer, c *T) error {
	err := reg.Register(*c)
	if err == nil {
		return nil
	}
	var are prometheus.AlreadyRegisteredError
	if !errors.As(err, &are) {
		return fmt.Errorf("storefront: register metric: %w", err)
	}
	existing, ok := are.ExistingCollector.(T)
	if !ok {
		return fmt.Errorf("storefront: metric already registered with incompatible type: %T", are.ExistingCollector)
	}
	*c = existing
	return nil
}

// observer logs and counts SDK calls. A nil observer is a no-op.
type observer struct {
	logger  *slog.Logger
	metrics *sdkMetrics
}

func newObserver(logger *slog.Logger, reg prometheus.Registerer) (*observer, error) {
	o := &observer{logger: logger}
	if reg != nil {
		m, err := newSDKMetrics(reg)
		if err != nil {
			return nil, err
		}
		o.metrics = m
	}
	return o, nil
}

func (o *observer) observe(op string, start time.Time, st status, err error) {
	if o == nil {
		return
	}
	dur := time.Since(start)

	if o.metrics != nil {
		o.metrics.operations.WithLabelValues(op, string(st)).Inc()
		o.metrics.duration.WithLabelValues(op).Observe(dur.Seconds())
	}

	if o.logger == nil {
		return
	}
	switch st {
	case statusError:
		o.logger.Warn("storefront call failed", "op", op, "duration", dur, "error", err)
	case statusDegraded:
		o.logger.Warn("storefront call degraded", "op", op, "duration", dur)
	default:
		o.logger.Debug("storefront call completed", "op", op, "duration", dur)
	}
}

// observeRecommend records a Recommend call, including how many matches backed it.
func (o *observer) observeRecommend(start time.Time, rec Recommendation, err error) {
	if o == nil {
		return
	}
	o.observe("recommend", start, recommendStatus(rec, err), err)
	if err == nil && o.metrics != nil {
		o.metrics.matches.Observe(float64(len(rec.Preview.Matches)))
	}
}
