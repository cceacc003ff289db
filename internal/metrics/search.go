package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search pipeline Prometheus metrics.
var (
	SearchCandidates = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_candidates",
			Help:      "Number of catalog candidates selected per query",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
		},
		[]string{"match_mode"},
	)

	SearchEmptyTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_empty_total",
			Help:      "Queries that produced no candidates",
		},
		[]string{"reason"}, // "no_terms" / "no_match"
	)

	SearchPriceRangeTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_price_range_total",
			Help:      "Queries by detected price pattern",
		},
		[]string{"pattern"}, // "between" / "under" / "over" / "none"
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers the search pipeline metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchCandidates)
	prometheus.MustRegister(SearchEmptyTotal)
	prometheus.MustRegister(SearchPriceRangeTotal)
	searchMetricsRegistered = true
}
