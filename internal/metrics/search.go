package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search paths used as label values
const (
	PathPlain      = "plain"
	PathConfidence = "confidence"
	PathAnalytics  = "analytics"
)

// Search Prometheus metrics.
var (
	SearchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shopsight",
			Name:      "search_total",
			Help:      "Total number of searches by retrieval path and outcome",
		},
		[]string{"path", "status"},
	)

	SearchCandidates = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "shopsight",
			Name:      "search_candidates",
			Help:      "Number of candidates scored per confidence-ranked search",
			Buckets:   []float64{0, 10, 25, 50, 100, 250, 500, 1000},
		},
		[]string{"path"},
	)
)

func init() {
	prometheus.MustRegister(SearchTotal, SearchCandidates)
}

// ObserveSearch records one search outcome
func ObserveSearch(path string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	SearchTotal.WithLabelValues(path, status).Inc()
}

// ObserveCandidates records the size of a scored candidate pool
func ObserveCandidates(path string, n int) {
	SearchCandidates.WithLabelValues(path).Observe(float64(n))
}
