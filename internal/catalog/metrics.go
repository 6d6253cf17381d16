package catalog

import "github.com/prometheus/client_golang/prometheus"

// QueryMetrics records how many records each listing returned. A nil
// *QueryMetrics is valid and records nothing.
type QueryMetrics struct {
	results *prometheus.HistogramVec
}

func NewQueryMetrics(reg prometheus.Registerer) *QueryMetrics {
	m := &QueryMetrics{
		results: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "catalog_query_results",
				Help:    "Records returned per catalog listing",
				Buckets: prometheus.LinearBuckets(0, 1, 6),
			},
			[]string{"collection"},
		),
	}
	reg.MustRegister(m.results)
	return m
}

func (m *QueryMetrics) observe(collection string, n int) {
	if m == nil {
		return
	}
	m.results.WithLabelValues(collection).Observe(float64(n))
}
