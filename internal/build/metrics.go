package build

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	passesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pages",
		Name:      "build_passes_total",
		Help:      "Total number of completed build passes.",
	})

	passDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "pages",
		Name:      "build_pass_duration_seconds",
		Help:      "Wall time of build passes.",
		Buckets:   prometheus.DefBuckets,
	})

	filesProcessed = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "pages",
		Name:      "build_files",
		Help:      "Component files processed by the most recent pass.",
	})

	routesPerScope = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "pages",
		Name:      "build_routes",
		Help:      "Top-level routes produced by the most recent pass.",
	}, []string{"scope"})

	conflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pages",
		Name:      "build_conflicts_total",
		Help:      "Duplicate special files reported across all passes.",
	})
)

// recordPass publishes one finished pass to the metrics registry.
func recordPass(r *Result) {
	passesTotal.Inc()
	passDuration.Observe(r.Duration.Seconds())
	filesProcessed.Set(float64(r.Files))
	conflictsTotal.Add(float64(len(r.Conflicts)))

	routesPerScope.Reset()
	for scope, routes := range r.Routes {
		routesPerScope.WithLabelValues(scope).Set(float64(len(routes)))
	}
}
