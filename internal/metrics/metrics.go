package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	estimates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "protein_calculator",
			Name:      "estimates_total",
			Help:      "Count of estimates by the rule that picked the factor.",
		},
		[]string{"factor_source"},
	)

	invalidEstimates = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "protein_calculator",
			Name:      "invalid_estimates_total",
			Help:      "Count of estimates whose input was flagged invalid.",
		},
	)

	presetsApplied = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "protein_calculator",
			Name:      "presets_applied_total",
			Help:      "Count of preset applications by preset key.",
		},
		[]string{"preset"},
	)

	summaries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "protein_calculator",
			Name:      "summaries_total",
			Help:      "Count of copy-summary lines rendered.",
		},
	)
)

// Register registers metrics with the default registry (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(estimates, invalidEstimates, presetsApplied, summaries)
	})
}

func ObserveEstimate(source string, invalid bool) {
	estimates.WithLabelValues(source).Inc()
	if invalid {
		invalidEstimates.Inc()
	}
}

func IncPresetApplied(key string) {
	presetsApplied.WithLabelValues(key).Inc()
}

func IncSummary() {
	summaries.Inc()
}
