package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the compliance module.
type Metrics struct {
	// Evaluations by age group and outcome
	Evaluations *prometheus.CounterVec

	// Violations raised by code
	Violations *prometheus.CounterVec

	// Full evaluation latency
	EvaluateLatency prometheus.Histogram
}

// New creates a Metrics instance with all compliance module metrics registered.
func New() *Metrics {
	return &Metrics{
		Evaluations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "workright_compliance_evaluations_total",
			Help: "Total compliance evaluations by age group and outcome",
		}, []string{"age_group", "outcome"}), // outcome: "compliant", "non_compliant"

		Violations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "workright_compliance_violations_total",
			Help: "Total compliance violations raised by code",
		}, []string{"code"}),

		EvaluateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "workright_compliance_evaluate_duration_seconds",
			Help:    "Duration of a full compliance evaluation",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01},
		}),
	}
}

// IncrementEvaluation records one evaluation outcome.
func (m *Metrics) IncrementEvaluation(ageGroup string, compliant bool) {
	if m != nil {
		outcome := "compliant"
		if !compliant {
			outcome = "non_compliant"
		}
		m.Evaluations.WithLabelValues(ageGroup, outcome).Inc()
	}
}

// IncrementViolation records one raised violation.
func (m *Metrics) IncrementViolation(code string) {
	if m != nil {
		m.Violations.WithLabelValues(code).Inc()
	}
}

// ObserveEvaluateLatency records the duration of one evaluation.
func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}
