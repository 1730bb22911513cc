package rdispatch

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Dispatch outcomes, used as the "outcome" metric label.
const (
	OutcomeOK           = "ok"
	OutcomeNoRoute      = "no_route"
	OutcomeNoController = "no_controller"
	OutcomeNoAction     = "no_action"
	OutcomeError        = "error"
)

// metrics holds the Prometheus collectors of a dispatcher.
// A nil *metrics records nothing.
type metrics struct {
	dispatches *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer, namespace string) *metrics {
	if reg == nil {
		return nil
	}
	factory := promauto.With(reg)

	return &metrics{
		dispatches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dispatches_total",
			Help:      "Total number of dispatched paths",
		}, []string{"controller", "action", "outcome"}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dispatch_duration_seconds",
			Help:      "Time from recognition to action return, in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
	}
}

func (m *metrics) observe(controller, action, outcome string, start time.Time) {
	if m == nil {
		return
	}
	m.dispatches.WithLabelValues(controller, action, outcome).Inc()
	m.duration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
}
