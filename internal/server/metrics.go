package server

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeOK      = "ok"
	outcomeEmpty   = "empty"
	outcomeInvalid = "invalid"
)

type metrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "textnorm",
			Name:      "operations_total",
			Help:      "Normalization operations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "textnorm",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern, method and status.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"route", "method", "status"}),
	}

	for _, c := range []prometheus.Collector{m.operations, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRegisterMetrics, err)
		}
	}
	return m, nil
}

func (m *metrics) observeOperation(op, outcome string) {
	m.operations.WithLabelValues(op, outcome).Inc()
}
