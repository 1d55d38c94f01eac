// SPDX-License-Identifier: MIT
// Package: ohmlab/circuit
//
// metrics.go — Prometheus instrumentation of facade operations.

package circuit

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "ohmlab"

// Metrics counts facade operations by outcome and observes their duration.
// Labels: op (solve, solve_symbolic, equivalent), status (success, error,
// stuck).
type Metrics struct {
	OpsTotal   *prometheus.CounterVec
	OpDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// Panics if registration fails, as prometheus.MustRegister does.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		OpsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "operations_total",
			Help:      "Circuit operations by kind and outcome.",
		}, []string{"op", "status"}),
		OpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "operation_duration_seconds",
			Help:      "Circuit operation duration in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"op"}),
	}
	reg.MustRegister(m.OpsTotal, m.OpDuration)
	return m
}

// observe is a no-op on a nil receiver.
func (m *Metrics) observe(op, status string, start time.Time) {
	if m == nil {
		return
	}
	m.OpsTotal.WithLabelValues(op, status).Inc()
	m.OpDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
