// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package bench

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "psort"
	subsystem = "bench"
)

// Metrics records benchmark runs as Prometheus series.
type Metrics struct {
	Duration *prometheus.HistogramVec
	Runs     *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "sort_duration_seconds",
				Help:      "Wall-clock time of one sort, in seconds.",
				Buckets:   prometheus.ExponentialBuckets(.0001, 4, 10),
			}, []string{"algorithm", "mode"},
		),
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "runs_total",
			Help:      "Number of sort runs by outcome.",
		}, []string{"algorithm", "mode", "result"}),
	}
	for _, c := range []prometheus.Collector{m.Duration, m.Runs} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "register bench metrics")
		}
	}
	return m, nil
}

func (m *Metrics) observe(r Result, err error) {
	if m == nil {
		return
	}
	alg, mode := r.Algorithm.String(), r.Mode.String()
	if err != nil {
		m.Runs.WithLabelValues(alg, mode, "error").Inc()
		return
	}
	m.Runs.WithLabelValues(alg, mode, "ok").Inc()
	m.Duration.WithLabelValues(alg, mode).Observe(r.Duration.Seconds())
}
