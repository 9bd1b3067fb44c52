// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reachability

import (
	m "github.com/ethersphere/reach/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	// all metrics fields must be exported
	// to be able to return them by Metrics()
	// using reflection
	Observers         prometheus.Gauge
	Subscribers       prometheus.Gauge
	NotifyCount       prometheus.Counter
	ObserverCallCount prometheus.Counter
}

func newMetrics() *metrics {
	subsystem := "reachability"

	return &metrics{
		Observers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "observers",
			Help:      "Number of registered reachability observers.",
		}),
		Subscribers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "subscribers",
			Help:      "Number of reachability change channel subscribers.",
		}),
		NotifyCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "notify_count",
			Help:      "Number of reachability changes announced.",
		}),
		ObserverCallCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "observer_call_count",
			Help:      "Number of observer callbacks invoked.",
		}),
	}
}
