// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics_test

import (
	"bytes"
	"strings"
	"testing"

	m "github.com/ethersphere/reach/pkg/metrics"
)

func TestPrometheusCollectorsFromFields(t *testing.T) {
	t.Parallel()

	s := newService()
	collectors := m.PrometheusCollectorsFromFields(s)

	if l := len(collectors); l != 2 {
		t.Fatalf("got %v collectors %+v, want 2", l, collectors)
	}

	m1 := collectors[0].(m.Metric).Desc().String()
	if !strings.Contains(m1, "observer_notification_count") {
		t.Errorf("unexpected metric %s", m1)
	}

	m2 := collectors[1].(m.Metric).Desc().String()
	if !strings.Contains(m2, "observer_count") {
		t.Errorf("unexpected metric %s", m2)
	}
}

func TestWriteText(t *testing.T) {
	t.Parallel()

	s := newService()
	s.NotificationCount.Add(3)
	s.Observers.Set(2)

	reg := m.NewRegistry()
	if err := m.RegisterAll(reg, s); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := m.WriteText(&buf, reg); err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"reach_observer_notification_count 3",
		"reach_observer_observer_count 2",
	} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output %q does not contain %q", buf.String(), want)
		}
	}
}

func TestRegisterAllDuplicate(t *testing.T) {
	t.Parallel()

	s := newService()
	reg := m.NewRegistry()
	if err := m.RegisterAll(reg, s); err != nil {
		t.Fatal(err)
	}
	if err := m.RegisterAll(reg, s); err == nil {
		t.Fatal("expected error registering the same collectors twice")
	}
}

type service struct {
	// valid metrics
	NotificationCount m.Counter
	Observers         m.Gauge
	// invalid metrics
	unexportedCount    m.Counter
	UninitializedCount m.Counter
}

func newService() *service {
	subsystem := "observer"
	return &service{
		NotificationCount: m.NewCounter(m.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "notification_count",
			Help:      "Number of observer notifications.",
		}),
		Observers: m.NewGauge(m.GaugeOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "observer_count",
			Help:      "Number of registered observers.",
		}),
		unexportedCount: m.NewCounter(m.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "unexported_count",
			Help:      "This metrics should not be discoverable by metrics.PrometheusCollectorsFromFields.",
		}),
	}
}

func (s *service) Metrics() []m.Collector {
	return m.PrometheusCollectorsFromFields(s)
}
