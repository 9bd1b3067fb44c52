// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics exposes the prometheus primitives used across the module
// together with helpers for collecting and exporting them.
package metrics

import (
	"fmt"
	"io"
	"reflect"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

func NewCounter(opts CounterOpts) Counter {
	return prometheus.NewCounter(opts)
}

func NewGauge(opts GaugeOpts) Gauge {
	return prometheus.NewGauge(opts)
}

func NewRegistry() MetricsRegistererGatherer {
	return prometheus.NewRegistry()
}

// PrometheusCollectorsFromFields returns all exported, initialized struct
// fields of i that implement the prometheus.Collector interface.
func PrometheusCollectorsFromFields(i interface{}) (cs []Collector) {
	v := reflect.Indirect(reflect.ValueOf(i))
	for i := 0; i < v.NumField(); i++ {
		if !v.Field(i).CanInterface() {
			continue
		}
		if u, ok := v.Field(i).Interface().(Collector); ok {
			cs = append(cs, u)
		}
	}
	return cs
}

// RegisterAll registers collectors of every given MetricsCollector.
func RegisterAll(reg MetricsRegisterer, mcs ...MetricsCollector) error {
	for _, mc := range mcs {
		for _, c := range mc.Metrics() {
			if err := reg.Register(c); err != nil {
				return fmt.Errorf("register collector: %w", err)
			}
		}
	}
	return nil
}

// WriteText encodes everything gathered by g to w
// in the prometheus text exposition format.
func WriteText(w io.Writer, g Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather: %w", err)
	}
	enc := expfmt.NewEncoder(w, TypeTextPlain)
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
