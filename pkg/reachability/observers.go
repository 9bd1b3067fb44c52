// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reachability

import (
	"sync"

	m "github.com/ethersphere/reach/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

type registration struct {
	observer Observer
}

type subscription struct {
	c         chan struct{}
	closeOnce sync.Once
}

func (s *subscription) close() {
	s.closeOnce.Do(func() { close(s.c) })
}

// Observers is a registry of Observers and channel subscribers.
// The zero value is ready to use.
type Observers struct {
	mu      sync.Mutex
	regs    []*registration
	subs    []*subscription
	metrics *metrics
}

// NewObservers returns Observers which records its activity
// in prometheus collectors returned by Metrics.
func NewObservers() *Observers {
	return &Observers{metrics: newMetrics()}
}

// Add registers o. Observers are notified in the order they were added.
func (r *Observers) Add(o Observer) (remove func()) {
	reg := &registration{observer: o}

	r.mu.Lock()
	r.regs = append(r.regs, reg)
	r.updateGauges()
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()

			for i, v := range r.regs {
				if v == reg {
					r.regs = append(r.regs[:i], r.regs[i+1:]...)
					break
				}
			}
			r.updateGauges()
		})
	}
}

// Subscribe returns a channel which receives a signal after each Notify.
// Signals are not queued, a slow reader sees one signal for many changes.
func (r *Observers) Subscribe() (c <-chan struct{}, unsubscribe func()) {
	sub := &subscription{c: make(chan struct{}, 1)}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.subs = append(r.subs, sub)
	r.updateGauges()

	unsubscribe = func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		for i, v := range r.subs {
			if v == sub {
				r.subs = append(r.subs[:i], r.subs[i+1:]...)
				break
			}
		}
		r.updateGauges()

		sub.close()
	}

	return sub.c, unsubscribe
}

// Notify calls every registered Observer with p on the calling goroutine
// and signals every subscriber. An observer may add or remove observers
// while being notified, the changes apply to the next Notify.
func (r *Observers) Notify(p Provider) {
	r.mu.Lock()
	regs := make([]*registration, len(r.regs))
	copy(regs, r.regs)
	for _, s := range r.subs {
		select {
		case s.c <- struct{}{}:
		default:
		}
	}
	r.mu.Unlock()

	for _, reg := range regs {
		reg.observer.ReachabilityDidChange(p)
	}

	if r.metrics != nil {
		r.metrics.NotifyCount.Inc()
		r.metrics.ObserverCallCount.Add(float64(len(regs)))
	}
}

// RemoveAll drops every observer and closes every subscriber channel.
// Remove and unsubscribe functions handed out before stay safe to call.
func (r *Observers) RemoveAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.regs = nil
	for _, s := range r.subs {
		s.close()
	}
	r.subs = nil
	r.updateGauges()
}

// Len returns the number of registered observers and subscribers.
func (r *Observers) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.regs) + len(r.subs)
}

// updateGauges must be called with the lock held.
func (r *Observers) updateGauges() {
	if r.metrics == nil {
		return
	}
	r.metrics.Observers.Set(float64(len(r.regs)))
	r.metrics.Subscribers.Set(float64(len(r.subs)))
}

// Metrics returns set of prometheus collectors.
func (r *Observers) Metrics() []prometheus.Collector {
	if r.metrics == nil {
		return nil
	}
	return m.PrometheusCollectorsFromFields(r.metrics)
}
