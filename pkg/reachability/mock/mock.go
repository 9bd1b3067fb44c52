// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mock provides a reachability.Service for tests. It never touches
// the network: every value it reports is configured by the test.
package mock

import (
	"sync"

	"github.com/ethersphere/reach/pkg/logging"
	"github.com/ethersphere/reach/pkg/reachability"
	"github.com/libp2p/go-libp2p-core/network"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"
)

var _ reachability.Service = (*Reachability)(nil)

// Reachability is a reachability.Service whose state is set by the test.
type Reachability struct {
	mu                    sync.Mutex
	mayBeReachable        bool
	isMobileConnection    bool
	oldMayBeReachable     bool
	oldIsMobileConnection bool
	unknown               bool
	statusFunc            func() reachability.Status

	observers *reachability.Observers
	logger    logging.Logger

	tornDown      atomic.Bool
	tearDownCount atomic.Int32
}

// Option sets a mock Reachability parameter.
type Option interface {
	apply(*Reachability)
}

type optionFunc func(*Reachability)

func (f optionFunc) apply(r *Reachability) { f(r) }

// WithReachable sets the initial MayBeReachable value.
func WithReachable(v bool) Option {
	return optionFunc(func(r *Reachability) {
		r.mayBeReachable = v
	})
}

// WithMobileConnection sets the initial IsMobileConnection value.
func WithMobileConnection(v bool) Option {
	return optionFunc(func(r *Reachability) {
		r.isMobileConnection = v
	})
}

// WithStatusFunc overrides the value returned by Status.
func WithStatusFunc(f func() reachability.Status) Option {
	return optionFunc(func(r *Reachability) {
		r.statusFunc = f
	})
}

// WithLogger sets the logger used for teardown and state change messages.
func WithLogger(l logging.Logger) Option {
	return optionFunc(func(r *Reachability) {
		r.logger = l
	})
}

// WithNetworkReachability sets the initial state from a reachability
// reported by libp2p autonat. Public and private set MayBeReachable,
// unknown makes Status report reachability.StatusUnknown.
func WithNetworkReachability(nr network.Reachability) Option {
	return optionFunc(func(r *Reachability) {
		r.mayBeReachable, r.unknown = fromNetwork(nr, r.mayBeReachable)
	})
}

// WithObserverMetrics makes the observer registry record
// prometheus metrics, available through Metrics.
func WithObserverMetrics() Option {
	return optionFunc(func(r *Reachability) {
		r.observers = reachability.NewObservers()
	})
}

// New returns a mock that reports a reachable, non-mobile network
// unless configured otherwise.
func New(opts ...Option) *Reachability {
	r := &Reachability{
		mayBeReachable: true,
	}
	for _, o := range opts {
		o.apply(r)
	}
	if r.observers == nil {
		r.observers = new(reachability.Observers)
	}
	if r.logger == nil {
		r.logger = logging.Discard()
	}
	r.oldMayBeReachable = r.mayBeReachable
	r.oldIsMobileConnection = r.isMobileConnection
	return r
}

func (r *Reachability) MayBeReachable() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mayBeReachable
}

func (r *Reachability) IsMobileConnection() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.isMobileConnection
}

func (r *Reachability) OldMayBeReachable() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.oldMayBeReachable
}

func (r *Reachability) OldIsMobileConnection() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.oldIsMobileConnection
}

func (r *Reachability) Status() reachability.Status {
	if r.statusFunc != nil {
		return r.statusFunc()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.unknown {
		return reachability.StatusUnknown
	}
	return reachability.StatusOf(r.mayBeReachable)
}

// Values is a consistent view of the reported state.
type Values struct {
	MayBeReachable        bool
	IsMobileConnection    bool
	OldMayBeReachable     bool
	OldIsMobileConnection bool
}

// Values returns all reported values read under a single lock.
func (r *Reachability) Values() Values {
	r.mu.Lock()
	defer r.mu.Unlock()

	return Values{
		MayBeReachable:        r.mayBeReachable,
		IsMobileConnection:    r.isMobileConnection,
		OldMayBeReachable:     r.oldMayBeReachable,
		OldIsMobileConnection: r.oldIsMobileConnection,
	}
}

// AddObserver registers o. After TearDown nothing is registered
// and the returned function does nothing.
func (r *Reachability) AddObserver(o reachability.Observer) (remove func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.tornDown.Load() {
		r.logger.Debug("reachability mock: observer added after teardown, ignoring")
		return func() {}
	}
	return r.observers.Add(o)
}

// SubscribeReachabilityChange returns a channel signalled on every change.
// After TearDown the returned channel is already closed.
func (r *Reachability) SubscribeReachabilityChange() (c <-chan struct{}, unsubscribe func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.tornDown.Load() {
		r.logger.Debug("reachability mock: subscription after teardown, returning closed channel")
		channel := make(chan struct{})
		close(channel)
		return channel, func() {}
	}
	return r.observers.Subscribe()
}

// SetReachability changes the reported state. If the state differs from
// the current one, the previous values become the old values and every
// observer is notified before SetReachability returns. It reports whether
// observers were notified.
func (r *Reachability) SetReachability(mayBeReachable, isMobileConnection bool) (notified bool) {
	return r.update(mayBeReachable, isMobileConnection, false)
}

// SetNetworkReachability is SetReachability driven by a reachability
// reported by libp2p autonat. An unknown reachability keeps the current
// MayBeReachable value and only changes Status.
func (r *Reachability) SetNetworkReachability(nr network.Reachability, isMobileConnection bool) (notified bool) {
	r.mu.Lock()
	mayBeReachable, unknown := fromNetwork(nr, r.mayBeReachable)
	r.mu.Unlock()

	return r.update(mayBeReachable, isMobileConnection, unknown)
}

func (r *Reachability) update(mayBeReachable, isMobileConnection, unknown bool) (notified bool) {
	r.mu.Lock()
	if r.mayBeReachable == mayBeReachable && r.isMobileConnection == isMobileConnection && r.unknown == unknown {
		r.mu.Unlock()
		return false
	}
	r.oldMayBeReachable, r.oldIsMobileConnection = r.mayBeReachable, r.isMobileConnection
	r.mayBeReachable, r.isMobileConnection, r.unknown = mayBeReachable, isMobileConnection, unknown
	r.mu.Unlock()

	r.logger.WithField("observers", r.observers.Len()).Tracef("reachability mock: may be reachable %t, mobile %t, unknown %t", mayBeReachable, isMobileConnection, unknown)

	if r.tornDown.Load() {
		return false
	}
	r.observers.Notify(r)
	return true
}

// fromNetwork maps nr onto the MayBeReachable value, keeping current
// when nr carries no information.
func fromNetwork(nr network.Reachability, current bool) (mayBeReachable, unknown bool) {
	switch reachability.StatusFromNetwork(nr) {
	case reachability.StatusReachable:
		return true, false
	case reachability.StatusUnreachable:
		return false, false
	}
	return current, true
}

// TearDown removes all observers and subscriptions. Calls after the
// first one have no further effect.
func (r *Reachability) TearDown() {
	r.tearDownCount.Inc()

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.tornDown.CAS(false, true) {
		return
	}
	r.observers.RemoveAll()
	r.logger.Debug("reachability mock: torn down")
}

// IsTornDown reports whether TearDown was called.
func (r *Reachability) IsTornDown() bool {
	return r.tornDown.Load()
}

// TearDownCount returns how many times TearDown was called.
func (r *Reachability) TearDownCount() int {
	return int(r.tearDownCount.Load())
}

// Observers returns the number of registered observers and subscribers.
func (r *Reachability) Observers() int {
	return r.observers.Len()
}

// Metrics returns set of prometheus collectors.
func (r *Reachability) Metrics() []prometheus.Collector {
	return r.observers.Metrics()
}
