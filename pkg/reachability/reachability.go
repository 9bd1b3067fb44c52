// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reachability defines the contract between code that needs to know
// whether the network may be reachable and the component that observes it.
package reachability

import (
	"github.com/libp2p/go-libp2p-core/network"
)

// Status represents the reachability of the network.
type Status int

const (
	StatusUnknown Status = iota
	StatusUnreachable
	StatusReachable
)

// String implements the fmt.Stringer interface.
func (s Status) String() string {
	switch s {
	case StatusUnreachable:
		return "Unreachable"
	case StatusReachable:
		return "Reachable"
	}
	return "Unknown"
}

// StatusFromNetwork converts the reachability reported by the libp2p
// autonat service. A publicly dialable host is reachable, a host behind
// a NAT is not.
func StatusFromNetwork(r network.Reachability) Status {
	switch r {
	case network.ReachabilityPublic:
		return StatusReachable
	case network.ReachabilityPrivate:
		return StatusUnreachable
	}
	return StatusUnknown
}

// StatusOf returns the Status that corresponds to the
// MayBeReachable value of a Provider.
func StatusOf(mayBeReachable bool) Status {
	if mayBeReachable {
		return StatusReachable
	}
	return StatusUnreachable
}

// Observer is notified each time the state of a Provider changes.
type Observer interface {
	ReachabilityDidChange(p Provider)
}

// ObserverFunc adapts an ordinary function to the Observer interface.
type ObserverFunc func(p Provider)

// ReachabilityDidChange calls f(p).
func (f ObserverFunc) ReachabilityDidChange(p Provider) {
	f(p)
}

// Provider supplies the reachability state and lets callers observe it.
type Provider interface {
	// MayBeReachable reports whether the network may currently be reachable.
	MayBeReachable() bool
	// IsMobileConnection reports whether the connection is a mobile one.
	IsMobileConnection() bool
	// OldMayBeReachable is the MayBeReachable value before the last change.
	OldMayBeReachable() bool
	// OldIsMobileConnection is the IsMobileConnection value before the last change.
	OldIsMobileConnection() bool
	// Status returns MayBeReachable expressed as a Status.
	Status() Status
	// AddObserver registers o and returns a function that removes it.
	// The returned function may be called any number of times.
	AddObserver(o Observer) (remove func())
	// SubscribeReachabilityChange returns a channel that signals each change.
	SubscribeReachabilityChange() (c <-chan struct{}, unsubscribe func())
}

// TearDowner releases all observation registrations. TearDown must be
// safe to call more than once.
type TearDowner interface {
	TearDown()
}

// Service is a Provider that can be torn down.
type Service interface {
	Provider
	TearDowner
}
