// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mock

import (
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/libp2p/go-libp2p-core/network"
	"gopkg.in/yaml.v2"
)

var (
	ErrEmptyScenario  = errors.New("scenario has no steps and no teardown")
	ErrMissingField   = errors.New("missing field")
	ErrConflict       = errors.New("reachable and autonat are mutually exclusive")
	ErrInvalidAutonat = errors.New("invalid autonat reachability")
)

// State is a point in a reachability scenario. Autonat takes the
// reachability as libp2p autonat reports it: public, private or unknown.
type State struct {
	Reachable *bool  `yaml:"reachable"`
	Mobile    *bool  `yaml:"mobile"`
	Autonat   string `yaml:"autonat"`
}

func parseAutonat(s string) (network.Reachability, error) {
	switch s {
	case "public":
		return network.ReachabilityPublic, nil
	case "private":
		return network.ReachabilityPrivate, nil
	case "unknown":
		return network.ReachabilityUnknown, nil
	}
	return network.ReachabilityUnknown, fmt.Errorf("%q: %w", s, ErrInvalidAutonat)
}

func (st State) validate() error {
	var merr *multierror.Error
	if st.Reachable != nil && st.Autonat != "" {
		merr = multierror.Append(merr, ErrConflict)
	}
	if st.Autonat != "" {
		if _, err := parseAutonat(st.Autonat); err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	return merr.ErrorOrNil()
}

// Scenario describes the states a mock goes through during a test.
type Scenario struct {
	Initial  State   `yaml:"initial"`
	Steps    []State `yaml:"steps"`
	TearDown bool    `yaml:"teardown"`
}

// ParseScenario decodes a YAML scenario from r. Unknown fields are rejected.
// The returned scenario is validated.
func ParseScenario(r io.Reader) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(r)
	dec.SetStrict(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyScenario
		}
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate reports every problem found in the scenario.
func (s *Scenario) Validate() error {
	var merr *multierror.Error
	if len(s.Steps) == 0 && !s.TearDown {
		merr = multierror.Append(merr, ErrEmptyScenario)
	}
	if err := s.Initial.validate(); err != nil {
		merr = multierror.Append(merr, fmt.Errorf("initial: %w", err))
	}
	for i, st := range s.Steps {
		if st.Reachable == nil && st.Autonat == "" {
			merr = multierror.Append(merr, fmt.Errorf("step %d: reachable: %w", i, ErrMissingField))
		}
		if err := st.validate(); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("step %d: %w", i, err))
		}
	}
	return merr.ErrorOrNil()
}

// New returns a mock in the initial state of the scenario. Initial
// values that are not set keep the mock defaults. The scenario must be valid.
func (s *Scenario) New(opts ...Option) *Reachability {
	var initial []Option
	if s.Initial.Reachable != nil {
		initial = append(initial, WithReachable(*s.Initial.Reachable))
	}
	if s.Initial.Mobile != nil {
		initial = append(initial, WithMobileConnection(*s.Initial.Mobile))
	}
	if s.Initial.Autonat != "" {
		nr, _ := parseAutonat(s.Initial.Autonat)
		initial = append(initial, WithNetworkReachability(nr))
	}
	return New(append(initial, opts...)...)
}

// Replay applies every step to r in order and tears r down if the
// scenario asks for it. A step that leaves mobile unset keeps the current
// value. The scenario must be valid. It returns the number of steps that
// notified observers.
func (s *Scenario) Replay(r *Reachability) (notifications int) {
	for _, st := range s.Steps {
		reachable := r.MayBeReachable()
		if st.Reachable != nil {
			reachable = *st.Reachable
		}
		mobile := r.IsMobileConnection()
		if st.Mobile != nil {
			mobile = *st.Mobile
		}
		var notified bool
		if st.Autonat != "" {
			nr, _ := parseAutonat(st.Autonat)
			notified = r.SetNetworkReachability(nr, mobile)
		} else {
			notified = r.SetReachability(reachable, mobile)
		}
		if notified {
			notifications++
		}
	}
	if s.TearDown {
		r.TearDown()
	}
	return notifications
}
