// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"os"

	"github.com/ethersphere/reach/pkg/metrics"
	"github.com/ethersphere/reach/pkg/reachability"
	"github.com/ethersphere/reach/pkg/reachability/mock"
	"github.com/spf13/cobra"
)

func (c *command) initReplayCmd() {
	cmd := &cobra.Command{
		Use:   "replay <scenario>",
		Short: "Replay a reachability scenario file",
		Long: `Builds a mock reachability provider from the initial state of the scenario,
applies every step and prints each change observed.

Example scenario:

	initial: {reachable: true, mobile: false}
	steps:
	  - {reachable: false}
	  - {autonat: unknown}
	  - {reachable: true, mobile: true}
	teardown: true

A step sets either reachable or autonat (public, private or unknown).`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return c.config.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			logger, err := newLogger(cmd, c.config.GetString(optionNameVerbosity))
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open scenario: %w", err)
			}
			defer f.Close()

			scenario, err := mock.ParseScenario(f)
			if err != nil {
				return fmt.Errorf("scenario %s: %w", args[0], err)
			}

			r := scenario.New(mock.WithLogger(logger), mock.WithObserverMetrics())
			cmd.Printf("initial: %s mobile=%t\n", r.Status(), r.IsMobileConnection())

			step := 0
			r.AddObserver(reachability.ObserverFunc(func(p reachability.Provider) {
				step++
				cmd.Printf("change %d: %s mobile=%t (was %s mobile=%t)\n",
					step,
					p.Status(),
					p.IsMobileConnection(),
					reachability.StatusOf(p.OldMayBeReachable()),
					p.OldIsMobileConnection(),
				)
			}))

			n := scenario.Replay(r)
			logger.WithField("scenario", args[0]).Infof("replayed %d steps", len(scenario.Steps))
			cmd.Printf("notifications: %d, torn down: %t\n", n, r.IsTornDown())

			if c.config.GetBool(optionNameMetrics) {
				reg := metrics.NewRegistry()
				if err := metrics.RegisterAll(reg, r, logger); err != nil {
					return err
				}
				return metrics.WriteText(cmd.OutOrStdout(), reg)
			}
			return nil
		},
	}

	cmd.Flags().String(optionNameVerbosity, "info", "log verbosity level 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=trace")
	cmd.Flags().Bool(optionNameMetrics, false, "print collected metrics after the replay")

	c.root.AddCommand(cmd)
}
