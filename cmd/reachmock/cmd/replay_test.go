// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethersphere/reach/cmd/reachmock/cmd"
	"github.com/google/go-cmp/cmp"
)

const scenario = `initial: {reachable: true, mobile: false}
steps:
  - {reachable: false}
  - {reachable: true, mobile: true}
teardown: true
`

func writeFile(t *testing.T, name, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReplayCmd(t *testing.T) {
	path := writeFile(t, "scenario.yaml", scenario)

	var outputBuf bytes.Buffer
	if err := newCommand(t,
		cmd.WithArgs("replay", path, "--verbosity", "silent"),
		cmd.WithOutput(&outputBuf),
	).Execute(); err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"initial: Reachable mobile=false",
		"change 1: Unreachable mobile=false (was Reachable mobile=false)",
		"change 2: Reachable mobile=true (was Unreachable mobile=false)",
		"notifications: 2, torn down: true",
		"",
	}, "\n")
	if diff := cmp.Diff(want, outputBuf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestReplayCmdMetrics(t *testing.T) {
	path := writeFile(t, "scenario.yaml", scenario)

	var outputBuf bytes.Buffer
	if err := newCommand(t,
		cmd.WithArgs("replay", path, "--verbosity", "info", "--metrics"),
		cmd.WithOutput(&outputBuf),
		cmd.WithErrorOutput(new(bytes.Buffer)),
	).Execute(); err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"reach_reachability_notify_count 2",
		"reach_log_info_count 1",
	} {
		if !strings.Contains(outputBuf.String(), want) {
			t.Errorf("output %q missing %q", outputBuf.String(), want)
		}
	}
}

func TestReplayCmdConfigFile(t *testing.T) {
	path := writeFile(t, "scenario.yaml", scenario)
	cfg := writeFile(t, "config.yaml", "metrics: true\nverbosity: silent\n")

	for _, tc := range []struct {
		name string
		opts []cmd.Option
	}{
		{name: "flag", opts: []cmd.Option{cmd.WithArgs("replay", path, "--config", cfg)}},
		{name: "option", opts: []cmd.Option{cmd.WithArgs("replay", path), cmd.WithCfgFile(cfg)}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var outputBuf bytes.Buffer
			if err := newCommand(t,
				append(tc.opts, cmd.WithOutput(&outputBuf))...,
			).Execute(); err != nil {
				t.Fatal(err)
			}

			if !strings.Contains(outputBuf.String(), "reach_reachability_notify_count 2") {
				t.Errorf("metrics not enabled from config file: %q", outputBuf.String())
			}
		})
	}
}

func TestReplayCmdAutonat(t *testing.T) {
	path := writeFile(t, "autonat.yaml", `initial: {autonat: public}
steps:
  - {autonat: unknown}
  - {autonat: private}
`)

	var outputBuf bytes.Buffer
	if err := newCommand(t,
		cmd.WithArgs("replay", path, "--verbosity", "silent"),
		cmd.WithOutput(&outputBuf),
	).Execute(); err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"initial: Reachable mobile=false",
		"change 1: Unknown mobile=false (was Reachable mobile=false)",
		"change 2: Unreachable mobile=false (was Reachable mobile=false)",
		"notifications: 2, torn down: false",
		"",
	}, "\n")
	if diff := cmp.Diff(want, outputBuf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestReplayCmdErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		args []string
	}{
		{name: "missing file", args: []string{"replay", filepath.Join(t.TempDir(), "none.yaml")}},
		{name: "invalid scenario", args: []string{"replay", writeFile(t, "bad.yaml", "initial: {reachable: true}\n")}},
		{name: "bad verbosity", args: []string{"replay", writeFile(t, "ok.yaml", scenario), "--verbosity", "loud"}},
		{name: "no args", args: []string{"replay"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if err := newCommand(t,
				cmd.WithArgs(tc.args...),
				cmd.WithOutput(new(bytes.Buffer)),
				cmd.WithErrorOutput(new(bytes.Buffer)),
			).Execute(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
