// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethersphere/reach/pkg/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	optionNameVerbosity = "verbosity"
	optionNameMetrics   = "metrics"
)

func init() {
	cobra.EnableCommandSorting = false
}

type command struct {
	root    *cobra.Command
	config  *viper.Viper
	cfgFile string
	homeDir string
}

type option func(*command)

func newCommand(opts ...option) (c *command, err error) {
	c = &command{
		root: &cobra.Command{
			Use:           "reachmock",
			Short:         "Replay network reachability scenarios against a mock provider",
			SilenceErrors: true,
			SilenceUsage:  true,
			PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
				return c.initConfig()
			},
		},
		config: viper.New(),
	}

	// Flags are defined first so that options can override their defaults.
	c.initGlobalFlags()

	for _, o := range opts {
		o(c)
	}

	// Find home directory.
	if err := c.setHomeDir(); err != nil {
		return nil, err
	}

	c.initReplayCmd()
	c.initVersionCmd()

	return c, nil
}

func (c *command) Execute() (err error) {
	return c.root.Execute()
}

// Execute parses command line arguments and runs appropriate functions.
func Execute() (err error) {
	c, err := newCommand()
	if err != nil {
		return err
	}
	return c.Execute()
}

func (c *command) initGlobalFlags() {
	globalFlags := c.root.PersistentFlags()
	globalFlags.StringVar(&c.cfgFile, "config", "", "config file (default is $HOME/.reachmock.yaml)")
}

func (c *command) initConfig() (err error) {
	configName := ".reachmock"
	if c.cfgFile != "" {
		// Use config file from the flag.
		c.config.SetConfigFile(c.cfgFile)
	} else {
		// Search config in home directory with name ".reachmock" (without extension).
		c.config.AddConfigPath(c.homeDir)
		c.config.SetConfigName(configName)
	}

	// Environment
	c.config.SetEnvPrefix("reachmock")
	c.config.AutomaticEnv() // read in environment variables that match
	c.config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	if c.homeDir != "" && c.cfgFile == "" {
		c.cfgFile = filepath.Join(c.homeDir, configName+".yaml")
	}

	// If a config file is found, read it in.
	if err := c.config.ReadInConfig(); err != nil {
		var e viper.ConfigFileNotFoundError
		if !errors.As(err, &e) {
			return err
		}
	}
	return nil
}

func (c *command) setHomeDir() (err error) {
	if c.homeDir != "" {
		return
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	c.homeDir = dir
	return nil
}

func newLogger(cmd *cobra.Command, verbosity string) (logging.Logger, error) {
	level, ok, err := logging.ParseVerbosity(verbosity)
	if err != nil {
		return nil, err
	}
	if !ok {
		return logging.Discard(), nil
	}
	return logging.New(cmd.ErrOrStderr(), level), nil
}
