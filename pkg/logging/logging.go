// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging provides the logger interface abstraction
// and implementation for the reachability tooling. It uses logrus under the hood.
package logging

import (
	"fmt"
	"io"
	"strings"

	m "github.com/ethersphere/reach/pkg/metrics"
	"github.com/sirupsen/logrus"
)

type Logger interface {
	Tracef(format string, args ...interface{})
	Trace(args ...interface{})
	Debugf(format string, args ...interface{})
	Debug(args ...interface{})
	Infof(format string, args ...interface{})
	Info(args ...interface{})
	Warningf(format string, args ...interface{})
	Warning(args ...interface{})
	Errorf(format string, args ...interface{})
	Error(args ...interface{})
	WithField(key string, value interface{}) *logrus.Entry
	m.MetricsCollector
}

type logger struct {
	*logrus.Logger
	metrics metrics
}

func New(w io.Writer, level logrus.Level) Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.Formatter = &logrus.TextFormatter{
		FullTimestamp: true,
	}
	metrics := newMetrics()
	l.AddHook(metrics)
	return &logger{
		Logger:  l,
		metrics: metrics,
	}
}

// Discard returns a logger that drops every message.
func Discard() Logger {
	return New(io.Discard, logrus.PanicLevel)
}

// ParseVerbosity maps a verbosity name or its numeric
// shorthand to a logrus level. The silent level is reported
// as ok == false and should be served with Discard.
func ParseVerbosity(v string) (level logrus.Level, ok bool, err error) {
	switch strings.ToLower(v) {
	case "0", "silent":
		return logrus.PanicLevel, false, nil
	case "1", "error":
		return logrus.ErrorLevel, true, nil
	case "2", "warn":
		return logrus.WarnLevel, true, nil
	case "3", "info":
		return logrus.InfoLevel, true, nil
	case "4", "debug":
		return logrus.DebugLevel, true, nil
	case "5", "trace":
		return logrus.TraceLevel, true, nil
	}
	return 0, false, fmt.Errorf("unknown verbosity level %q", v)
}
