// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package log builds the logger used for diagnostics printed by firmtool.
package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger writing plain console lines to stderr. Debug messages
// are printed only if verbose is true.
func New(verbose bool, opts ...zap.Option) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	if verbose {
		cfg.Level.SetLevel(zap.DebugLevel)
	}
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.TimeKey = ""
	cfg.EncoderConfig.NameKey = ""
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	l, err := cfg.Build(opts...)
	if err != nil {
		panic(err)
	}
	return l
}

// Setup replaces the global zap logger with New(verbose, opts...).
func Setup(verbose bool, opts ...zap.Option) *zap.SugaredLogger {
	zap.ReplaceGlobals(New(verbose, opts...))
	return zap.S()
}
