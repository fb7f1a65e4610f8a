// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Debug prints a diagnostic message visible in the verbose mode only.
func Debug(f string, args ...any) {
	zap.S().Debugf(f, args...)
}

func Warn(f string, args ...any) {
	zap.S().Warnf(f, args...)
}

func Fatal(f string, args ...any) {
	zap.S().Errorf(f, args...)
	zap.L().Sync()
	os.Exit(1)
}

// FatalErr prints an error description and exits the program if the
// err != nil.
func FatalErr(what string, err error) {
	if err == nil {
		return
	}
	if what != "" {
		Fatal("%s: %v", what, err)
	}
	Fatal("%v", err)
}

// DirName returns the last element of the path to the current working
// directory.
func DirName() string {
	dir, err := os.Getwd()
	FatalErr("", err)
	dir = filepath.Base(dir)
	if dir == "/" || dir == "." {
		dir = ""
	}
	return dir
}

// InOutFiles infers the name of the input file from the name of the current
// working directory if the inName is an empty string and the name of the
// output file from the input one if the outName is an empty string.
func InOutFiles(inName, inSuffix, outName, outSuffix string) (string, string) {
	if inName == "" {
		inName = DirName() + inSuffix
	}
	if outName == "" {
		outName = strings.TrimSuffix(inName, inSuffix) + outSuffix
	}
	return inName, outName
}
