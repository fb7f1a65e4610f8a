// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package firm

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// CopyMethod tells the boot ROM which data mover places a section in memory.
type CopyMethod uint32

const (
	NDMA CopyMethod = 0 // ARM9 new DMA engine
	XDMA CopyMethod = 1 // ARM11 XDMA engine
	CPU  CopyMethod = 2 // memcpy by the ARM9 core
)

var copyMethodNames = [...]string{
	NDMA: "ndma",
	XDMA: "xdma",
	CPU:  "cpu",
}

// Valid reports whether m is one of the methods known to the boot ROM.
func (m CopyMethod) Valid() bool {
	return m < CopyMethod(len(copyMethodNames))
}

func (m CopyMethod) String() string {
	if !m.Valid() {
		return "CopyMethod(" + strconv.FormatUint(uint64(m), 10) + ")"
	}
	return copyMethodNames[m]
}

// ParseCopyMethod returns the copy method named s (case insensitive).
func ParseCopyMethod(s string) (CopyMethod, error) {
	for m, name := range copyMethodNames {
		if strings.EqualFold(s, name) {
			return CopyMethod(m), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownCopyMethod, "%q", s)
}
