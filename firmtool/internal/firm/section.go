// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package firm

import (
	"math"

	"github.com/pkg/errors"
)

// SectionAlign is the DMA transfer granularity of the boot ROM. Section
// payloads are padded to a multiple of it.
const SectionAlign = 512

const padByte = 0xff

// Section is one memory image of the container: its load address, the copy
// method and the padded payload.
type Section struct {
	addr       uint32
	copyMethod CopyMethod
	data       []byte
}

// NewSection pads data with 0xff bytes to a multiple of SectionAlign and
// checks that the result fits in the 32-bit address space starting at addr.
// The end of the section must be addressable, so a section cannot reach
// 1<<32. The section holds its own copy of data.
func NewSection(addr uint32, cm CopyMethod, data []byte) (*Section, error) {
	if !cm.Valid() {
		return nil, errors.Wrapf(ErrUnknownCopyMethod, "section at %#x: %d", addr, uint32(cm))
	}
	size := uint64(len(data)+SectionAlign-1) &^ (SectionAlign - 1)
	if size > math.MaxUint32 {
		return nil, errors.Wrapf(ErrSizeOverflow, "section at %#x: %d bytes", addr, size)
	}
	if uint64(addr)+size > math.MaxUint32 {
		return nil, errors.Wrapf(
			ErrAddressOverflow, "section at %#x: end %#x",
			addr, uint64(addr)+size,
		)
	}
	padded := make([]byte, size)
	n := copy(padded, data)
	for i := n; i < len(padded); i++ {
		padded[i] = padByte
	}
	return &Section{addr, cm, padded}, nil
}

func (s *Section) Addr() uint32           { return s.addr }
func (s *Section) CopyMethod() CopyMethod { return s.copyMethod }
func (s *Section) Size() uint32           { return uint32(len(s.data)) }

// Data returns the padded payload. It must not be modified.
func (s *Section) Data() []byte { return s.data }

// Contains reports whether addr lies in [s.Addr(), s.Addr()+s.Size()).
func (s *Section) Contains(addr uint32) bool {
	return s.addr <= addr && addr < s.addr+s.Size()
}
