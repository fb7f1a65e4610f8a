// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package firm

import (
	"debug/elf"
	"io"
	"math"
	"slices"

	"github.com/pkg/errors"
)

// Program is the contiguous memory image of an ELF executable.
type Program struct {
	Entry uint32 // entrypoint
	Addr  uint32 // load address of Data
	Data  []byte

	// Skipped lists the loadable segments that were left out because
	// they do not directly follow the image built so far.
	Skipped []elf.ProgHeader
}

// ExtractProgram builds the memory image of the ELF executable read from r.
//
// The loadable segments are processed in the program header table order.
// The first one starts the image and every next one is appended only if it
// begins where the image ends. Segments that leave a gap or overlap are
// skipped and reported in Program.Skipped. The image contains the file data
// of every accepted segment followed by Memsz-Filesz zero bytes.
func ExtractProgram(r io.ReaderAt) (*Program, error) {
	f, err := elf.NewFile(r)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedInput, err.Error())
	}
	defer f.Close()
	if f.Entry > math.MaxUint32 {
		return nil, errors.Wrapf(ErrAddressOverflow, "entrypoint %#x", f.Entry)
	}
	p := &Program{Entry: uint32(f.Entry)}
	var start, end uint64
	accepted := false
	for i, prog := range f.Progs {
		ph := prog.ProgHeader
		if ph.Type != elf.PT_LOAD || ph.Memsz == 0 {
			continue
		}
		if ph.Paddr != ph.Vaddr {
			return nil, errors.Wrapf(
				ErrUnsupportedAddressMode, "segment %d: paddr %#x, vaddr %#x",
				i, ph.Paddr, ph.Vaddr,
			)
		}
		if ph.Filesz > ph.Memsz {
			return nil, errors.Wrapf(
				ErrInvalidSegment, "segment %d: filesz %#x > memsz %#x",
				i, ph.Filesz, ph.Memsz,
			)
		}
		if !accepted {
			start, end = ph.Paddr, ph.Paddr
			accepted = true
		}
		if ph.Paddr != end {
			p.Skipped = append(p.Skipped, ph)
			continue
		}
		if end+ph.Memsz > math.MaxUint32 {
			return nil, errors.Wrapf(
				ErrAddressOverflow, "segment %d: %#x-%#x",
				i, ph.Paddr, end+ph.Memsz,
			)
		}
		n := len(p.Data)
		p.Data = slices.Grow(p.Data, int(ph.Memsz))[:n+int(ph.Memsz)]
		seg := p.Data[n:]
		if _, err := io.ReadFull(prog.Open(), seg[:ph.Filesz]); err != nil {
			return nil, errors.Wrapf(ErrMalformedInput, "segment %d: %v", i, err)
		}
		clear(seg[ph.Filesz:])
		end += ph.Memsz
	}
	if !accepted {
		return nil, ErrNoLoadableSegments
	}
	if start > math.MaxUint32 {
		return nil, errors.Wrapf(ErrAddressOverflow, "load address %#x", start)
	}
	p.Addr = uint32(start)
	return p, nil
}
