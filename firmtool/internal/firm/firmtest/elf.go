// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package firmtest provides ELF fixtures for tests.
package firmtest

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
)

// Segment describes a program header and its file data.
type Segment struct {
	Type  elf.ProgType
	Paddr uint32
	Vaddr uint32
	Memsz uint32
	Data  []byte
}

// Load returns an identity mapped PT_LOAD segment.
func Load(addr, memsz uint32, data []byte) Segment {
	return Segment{elf.PT_LOAD, addr, addr, memsz, data}
}

// ELF returns a little-endian 32-bit ARM executable without section headers
// containing the given segments. The segment data follows the program header
// table in the order of segs.
func ELF(entry uint32, segs ...Segment) []byte {
	const (
		ehsize    = 52
		phentsize = 32
	)
	hdr := elf.Header32{
		Type:      uint16(elf.ET_EXEC),
		Machine:   uint16(elf.EM_ARM),
		Version:   uint32(elf.EV_CURRENT),
		Entry:     entry,
		Phoff:     ehsize,
		Ehsize:    ehsize,
		Phentsize: phentsize,
		Phnum:     uint16(len(segs)),
		Shentsize: 40,
	}
	copy(hdr.Ident[:], elf.ELFMAG)
	hdr.Ident[elf.EI_CLASS] = byte(elf.ELFCLASS32)
	hdr.Ident[elf.EI_DATA] = byte(elf.ELFDATA2LSB)
	hdr.Ident[elf.EI_VERSION] = byte(elf.EV_CURRENT)

	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, &hdr)
	off := uint32(ehsize + phentsize*len(segs))
	for _, s := range segs {
		ph := elf.Prog32{
			Type:   uint32(s.Type),
			Off:    off,
			Vaddr:  s.Vaddr,
			Paddr:  s.Paddr,
			Filesz: uint32(len(s.Data)),
			Memsz:  s.Memsz,
			Flags:  uint32(elf.PF_R | elf.PF_X),
			Align:  4,
		}
		binary.Write(&buf, binary.LittleEndian, &ph)
		off += uint32(len(s.Data))
	}
	for _, s := range segs {
		buf.Write(s.Data)
	}
	return buf.Bytes()
}

// Seq returns n bytes counting up from start.
func Seq(n int, start byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = start + byte(i)
	}
	return b
}
