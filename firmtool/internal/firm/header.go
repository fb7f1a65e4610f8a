// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package firm

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

const (
	HeaderSize    = 0x200 // size of the encoded Header
	SignatureSize = 0x100 // size of the RSA signature block
	MaxSections   = 4     // number of section slots in the Header
)

var magic = [4]byte{'F', 'I', 'R', 'M'}

// SectionHeader describes one section of the container. The zero value is
// an unused slot.
type SectionHeader struct {
	Offset     uint32 // offset of the payload in the container file
	Addr       uint32 // load address
	Size       uint32 // padded payload size
	CopyMethod CopyMethod
	SHA256     [sha256.Size]byte // digest of the padded payload
}

// Empty reports whether sh describes an unused slot, that is, whether all
// its fields are zero. A used section of zero size is not Empty.
func (sh *SectionHeader) Empty() bool {
	return *sh == SectionHeader{}
}

// Contains reports whether addr lies in the memory range of the section.
func (sh *SectionHeader) Contains(addr uint32) bool {
	return sh.Addr <= addr && uint64(addr) < uint64(sh.Addr)+uint64(sh.Size)
}

// Header is the metadata block at the beginning of every container.
type Header struct {
	Priority   uint32
	ARM11Entry uint32 // 0 means the ARM11 core is not started
	ARM9Entry  uint32
	Sections   [MaxSections]SectionHeader
	Signature  [SignatureSize]byte
}

// rawHeader is the on-disk layout of Header (little-endian).
type rawHeader struct {
	Magic      [4]byte
	Priority   uint32
	ARM11Entry uint32
	ARM9Entry  uint32
	_          [0x30]byte
	Sections   [MaxSections]SectionHeader
	Signature  [SignatureSize]byte
}

// WriteTo writes exactly HeaderSize bytes to w. It panics if a used slot
// holds an unknown copy method.
func (h *Header) WriteTo(w io.Writer) (int64, error) {
	for i := range h.Sections {
		sh := &h.Sections[i]
		if !sh.Empty() && !sh.CopyMethod.Valid() {
			panic(fmt.Sprintf("firm: section %d: bad copy method %v", i, sh.CopyMethod))
		}
	}
	raw := rawHeader{
		Magic:      magic,
		Priority:   h.Priority,
		ARM11Entry: h.ARM11Entry,
		ARM9Entry:  h.ARM9Entry,
		Sections:   h.Sections,
		Signature:  h.Signature,
	}
	buf := bytes.NewBuffer(make([]byte, 0, HeaderSize))
	if err := binary.Write(buf, binary.LittleEndian, &raw); err != nil {
		return 0, err
	}
	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// ReadHeader decodes the header at the beginning of a container.
func ReadHeader(r io.Reader) (*Header, error) {
	var raw rawHeader
	if err := binary.Read(r, binary.LittleEndian, &raw); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, errors.Wrap(ErrMalformedInput, "short header")
		}
		return nil, err
	}
	if raw.Magic != magic {
		return nil, errors.Wrapf(ErrBadMagic, "%q", raw.Magic[:])
	}
	for i := range raw.Sections {
		sh := &raw.Sections[i]
		if !sh.Empty() && !sh.CopyMethod.Valid() {
			return nil, errors.Wrapf(ErrUnknownCopyMethod, "section %d: %d", i, uint32(sh.CopyMethod))
		}
	}
	return &Header{
		Priority:   raw.Priority,
		ARM11Entry: raw.ARM11Entry,
		ARM9Entry:  raw.ARM9Entry,
		Sections:   raw.Sections,
		Signature:  raw.Signature,
	}, nil
}
