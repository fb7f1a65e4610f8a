// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package firm builds FIRM containers: a 512-byte header followed by up to
// four section payloads, each loaded by the boot ROM at its address and
// checked against its SHA-256 digest before the ARM9 (and optionally the
// ARM11) core jumps to its entrypoint.
package firm

import (
	"bytes"
	"crypto/sha256"
	"io"

	"github.com/pkg/errors"
)

// Builder assembles a container from up to MaxSections sections. The
// sections are stored in the container in the order they were added.
//
// Header, WriteTo and Build do not modify the Builder so they can be called
// many times and always produce the same result.
type Builder struct {
	arm9Entry    uint32
	arm9EntrySet bool
	arm11Entry   uint32
	priority     uint32
	signature    [SignatureSize]byte
	sections     []*Section
}

func NewBuilder() *Builder {
	return new(Builder)
}

// SetARM9Entry sets the address the ARM9 core jumps to after loading. It
// must point into one of the sections.
func (b *Builder) SetARM9Entry(addr uint32) *Builder {
	b.arm9Entry = addr
	b.arm9EntrySet = true
	return b
}

// SetARM11Entry sets the ARM11 entrypoint. Zero leaves the ARM11 core idle.
func (b *Builder) SetARM11Entry(addr uint32) *Builder {
	b.arm11Entry = addr
	return b
}

func (b *Builder) SetPriority(p uint32) *Builder {
	b.priority = p
	return b
}

// SetSignature sets the signature block copied verbatim to the header.
func (b *Builder) SetSignature(sig *[SignatureSize]byte) *Builder {
	b.signature = *sig
	return b
}

func (b *Builder) AddSection(s *Section) *Builder {
	b.sections = append(b.sections, s)
	return b
}

func (b *Builder) Sections() []*Section {
	return b.sections
}

// Header validates the configuration and returns the header describing the
// container.
func (b *Builder) Header() (*Header, error) {
	if len(b.sections) > MaxSections {
		return nil, errors.Wrapf(
			ErrTooManySections, "%d sections, at most %d allowed",
			len(b.sections), MaxSections,
		)
	}
	if !b.arm9EntrySet {
		return nil, ErrMissingEntrypoint
	}
	found := false
	for _, s := range b.sections {
		if s.Contains(b.arm9Entry) {
			found = true
			break
		}
	}
	if !found {
		return nil, errors.Wrapf(ErrEntrypointNotInAnySection, "entry %#x", b.arm9Entry)
	}
	h := &Header{
		Priority:   b.priority,
		ARM11Entry: b.arm11Entry,
		ARM9Entry:  b.arm9Entry,
		Signature:  b.signature,
	}
	offset := uint64(HeaderSize)
	for i, s := range b.sections {
		if offset+uint64(s.Size()) > 1<<32 {
			return nil, errors.Wrapf(ErrSizeOverflow, "section %d ends at file offset %#x", i, offset+uint64(s.Size()))
		}
		h.Sections[i] = SectionHeader{
			Offset:     uint32(offset),
			Addr:       s.Addr(),
			Size:       s.Size(),
			CopyMethod: s.CopyMethod(),
			SHA256:     sha256.Sum256(s.Data()),
		}
		offset += uint64(s.Size())
	}
	return h, nil
}

// Size returns the size of the container in bytes.
func (b *Builder) Size() int64 {
	n := int64(HeaderSize)
	for _, s := range b.sections {
		n += int64(s.Size())
	}
	return n
}

// WriteTo writes the container to w. Nothing is written if the
// configuration is invalid. Errors returned by w are passed through as is.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	h, err := b.Header()
	if err != nil {
		return 0, err
	}
	n, err := h.WriteTo(w)
	if err != nil {
		return n, err
	}
	for _, s := range b.sections {
		m, err := w.Write(s.Data())
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// Build returns the container as a byte slice.
func (b *Builder) Build() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, b.Size()))
	if _, err := b.WriteTo(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
