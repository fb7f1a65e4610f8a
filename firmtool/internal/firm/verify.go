// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package firm

import (
	"crypto/sha256"
	"io"

	"github.com/pkg/errors"
)

// Verify reads the container of the given size from r and checks that its
// header describes sections the boot ROM can load: every used section lies
// inside the file after the header, is aligned to SectionAlign, fits in the
// address space and matches its digest. The ARM9 entrypoint must point into
// one of the sections.
func Verify(r io.ReaderAt, size int64) (*Header, error) {
	h, err := ReadHeader(io.NewSectionReader(r, 0, size))
	if err != nil {
		return nil, err
	}
	entryFound := false
	for i := range h.Sections {
		sh := &h.Sections[i]
		if sh.Empty() {
			continue
		}
		if sh.Offset < HeaderSize || sh.Offset%SectionAlign != 0 || sh.Size%SectionAlign != 0 {
			return nil, errors.Wrapf(
				ErrMalformedInput, "section %d: offset %#x, size %#x",
				i, sh.Offset, sh.Size,
			)
		}
		if int64(sh.Offset)+int64(sh.Size) > size {
			return nil, errors.Wrapf(
				ErrMalformedInput, "section %d: ends at %#x, file size %#x",
				i, int64(sh.Offset)+int64(sh.Size), size,
			)
		}
		if uint64(sh.Addr)+uint64(sh.Size) > 1<<32-1 {
			return nil, errors.Wrapf(ErrAddressOverflow, "section %d at %#x", i, sh.Addr)
		}
		hash := sha256.New()
		if _, err := io.Copy(hash, h.SectionReader(i, r)); err != nil {
			return nil, err
		}
		if [sha256.Size]byte(hash.Sum(nil)) != sh.SHA256 {
			return nil, errors.Wrapf(ErrDigestMismatch, "section %d", i)
		}
		entryFound = entryFound || sh.Contains(h.ARM9Entry)
	}
	if !entryFound {
		return nil, errors.Wrapf(ErrEntrypointNotInAnySection, "entry %#x", h.ARM9Entry)
	}
	return h, nil
}

// SectionReader returns the reader of the payload of the i-th section of
// the container read by r.
func (h *Header) SectionReader(i int, r io.ReaderAt) *io.SectionReader {
	sh := &h.Sections[i]
	return io.NewSectionReader(r, int64(sh.Offset), int64(sh.Size))
}
