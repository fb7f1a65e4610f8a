// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package firm

import "github.com/pkg/errors"

// Errors returned by the builder. Each error carries the context of the
// failure so use errors.Is to test for a specific one.
var (
	ErrMissingEntrypoint         = errors.New("missing ARM9 entrypoint")
	ErrTooManySections           = errors.New("too many sections")
	ErrEntrypointNotInAnySection = errors.New("ARM9 entrypoint does not point into any section")
)

// Section errors.
var (
	ErrSizeOverflow    = errors.New("size does not fit in 32 bits")
	ErrAddressOverflow = errors.New("address does not fit in 32 bits")
)

// ELF extraction errors.
var (
	ErrMalformedInput         = errors.New("malformed input")
	ErrUnsupportedAddressMode = errors.New("physical address differs from virtual address")
	ErrInvalidSegment         = errors.New("invalid segment")
	ErrNoLoadableSegments     = errors.New("no loadable segments")
)

// Container decoding errors.
var (
	ErrBadMagic          = errors.New("bad FIRM magic")
	ErrUnknownCopyMethod = errors.New("unknown copy method")
	ErrDigestMismatch    = errors.New("SHA-256 digest mismatch")
)
