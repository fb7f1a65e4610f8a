// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import (
	"github.com/embeddedgo/firm/firmtool/internal/firm"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// ReadELF reads the named ELF file and returns its contiguous memory image.
// The loadable segments left out of the image are logged as warnings.
func ReadELF(fs afero.Fs, name string) (*firm.Program, error) {
	f, err := fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := firm.ExtractProgram(f)
	if err != nil {
		return nil, errors.WithMessage(err, name)
	}
	for _, ph := range p.Skipped {
		// TODO: decide whether a gap should be zero filled or rejected
		// instead of dropping the rest of the segment.
		Warn(
			"readelf: %s: skipping segment at %#x (%d bytes), the image ends at %#x",
			name, ph.Paddr, ph.Memsz, uint64(p.Addr)+uint64(len(p.Data)),
		)
	}
	Debug("readelf: %s: entry %#x, load address %#x, %d bytes", name, p.Entry, p.Addr, len(p.Data))
	return p, nil
}
