// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bin

import (
	"bytes"
	"testing"

	"github.com/embeddedgo/firm/firmtool/internal/firm"
	"github.com/embeddedgo/firm/firmtool/internal/firm/firmtest"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	fs := afero.NewMemMapFs()
	elf := firmtest.ELF(0x00100000,
		firmtest.Load(0x00100000, 0x10, firmtest.Seq(0x10, 1)),
		firmtest.Load(0x00100020, 0x10, firmtest.Seq(0x10, 2)),
	)
	require.NoError(t, afero.WriteFile(fs, "/prog.elf", elf, 0o644))

	require.NoError(t, Run(fs, "/prog.elf", "/prog.bin", false))
	data, err := afero.ReadFile(fs, "/prog.bin")
	require.NoError(t, err)
	require.Equal(t, firmtest.Seq(0x10, 1), data)

	require.NoError(t, Run(fs, "/prog.elf", "/prog.bin", true))
	data, err = afero.ReadFile(fs, "/prog.bin")
	require.NoError(t, err)
	require.Len(t, data, firm.SectionAlign)
	require.Equal(t, bytes.Repeat([]byte{0xff}, firm.SectionAlign-0x10), data[0x10:])
}

func TestRunInvalidSegment(t *testing.T) {
	fs := afero.NewMemMapFs()
	elf := firmtest.ELF(0x1000, firmtest.Load(0x1000, 0x10, firmtest.Seq(0x20, 0)))
	require.NoError(t, afero.WriteFile(fs, "/prog.elf", elf, 0o644))
	err := Run(fs, "/prog.elf", "/prog.bin", false)
	require.ErrorIs(t, err, firm.ErrInvalidSegment)
	exists, err := afero.Exists(fs, "/prog.bin")
	require.NoError(t, err)
	require.False(t, exists)
}
