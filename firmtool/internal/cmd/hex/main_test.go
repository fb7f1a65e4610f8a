// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hex

import (
	"bytes"
	"testing"

	"github.com/embeddedgo/firm/firmtool/internal/firm"
	"github.com/embeddedgo/firm/firmtool/internal/firm/firmtest"
	"github.com/marcinbor85/gohex"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	s0, err := firm.NewSection(0x08000000, firm.NDMA, firmtest.Seq(0x100, 0))
	require.NoError(t, err)
	s1, err := firm.NewSection(0x1ff80000, firm.XDMA, firmtest.Seq(0x10, 0x80))
	require.NoError(t, err)
	data, err := firm.NewBuilder().
		SetARM9Entry(0x08000000).
		SetARM11Entry(0x1ff80000).
		AddSection(s0).
		AddSection(s1).
		Build()
	require.NoError(t, err)

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/boot.firm", data, 0o644))
	require.NoError(t, Run(fs, "/boot.firm", "/boot.hex", 32))

	out, err := afero.ReadFile(fs, "/boot.hex")
	require.NoError(t, err)
	mem := gohex.NewMemory()
	require.NoError(t, mem.ParseIntelHex(bytes.NewReader(out)))
	require.Equal(t, s0.Data(), mem.ToBinary(0x08000000, s0.Size(), 0))
	require.Equal(t, s1.Data(), mem.ToBinary(0x1ff80000, s1.Size(), 0))
}

func TestRunCorrupted(t *testing.T) {
	s0, err := firm.NewSection(0x08000000, firm.NDMA, firmtest.Seq(0x100, 0))
	require.NoError(t, err)
	data, err := firm.NewBuilder().SetARM9Entry(0x08000000).AddSection(s0).Build()
	require.NoError(t, err)
	data[firm.HeaderSize] ^= 0xff

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/boot.firm", data, 0o644))
	err = Run(fs, "/boot.firm", "/boot.hex", 16)
	require.ErrorIs(t, err, firm.ErrDigestMismatch)
	exists, err := afero.Exists(fs, "/boot.hex")
	require.NoError(t, err)
	require.False(t, exists)
}
