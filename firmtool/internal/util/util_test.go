// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import (
	"errors"
	"io"
	"testing"

	"github.com/embeddedgo/firm/firmtool/internal/firm"
	"github.com/embeddedgo/firm/firmtool/internal/firm/firmtest"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestParseBins(t *testing.T) {
	tests := []struct {
		descr string
		want  []Bin
	}{
		{
			"boot.bin:0x08000000",
			[]Bin{{"boot.bin", 0x08000000, firm.CPU}},
		},
		{
			"a.bin:0x1000:ndma,dir/b.bin:4096:xdma",
			[]Bin{{"a.bin", 0x1000, firm.NDMA}, {"dir/b.bin", 4096, firm.XDMA}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.descr, func(t *testing.T) {
			bins, err := ParseBins(tt.descr, firm.CPU)
			require.NoError(t, err)
			require.Equal(t, tt.want, bins)
		})
	}
}

func TestParseBinsErrors(t *testing.T) {
	for _, descr := range []string{
		"",
		"a.bin",
		":0x1000",
		"a.bin:zero",
		"a.bin:0x100000000",
		"a.bin:0x1000:dma",
		"a.bin:0x1000:cpu:x",
		"a.bin:0x1000,",
	} {
		_, err := ParseBins(descr, firm.CPU)
		require.Error(t, err, descr)
	}
	_, err := ParseBins("a.bin:0:bad", firm.CPU)
	require.ErrorIs(t, err, firm.ErrUnknownCopyMethod)
}

func TestReadBins(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/bins/a.bin", []byte{1, 2, 3}, 0o644))
	ss, err := ReadBins(fs, []Bin{{"/bins/a.bin", 0x20000000, firm.NDMA}})
	require.NoError(t, err)
	require.Len(t, ss, 1)
	require.Equal(t, uint32(0x20000000), ss[0].Addr())
	require.Equal(t, uint32(firm.SectionAlign), ss[0].Size())
	require.Equal(t, []byte{1, 2, 3, 0xff}, ss[0].Data()[:4])

	_, err = ReadBins(fs, []Bin{{"/bins/a.bin", 0xffffff00, firm.NDMA}})
	require.ErrorIs(t, err, firm.ErrAddressOverflow)

	_, err = ReadBins(fs, []Bin{{"/bins/missing.bin", 0, firm.NDMA}})
	require.Error(t, err)
}

func TestReadELF(t *testing.T) {
	fs := afero.NewMemMapFs()
	elfData := firmtest.ELF(0x08000000,
		firmtest.Load(0x08000000, 4, []byte{1, 2, 3, 4}),
		firmtest.Load(0x08100000, 2, []byte{5, 6}),
	)
	require.NoError(t, afero.WriteFile(fs, "/arm9.elf", elfData, 0o644))
	p, err := ReadELF(fs, "/arm9.elf")
	require.NoError(t, err)
	require.Equal(t, uint32(0x08000000), p.Addr)
	require.Equal(t, []byte{1, 2, 3, 4}, p.Data)
	require.Len(t, p.Skipped, 1)

	require.NoError(t, afero.WriteFile(fs, "/bad.elf", []byte("not an elf"), 0o644))
	_, err = ReadELF(fs, "/bad.elf")
	require.ErrorIs(t, err, firm.ErrMalformedInput)

	_, err = ReadELF(fs, "/missing.elf")
	require.Error(t, err)
}

func TestInOutFiles(t *testing.T) {
	in, out := InOutFiles("boot.firm", ".firm", "", ".hex")
	require.Equal(t, "boot.firm", in)
	require.Equal(t, "boot.hex", out)

	in, out = InOutFiles("arm9.elf", ".elf", "out.bin", ".bin")
	require.Equal(t, "arm9.elf", in)
	require.Equal(t, "out.bin", out)
}

func TestWriteFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/out", 0o755))
	err := WriteFile(fs, "/out/boot.firm", func(w io.Writer) error {
		_, err := w.Write([]byte("FIRM"))
		return err
	})
	require.NoError(t, err)
	data, err := afero.ReadFile(fs, "/out/boot.firm")
	require.NoError(t, err)
	require.Equal(t, []byte("FIRM"), data)

	errBuild := errors.New("entrypoint not found")
	err = WriteFile(fs, "/out/boot.firm", func(w io.Writer) error {
		w.Write([]byte("garbage"))
		return errBuild
	})
	require.Equal(t, errBuild, err)
	data, err = afero.ReadFile(fs, "/out/boot.firm")
	require.NoError(t, err)
	require.Equal(t, []byte("FIRM"), data)

	infos, err := afero.ReadDir(fs, "/out")
	require.NoError(t, err)
	require.Len(t, infos, 1)
	require.Equal(t, "boot.firm", infos[0].Name())
}

func TestWriteFileLeavesNothingOnFailure(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/out", 0o755))
	err := WriteFile(fs, "/out/new.firm", func(w io.Writer) error {
		return errors.New("failed")
	})
	require.Error(t, err)
	exists, err := afero.Exists(fs, "/out/new.firm")
	require.NoError(t, err)
	require.False(t, exists)
	infos, err := afero.ReadDir(fs, "/out")
	require.NoError(t, err)
	require.Empty(t, infos)
}
