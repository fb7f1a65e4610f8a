// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package build

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/embeddedgo/firm/firmtool/internal/firm"
	"github.com/embeddedgo/firm/firmtool/internal/log"
	"github.com/embeddedgo/firm/firmtool/internal/util"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const Descr = "build a FIRM container from the ARM9 and optional ARM11 ELF files"

// Config describes the container to build.
type Config struct {
	Output    string
	ARM9ELF   string
	ARM11ELF  string // optional
	ARM9Copy  firm.CopyMethod
	ARM11Copy firm.CopyMethod
	Priority  uint32
	Signature string // file with the signature block, optional
	Bins      []util.Bin
}

func Main(cmd string, args []string) {
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(
			os.Stderr,
			"Usage:\n  %s [OPTIONS] FIRM ARM9_ELF [ARM11_ELF]\nOptions:\n",
			cmd,
		)
		fs.PrintDefaults()
	}
	arm9Copy := fs.String("arm9copy", "ndma", "copy `method` of the ARM9 section: ndma, xdma, cpu")
	arm11Copy := fs.String("arm11copy", "xdma", "copy `method` of the ARM11 section: ndma, xdma, cpu")
	priority := fs.String("priority", "0", "boot priority (32-bit `number`)")
	sig := fs.String("sig", "", "`file` with the 256-byte signature block (zeros if not set)")
	inc := fs.String(
		"inc", "",
		"binary files to be included as sections BIN1:ADDR1[:METHOD1][,...]\n"+
			"(the default method is cpu)",
	)
	verbose := fs.Bool("v", false, "print diagnostic information")
	fs.Parse(args)
	if fs.NArg() < 2 || fs.NArg() > 3 {
		fs.Usage()
		os.Exit(1)
	}
	if *verbose {
		log.Setup(true)
	}
	cfg := Config{
		Output:    fs.Arg(0),
		ARM9ELF:   fs.Arg(1),
		ARM11ELF:  fs.Arg(2),
		Signature: *sig,
	}
	var err error
	cfg.Priority, err = parsePriority(*priority)
	util.FatalErr("priority", err)
	cfg.ARM9Copy, err = firm.ParseCopyMethod(*arm9Copy)
	util.FatalErr("arm9copy", err)
	cfg.ARM11Copy, err = firm.ParseCopyMethod(*arm11Copy)
	util.FatalErr("arm11copy", err)
	if *inc != "" {
		cfg.Bins, err = util.ParseBins(*inc, firm.CPU)
		util.FatalErr("", err)
	}
	util.FatalErr("build", Run(afero.NewOsFs(), &cfg))
}

func parsePriority(s string) (uint32, error) {
	p, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, errors.Errorf("bad boot priority '%s': must fit in 32 bits", s)
	}
	return uint32(p), nil
}

// Run builds the container described by cfg and writes it to cfg.Output.
func Run(fs afero.Fs, cfg *Config) error {
	b, err := NewBuilder(fs, cfg)
	if err != nil {
		return err
	}
	// Validate before the output file is created.
	h, err := b.Header()
	if err != nil {
		return err
	}
	for i, s := range b.Sections() {
		sh := &h.Sections[i]
		util.Debug(
			"section %d: offset %#x addr %#x size %#x %s",
			i, sh.Offset, sh.Addr, sh.Size, s.CopyMethod(),
		)
	}
	return util.WriteFile(fs, cfg.Output, func(w io.Writer) error {
		_, err := b.WriteTo(w)
		return err
	})
}

// NewBuilder reads the input files and returns the configured builder.
func NewBuilder(fs afero.Fs, cfg *Config) (*firm.Builder, error) {
	b := firm.NewBuilder().SetPriority(cfg.Priority)
	p, err := util.ReadELF(fs, cfg.ARM9ELF)
	if err != nil {
		return nil, err
	}
	s, err := firm.NewSection(p.Addr, cfg.ARM9Copy, p.Data)
	if err != nil {
		return nil, errors.WithMessage(err, cfg.ARM9ELF)
	}
	b.SetARM9Entry(p.Entry).AddSection(s)
	if cfg.ARM11ELF != "" {
		p, err := util.ReadELF(fs, cfg.ARM11ELF)
		if err != nil {
			return nil, err
		}
		s, err := firm.NewSection(p.Addr, cfg.ARM11Copy, p.Data)
		if err != nil {
			return nil, errors.WithMessage(err, cfg.ARM11ELF)
		}
		b.SetARM11Entry(p.Entry).AddSection(s)
	}
	if len(cfg.Bins) != 0 {
		ss, err := util.ReadBins(fs, cfg.Bins)
		if err != nil {
			return nil, err
		}
		for _, s := range ss {
			b.AddSection(s)
		}
	}
	if cfg.Signature != "" {
		sig, err := afero.ReadFile(fs, cfg.Signature)
		if err != nil {
			return nil, err
		}
		if len(sig) != firm.SignatureSize {
			return nil, errors.Errorf(
				"%s: signature must be %d bytes long, got %d",
				cfg.Signature, firm.SignatureSize, len(sig),
			)
		}
		b.SetSignature((*[firm.SignatureSize]byte)(sig))
	}
	return b, nil
}
