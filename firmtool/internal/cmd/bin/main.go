// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bin

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/embeddedgo/firm/firmtool/internal/firm"
	"github.com/embeddedgo/firm/firmtool/internal/log"
	"github.com/embeddedgo/firm/firmtool/internal/util"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const Descr = "convert an ELF file to the contiguous binary image used as a FIRM section"

func Main(cmd string, args []string) {
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(
			os.Stderr,
			"Usage:\n  %s [OPTIONS] [ELF [%s]]\nOptions:\n",
			cmd, strings.ToUpper(cmd),
		)
		fs.PrintDefaults()
	}
	pad := fs.Bool("pad", false, "pad the image with 0xff bytes to a multiple of 512 bytes")
	verbose := fs.Bool("v", false, "print diagnostic information")
	fs.Parse(args)
	if fs.NArg() > 2 {
		fs.Usage()
		os.Exit(1)
	}
	if *verbose {
		log.Setup(true)
	}
	elf, out := util.InOutFiles(fs.Arg(0), ".elf", fs.Arg(1), ".bin")
	util.FatalErr("", Run(afero.NewOsFs(), elf, out, *pad))
}

// Run extracts the program from the elf file and writes its memory image to
// the out file.
func Run(fs afero.Fs, elf, out string, pad bool) error {
	p, err := util.ReadELF(fs, elf)
	if err != nil {
		return err
	}
	data := p.Data
	if pad {
		s, err := firm.NewSection(p.Addr, firm.NDMA, data)
		if err != nil {
			return errors.WithMessage(err, elf)
		}
		data = s.Data()
	}
	return util.WriteFile(fs, out, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}
