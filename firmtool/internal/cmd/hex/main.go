// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hex

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/embeddedgo/firm/firmtool/internal/firm"
	"github.com/embeddedgo/firm/firmtool/internal/util"
	"github.com/marcinbor85/gohex"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const Descr = "convert the sections of a FIRM container to the Intel HEX format"

func Main(cmd string, args []string) {
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(
			os.Stderr,
			"Usage:\n  %s [OPTIONS] [FIRM [%s]]\nOptions:\n",
			cmd, strings.ToUpper(cmd),
		)
		fs.PrintDefaults()
	}
	lineLen := fs.Uint("line", 16, "number of data `bytes` in a HEX record")
	fs.Parse(args)
	if fs.NArg() > 2 || *lineLen == 0 || *lineLen > 255 {
		fs.Usage()
		os.Exit(1)
	}
	in, out := util.InOutFiles(fs.Arg(0), ".firm", fs.Arg(1), ".hex")
	util.FatalErr("", Run(afero.NewOsFs(), in, out, byte(*lineLen)))
}

// Run verifies the in container and writes its sections to the out file,
// each at its load address.
func Run(fs afero.Fs, in, out string, lineLen byte) error {
	f, err := fs.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return err
	}
	h, err := firm.Verify(f, fi.Size())
	if err != nil {
		return errors.WithMessage(err, in)
	}
	mem := gohex.NewMemory()
	for i := range h.Sections {
		sh := &h.Sections[i]
		if sh.Size == 0 {
			continue
		}
		data, err := io.ReadAll(h.SectionReader(i, f))
		if err != nil {
			return err
		}
		if err = mem.AddBinary(sh.Addr, data); err != nil {
			return errors.Wrapf(err, "section %d", i)
		}
	}
	mem.SetStartAddress(h.ARM9Entry)
	return util.WriteFile(fs, out, func(w io.Writer) error {
		return mem.DumpIntelHex(w, lineLen)
	})
}
