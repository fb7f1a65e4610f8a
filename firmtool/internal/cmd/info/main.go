// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package info

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/embeddedgo/firm/firmtool/internal/firm"
	"github.com/embeddedgo/firm/firmtool/internal/util"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/afero"
)

const Descr = "print the header of a FIRM container and verify its sections"

func Main(cmd string, args []string) {
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage:\n  %s FIRM\n", cmd)
		fs.PrintDefaults()
	}
	fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(1)
	}
	util.FatalErr("", Run(afero.NewOsFs(), fs.Arg(0), os.Stdout))
}

// Run prints the header of the named container to w. It returns the
// verification error, if any, after the header has been printed.
func Run(fs afero.Fs, name string, w io.Writer) error {
	f, err := fs.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return err
	}
	h, err := firm.ReadHeader(f)
	if err != nil {
		return err
	}
	Print(w, h, fi.Size())
	if _, err = firm.Verify(f, fi.Size()); err != nil {
		return err
	}
	fmt.Fprintln(w, "OK")
	return nil
}

// Print writes the human readable description of h to w.
func Print(w io.Writer, h *firm.Header, size int64) {
	fmt.Fprintf(w, "Size:        %s (%d bytes)\n", humanize.IBytes(uint64(size)), size)
	fmt.Fprintf(w, "Priority:    %d\n", h.Priority)
	fmt.Fprintf(w, "ARM9 entry:  %#08x\n", h.ARM9Entry)
	if h.ARM11Entry == 0 {
		fmt.Fprintf(w, "ARM11 entry: none\n")
	} else {
		fmt.Fprintf(w, "ARM11 entry: %#08x\n", h.ARM11Entry)
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Offset", "Address", "Size", "Copy", "SHA-256"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	for i := range h.Sections {
		sh := &h.Sections[i]
		if sh.Empty() {
			continue
		}
		table.Append([]string{
			strconv.Itoa(i),
			fmt.Sprintf("%#x", sh.Offset),
			fmt.Sprintf("%#08x", sh.Addr),
			fmt.Sprintf("%#x", sh.Size),
			sh.CopyMethod.String(),
			hex.EncodeToString(sh.SHA256[:]),
		})
	}
	table.Render()
}
