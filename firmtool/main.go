// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Firmtool builds and inspects FIRM containers, the boot images loaded by
// the boot ROM of the dual-core (ARM9 + ARM11) device.
package main

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/embeddedgo/firm/firmtool/internal/cmd/bin"
	"github.com/embeddedgo/firm/firmtool/internal/cmd/build"
	"github.com/embeddedgo/firm/firmtool/internal/cmd/hex"
	"github.com/embeddedgo/firm/firmtool/internal/cmd/info"
	"github.com/embeddedgo/firm/firmtool/internal/log"
)

type tool struct {
	descr string
	main  func(cmd string, args []string)
}

var tools = map[string]tool{
	"bin":   {bin.Descr, bin.Main},
	"build": {build.Descr, build.Main},
	"hex":   {hex.Descr, hex.Main},
	"info":  {info.Descr, info.Main},
}

func printToolList() {
	names := slices.Sorted(maps.Keys(tools))
	maxLen := 0
	for _, k := range names {
		if maxLen < len(k) {
			maxLen = len(k)
		}
	}
	uw := os.Stderr
	uw.WriteString("Usage:\n  firmtool COMMAND [ARGUMENTS]\n\n")
	uw.WriteString("Available commands:\n")
	for _, name := range names {
		fmt.Fprintf(uw, "  %*s  %s\n", maxLen, name, tools[name].descr)
	}
}

func main() {
	if len(os.Args) < 2 || os.Args[1] == "-h" {
		printToolList()
		return
	}
	tool, ok := tools[os.Args[1]]
	if !ok {
		printToolList()
		os.Exit(1)
	}
	log.Setup(false)
	tool.main(os.Args[1], os.Args[2:])
}
