// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import (
	"strconv"
	"strings"

	"github.com/embeddedgo/firm/firmtool/internal/firm"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Bin describes a raw binary file to be included in the container.
type Bin struct {
	Name       string
	Addr       uint32
	CopyMethod firm.CopyMethod
}

// ParseBins parses the BIN1:ADDR1[:METHOD1][,BIN2:ADDR2[:METHOD2][,...]]
// description. The copy method defaults to defMethod.
func ParseBins(descr string, defMethod firm.CopyMethod) ([]Bin, error) {
	var bins []Bin
	for _, ba := range strings.Split(descr, ",") {
		fields := strings.Split(ba, ":")
		if len(fields) < 2 || len(fields) > 3 || fields[0] == "" {
			return nil, errors.Errorf("bad '%s' in the -inc option", ba)
		}
		b := Bin{Name: fields[0], CopyMethod: defMethod}
		addr, err := strconv.ParseUint(fields[1], 0, 32)
		if err != nil {
			return nil, errors.Errorf("bad address in '%s': %s", ba, err)
		}
		b.Addr = uint32(addr)
		if len(fields) == 3 {
			b.CopyMethod, err = firm.ParseCopyMethod(fields[2])
			if err != nil {
				return nil, errors.WithMessagef(err, "bad copy method in '%s'", ba)
			}
		}
		bins = append(bins, b)
	}
	return bins, nil
}

// ReadBins reads the binary files and returns them as container sections.
func ReadBins(fs afero.Fs, bins []Bin) ([]*firm.Section, error) {
	ss := make([]*firm.Section, len(bins))
	for i, b := range bins {
		data, err := afero.ReadFile(fs, b.Name)
		if err != nil {
			return nil, err
		}
		ss[i], err = firm.NewSection(b.Addr, b.CopyMethod, data)
		if err != nil {
			return nil, errors.WithMessage(err, b.Name)
		}
	}
	return ss, nil
}
