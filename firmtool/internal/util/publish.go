// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import (
	"bufio"
	"io"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// WriteFile creates the named file with the content produced by write. The
// content is written to a temporary file in the same directory which is
// renamed to name only if write and all file operations succeed. Otherwise
// the temporary file is removed and an existing name stays untouched.
func WriteFile(fs afero.Fs, name string, write func(w io.Writer) error) (err error) {
	dir, base := filepath.Split(name)
	if dir == "" {
		dir = "."
	}
	f, err := afero.TempFile(fs, dir, "."+base+".tmp*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			fs.Remove(tmp)
		}
	}()
	w := bufio.NewWriter(f)
	if err = write(w); err != nil {
		return err
	}
	if err = w.Flush(); err != nil {
		return err
	}
	if err = f.Sync(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return errors.WithMessage(err, tmp)
	}
	if err = fs.Chmod(tmp, 0o644); err != nil {
		return err
	}
	return fs.Rename(tmp, name)
}
