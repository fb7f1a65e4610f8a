// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package firm

import (
	"testing"

	"github.com/embeddedgo/firm/firmtool/internal/firm/firmtest"
)

type testSegment = firmtest.Segment

var (
	loadSeg = firmtest.Load
	seq     = firmtest.Seq
)

func makeELF(t *testing.T, entry uint32, segs ...testSegment) []byte {
	t.Helper()
	return firmtest.ELF(entry, segs...)
}
