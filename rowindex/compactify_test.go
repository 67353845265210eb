// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package rowindex

import (
	"math"
	"testing"
	"unsafe"

	"github.com/grailbio/testutil/expect"
)

func TestCompactify(t *testing.T) {
	ri := newArr64([]int64{5, 0, math.MaxInt32, 2}, 0, math.MaxInt32)
	before := unsafe.Pointer(&ri.ind64[0])
	expect.True(t, ri.compactify())
	expect.EQ(t, ri.kind, KindArr32)
	expect.EQ(t, ri.ind32, []int32{5, 0, math.MaxInt32, 2})
	expect.True(t, ri.ind64 == nil)
	// The narrow buffer occupies the front of the wide buffer's memory.
	expect.True(t, unsafe.Pointer(&ri.ind32[0]) == before)
	expect.EQ(t, cap(ri.ind32), 4)

	// Idempotent: the second call is a no-op.
	expect.True(t, !ri.compactify())
	expect.EQ(t, ri.kind, KindArr32)
	expect.EQ(t, ri.ind32, []int32{5, 0, math.MaxInt32, 2})
}

func TestCompactifyWide(t *testing.T) {
	big := int64(math.MaxInt32) + 1
	ri := newArr64([]int64{1, big}, 1, big)
	expect.True(t, !ri.compactify())
	expect.EQ(t, ri.kind, KindArr64)
	expect.EQ(t, ri.ind64, []int64{1, big})
	expect.True(t, ri.ind32 == nil)
}
