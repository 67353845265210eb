// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package rowindex_test

import (
	"testing"

	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"github.com/jcohut/datatable/rowindex"
)

// collect iterates ri and returns the visited source rows, checking that the
// destination positions arrive as 0, 1, 2, ...
func collect(t *testing.T, ri *rowindex.RowIndex) []int64 {
	rows := []int64{}
	next := int64(0)
	ri.ForEach(func(dst, src int64) {
		if dst != next {
			t.Fatalf("ForEach visited dst %d, want %d", dst, next)
		}
		next++
		rows = append(rows, src)
	})
	return rows
}

// checkRange verifies that Min/Max are the true extrema of the visited rows,
// and that no row is negative.
func checkRange(t *testing.T, ri *rowindex.RowIndex) {
	rows := collect(t, ri)
	expect.EQ(t, int64(len(rows)), ri.Len())
	if len(rows) == 0 {
		expect.EQ(t, ri.Min(), int64(0))
		expect.EQ(t, ri.Max(), int64(0))
		return
	}
	min, max := rows[0], rows[0]
	for _, r := range rows {
		expect.True(t, r >= 0, "negative row", r)
		if r < min {
			min = r
		}
		if r > max {
			max = r
		}
	}
	expect.EQ(t, ri.Min(), min)
	expect.EQ(t, ri.Max(), max)
}

func TestGet(t *testing.T) {
	ri, err := rowindex.FromSlice(10, 5, 2)
	assert.NoError(t, err)
	for i, want := range []int64{10, 12, 14, 16, 18} {
		expect.EQ(t, ri.Get(int64(i)), want)
	}
	ri = rowindex.FromArr32([]int32{5, 3, 9, 1})
	expect.EQ(t, ri.Get(2), int64(9))
	ri = rowindex.FromArr64([]int64{1 << 40, 7})
	expect.EQ(t, ri.Get(0), int64(1)<<40)
}

func TestFree(t *testing.T) {
	var ri *rowindex.RowIndex
	ri.Free() // nil-safe

	ri = rowindex.FromArr32([]int32{4, 2})
	ri.Free()
	expect.EQ(t, ri.Len(), int64(0))
	ri.Free() // double free is a no-op
}
