// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package rowindex_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"github.com/jcohut/datatable/column"
	"github.com/jcohut/datatable/rowindex"
	"github.com/stretchr/testify/require"
)

func TestFromFilter32Odd(t *testing.T) {
	const nrows = 200000
	ri, err := rowindex.FromFilter32(func(row0, row1 int64, out []int32) int {
		n := 0
		for r := row0; r < row1; r++ {
			if r&1 == 1 {
				out[n] = int32(r)
				n++
			}
		}
		return n
	}, nrows)
	assert.NoError(t, err)
	expect.EQ(t, ri.Kind(), rowindex.KindArr32)
	expect.EQ(t, ri.Len(), int64(100000))
	expect.EQ(t, ri.Min(), int64(1))
	expect.EQ(t, ri.Max(), int64(199999))
	next := int64(1)
	ri.ForEach(func(_, src int64) {
		if src != next {
			t.Fatalf("got row %d, want %d", src, next)
		}
		next += 2
	})
}

func TestFromFilter32Empty(t *testing.T) {
	none := func(row0, row1 int64, out []int32) int { return 0 }
	ri, err := rowindex.FromFilter32(none, 300000)
	assert.NoError(t, err)
	expect.EQ(t, ri.Len(), int64(0))
	expect.EQ(t, ri.Kind(), rowindex.KindArr32)

	ri, err = rowindex.FromFilter32(none, 0)
	assert.NoError(t, err)
	expect.EQ(t, ri.Len(), int64(0))
}

func TestFromFilter32Invalid(t *testing.T) {
	none := func(row0, row1 int64, out []int32) int { return 0 }
	ri, err := rowindex.FromFilter32(none, int64(math.MaxInt32)+1)
	require.Error(t, err)
	require.Nil(t, ri)

	ri, err = rowindex.FromFilter32(none, -1)
	require.Error(t, err)
	require.Nil(t, ri)
}

// TestFromFilter32Random cross-checks the parallel builder against the
// sequential boolean-column constructor over many chunk-straddling sizes.
func TestFromFilter32Random(t *testing.T) {
	rnd := rand.New(rand.NewSource(4))
	for iter := 0; iter < 20; iter++ {
		nrows := rnd.Intn(1 << 19)
		data := make([]byte, nrows)
		for i := range data {
			if rnd.Intn(5) == 0 {
				data[i] = 1
			}
		}
		ri, err := rowindex.FromFilter32(func(row0, row1 int64, out []int32) int {
			n := 0
			for r := row0; r < row1; r++ {
				if data[r] == 1 {
					out[n] = int32(r)
					n++
				}
			}
			return n
		}, int64(nrows))
		assert.NoError(t, err)
		want, err := rowindex.FromBoolColumn(column.NewBool8(data), int64(nrows))
		assert.NoError(t, err)
		expect.EQ(t, collect(t, ri), collect(t, want))
		expect.EQ(t, ri.Min(), want.Min())
		expect.EQ(t, ri.Max(), want.Max())
	}
}

func TestFromFilter64(t *testing.T) {
	const nrows = 3*65536 + 17
	ri, err := rowindex.FromFilter64(func(row0, row1 int64, out []int64) int {
		n := 0
		for r := row0; r < row1; r++ {
			if r%3 == 0 {
				out[n] = r
				n++
			}
		}
		return n
	}, nrows)
	assert.NoError(t, err)
	// Every selected row fits in int32, so the fresh wide buffer narrows.
	expect.EQ(t, ri.Kind(), rowindex.KindArr32)
	expect.EQ(t, ri.Len(), int64((nrows+2)/3))
	expect.EQ(t, ri.Min(), int64(0))
	next := int64(0)
	ri.ForEach(func(_, src int64) {
		if src != next {
			t.Fatalf("got row %d, want %d", src, next)
		}
		next += 3
	})

	_, err = rowindex.FromFilter64(func(int64, int64, []int64) int { return 0 }, -1)
	require.Error(t, err)
}
