// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package column_test

import (
	"math/rand"
	"testing"

	"github.com/grailbio/testutil/expect"
	"github.com/jcohut/datatable/column"
)

func countSetSlow(src []byte) int {
	cnt := 0
	for _, b := range src {
		if b == 1 {
			cnt++
		}
	}
	return cnt
}

func firstSetSlow(src []byte) int {
	for i, b := range src {
		if b != 0 {
			return i
		}
	}
	return len(src)
}

func lastSetSlow(src []byte) int {
	for i := len(src) - 1; i >= 0; i-- {
		if src[i] != 0 {
			return i
		}
	}
	return -1
}

func TestScanKernels(t *testing.T) {
	// Sizes straddle the vector width; contents are valid Bool8 bytes.
	rnd := rand.New(rand.NewSource(1))
	for iter := 0; iter < 500; iter++ {
		src := make([]byte, rnd.Intn(300))
		for i := range src {
			if rnd.Intn(7) == 0 {
				src[i] = 1
			}
		}
		expect.EQ(t, column.CountSet(src), countSetSlow(src))
		expect.EQ(t, column.FirstSet(src), firstSetSlow(src))
		expect.EQ(t, column.LastSet(src), lastSetSlow(src))
	}
}

func TestScanKernelsEdge(t *testing.T) {
	expect.EQ(t, column.CountSet(nil), 0)
	expect.EQ(t, column.FirstSet(nil), 0)
	expect.EQ(t, column.LastSet(nil), -1)

	all := make([]byte, 1000)
	for i := range all {
		all[i] = 1
	}
	expect.EQ(t, column.CountSet(all), 1000)
	expect.EQ(t, column.FirstSet(all), 0)
	expect.EQ(t, column.LastSet(all), 999)
}
