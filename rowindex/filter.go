// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package rowindex

import (
	"math"
	"runtime"
	"sync/atomic"

	"github.com/grailbio/base/traverse"
	"github.com/pkg/errors"
)

// filterChunkRows is the number of rows handed to one filter call.
const filterChunkRows = 65536

// Filter32 is the chunk-filter contract of the 32-bit builder: write the
// selected row numbers in [row0, row1) into out in ascending order and
// return how many were written.  The filter must write at most row1-row0
// entries and must not fail.
type Filter32 func(row0, row1 int64, out []int32) int

// Filter64 is the int64-slot equivalent of Filter32.
type Filter64 func(row0, row1 int64, out []int64) int

// FromFilter32 builds the index of the rows in [0, nrows) selected by f,
// evaluating chunks of filterChunkRows rows in parallel.  The output is
// globally ascending regardless of chunk completion order: each worker
// claims its chunk's span of the shared output under a serialised step that
// runs in chunk order, while the filter calls and the copies into the
// claimed spans proceed concurrently.
//
// nrows must fit in int32; use FromFilter64 beyond that.
func FromFilter32(f Filter32, nrows int64) (*RowIndex, error) {
	if nrows < 0 {
		return nil, errors.Errorf("rowindex.FromFilter32: negative nrows %d", nrows)
	}
	if nrows > math.MaxInt32 {
		return nil, errors.Errorf("rowindex.FromFilter32: nrows %d does not fit in int32; use FromFilter64", nrows)
	}
	if nrows == 0 {
		return emptyArr32(), nil
	}
	// Worst case, every row is selected.
	out := make([]int32, nrows)
	nChunk := (nrows + filterChunkRows - 1) / filterChunkRows
	parallelism := runtime.NumCPU()
	if int64(parallelism) > nChunk {
		parallelism = int(nChunk)
	}
	var nextChunk, nextCommit, outLen int64
	traverse.Each(parallelism, func(_ int) error { // nolint: errcheck
		scratch := make([]int32, filterChunkRows)
		for {
			chunk := atomic.AddInt64(&nextChunk, 1) - 1
			if chunk >= nChunk {
				return nil
			}
			row0 := chunk * filterChunkRows
			row1 := row0 + filterChunkRows
			if row1 > nrows {
				row1 = nrows
			}
			cnt := int64(f(row0, row1, scratch))
			// Ordered commit.  Workers hold ascending chunks, so the spin
			// below only ever waits on lower-numbered chunks and is bounded.
			// outLen is published by the nextCommit store.
			for atomic.LoadInt64(&nextCommit) != chunk {
				runtime.Gosched()
			}
			outOff := outLen
			outLen += cnt
			atomic.StoreInt64(&nextCommit, chunk+1)
			// The copy runs outside the serialised step; [outOff, outOff+cnt)
			// is this worker's to write.
			copy(out[outOff:outOff+cnt], scratch[:cnt])
		}
	})
	if outLen == 0 {
		return emptyArr32(), nil
	}
	out = out[:outLen:outLen]
	// Ascending by construction, so the range is the two end slots.
	return newArr32(out, int64(out[0]), int64(out[outLen-1])), nil
}

// FromFilter64 builds the index of the rows in [0, nrows) selected by f,
// with int64 slots and no cap on nrows.  Same ordered-commit protocol as
// FromFilter32; the result is narrowed to KindArr32 when its range allows.
func FromFilter64(f Filter64, nrows int64) (*RowIndex, error) {
	if nrows < 0 {
		return nil, errors.Errorf("rowindex.FromFilter64: negative nrows %d", nrows)
	}
	if nrows == 0 {
		return emptyArr32(), nil
	}
	out := make([]int64, nrows)
	nChunk := (nrows + filterChunkRows - 1) / filterChunkRows
	parallelism := runtime.NumCPU()
	if int64(parallelism) > nChunk {
		parallelism = int(nChunk)
	}
	var nextChunk, nextCommit, outLen int64
	traverse.Each(parallelism, func(_ int) error { // nolint: errcheck
		scratch := make([]int64, filterChunkRows)
		for {
			chunk := atomic.AddInt64(&nextChunk, 1) - 1
			if chunk >= nChunk {
				return nil
			}
			row0 := chunk * filterChunkRows
			row1 := row0 + filterChunkRows
			if row1 > nrows {
				row1 = nrows
			}
			cnt := int64(f(row0, row1, scratch))
			for atomic.LoadInt64(&nextCommit) != chunk {
				runtime.Gosched()
			}
			outOff := outLen
			outLen += cnt
			atomic.StoreInt64(&nextCommit, chunk+1)
			copy(out[outOff:outOff+cnt], scratch[:cnt])
		}
	})
	if outLen == 0 {
		return emptyArr32(), nil
	}
	out = out[:outLen:outLen]
	ri := newArr64(out, out[0], out[outLen-1])
	ri.compactify()
	return ri, nil
}
