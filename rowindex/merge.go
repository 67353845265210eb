// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package rowindex

import (
	"math"

	"github.com/grailbio/base/log"
)

// Merge composes two row indices: given ab mapping A-rows to B-rows and bc
// mapping B-rows to C-rows, it returns the index mapping A-rows to C-rows,
// with one entry per bc entry.  A nil ab acts as the identity, so the result
// is a clone of bc.  Neither input is mutated.
//
// Every bc value must be a valid destination position of ab; this is a
// precondition, not validated.
func Merge(ab, bc *RowIndex) *RowIndex {
	if bc == nil {
		log.Panicf("rowindex.Merge: nil bc index")
	}
	if ab == nil {
		return bc.clone()
	}
	n := bc.length
	if n == 0 {
		return &RowIndex{kind: KindSlice, start: 0, step: 1}
	}
	switch bc.kind {
	case KindSlice:
		return mergeIntoSlice(ab, bc.start, n, bc.step)
	case KindArr32:
		return mergeIntoArr32(ab, bc.ind32)
	case KindArr64:
		return mergeIntoArr64(ab, bc.ind64)
	}
	log.Panicf("rowindex.Merge: unknown variant %v", bc.kind)
	return nil
}

// mergeIntoSlice handles a KindSlice bc: the composed index visits
// ab[bs + bt*i] for i in [0, n).
func mergeIntoSlice(ab *RowIndex, bs, n, bt int64) *RowIndex {
	if ab.kind == KindSlice {
		// Closure: a slice of a slice is a slice.
		start := ab.start + ab.step*bs
		step := ab.step * bt
		ri := &RowIndex{kind: KindSlice, length: n, start: start, step: step}
		ri.min, ri.max = sliceRange(start, n, step)
		return ri
	}
	if bt == 0 {
		// The same source row repeated n times.
		row := ab.Get(bs)
		return &RowIndex{kind: KindSlice, length: n, min: row, max: row, start: row, step: 0}
	}
	if ab.kind == KindArr32 {
		ind := make([]int32, n)
		min := int64(math.MaxInt64)
		max := int64(math.MinInt64)
		src := bs
		for i := range ind {
			v := ab.ind32[src]
			ind[i] = v
			if int64(v) < min {
				min = int64(v)
			}
			if int64(v) > max {
				max = int64(v)
			}
			src += bt
		}
		return newArr32(ind, min, max)
	}
	ind := make([]int64, n)
	min := int64(math.MaxInt64)
	max := int64(math.MinInt64)
	src := bs
	for i := range ind {
		v := ab.ind64[src]
		ind[i] = v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		src += bt
	}
	ri := newArr64(ind, min, max)
	ri.compactify()
	return ri
}

// mergeIntoArr32 handles a KindArr32 bc.
func mergeIntoArr32(ab *RowIndex, bc []int32) *RowIndex {
	min := int64(math.MaxInt64)
	max := int64(math.MinInt64)
	switch ab.kind {
	case KindSlice:
		ind := make([]int64, len(bc))
		for i, v := range bc {
			row := ab.start + ab.step*int64(v)
			ind[i] = row
			if row < min {
				min = row
			}
			if row > max {
				max = row
			}
		}
		ri := newArr64(ind, min, max)
		ri.compactify()
		return ri
	case KindArr32:
		ind := make([]int32, len(bc))
		for i, v := range bc {
			row := ab.ind32[v]
			ind[i] = row
			if int64(row) < min {
				min = int64(row)
			}
			if int64(row) > max {
				max = int64(row)
			}
		}
		return newArr32(ind, min, max)
	default: // KindArr64
		ind := make([]int64, len(bc))
		for i, v := range bc {
			row := ab.ind64[v]
			ind[i] = row
			if row < min {
				min = row
			}
			if row > max {
				max = row
			}
		}
		ri := newArr64(ind, min, max)
		ri.compactify()
		return ri
	}
}

// mergeIntoArr64 handles a KindArr64 bc.  All three outputs are gathered
// into int64 slots and then narrowed when possible.
func mergeIntoArr64(ab *RowIndex, bc []int64) *RowIndex {
	ind := make([]int64, len(bc))
	min := int64(math.MaxInt64)
	max := int64(math.MinInt64)
	switch ab.kind {
	case KindSlice:
		for i, v := range bc {
			row := ab.start + ab.step*v
			ind[i] = row
			if row < min {
				min = row
			}
			if row > max {
				max = row
			}
		}
	case KindArr32:
		for i, v := range bc {
			row := int64(ab.ind32[v])
			ind[i] = row
			if row < min {
				min = row
			}
			if row > max {
				max = row
			}
		}
	default: // KindArr64
		for i, v := range bc {
			row := ab.ind64[v]
			ind[i] = row
			if row < min {
				min = row
			}
			if row > max {
				max = row
			}
		}
	}
	ri := newArr64(ind, min, max)
	ri.compactify()
	return ri
}
