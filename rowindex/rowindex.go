// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package rowindex

import (
	"github.com/grailbio/base/log"
)

// Kind identifies the storage variant of a RowIndex.
type Kind int32

const (
	// KindSlice is the arithmetic-progression variant: destination row i maps
	// to source row start + step*i.
	KindSlice Kind = iota
	// KindArr32 stores one int32 source row per destination row.
	KindArr32
	// KindArr64 stores one int64 source row per destination row.
	KindArr64
)

func (k Kind) String() string {
	switch k {
	case KindSlice:
		return "slice"
	case KindArr32:
		return "arr32"
	case KindArr64:
		return "arr64"
	}
	return "invalid"
}

// RowIndex maps destination row positions [0, Len()) to nonnegative source
// row positions.  Aside from the in-place narrowing applied to a freshly
// built KindArr64 before it escapes its constructor, a RowIndex is immutable.
//
// min and max always equal the true smallest and largest source row produced
// when the index is nonempty; both are 0 when it is empty.
type RowIndex struct {
	kind   Kind
	length int64
	min    int64
	max    int64
	// start and step define the KindSlice mapping.
	start int64
	step  int64
	// ind32 and ind64 are the owned KindArr32/KindArr64 payloads.  At most
	// one is non-nil; after compactify() narrows a fresh arr64, ind32 aliases
	// the front of the memory ind64 occupied.
	ind32 []int32
	ind64 []int64
}

// Kind returns the storage variant.
func (ri *RowIndex) Kind() Kind {
	return ri.kind
}

// Len returns the number of destination rows.
func (ri *RowIndex) Len() int64 {
	return ri.length
}

// Min returns the smallest source row produced, or 0 for an empty index.
func (ri *RowIndex) Min() int64 {
	return ri.min
}

// Max returns the largest source row produced, or 0 for an empty index.
func (ri *RowIndex) Max() int64 {
	return ri.max
}

// Get returns the source row at destination position i.
func (ri *RowIndex) Get(i int64) int64 {
	switch ri.kind {
	case KindSlice:
		return ri.start + ri.step*i
	case KindArr32:
		return int64(ri.ind32[i])
	case KindArr64:
		return ri.ind64[i]
	}
	log.Panicf("rowindex.Get: unknown variant %v", ri.kind)
	return 0
}

// ForEach calls f once per destination row, in destination order, with the
// destination position dst and the source row src it maps to.  The variant
// dispatch is hoisted above the loops, so f is the only per-row call.
func (ri *RowIndex) ForEach(f func(dst, src int64)) {
	switch ri.kind {
	case KindSlice:
		src := ri.start
		for i := int64(0); i < ri.length; i++ {
			f(i, src)
			src += ri.step
		}
	case KindArr32:
		for i, src := range ri.ind32 {
			f(int64(i), int64(src))
		}
	case KindArr64:
		for i, src := range ri.ind64 {
			f(int64(i), src)
		}
	default:
		log.Panicf("rowindex.ForEach: unknown variant %v", ri.kind)
	}
}

// Free releases the payload.  It is safe to call on a nil RowIndex; the
// object must not be used afterwards.  Freeing a RowIndex twice is a no-op.
func (ri *RowIndex) Free() {
	if ri == nil {
		return
	}
	ri.ind32 = nil
	ri.ind64 = nil
	ri.length = 0
	ri.min = 0
	ri.max = 0
}

// clone returns a deep copy.
func (ri *RowIndex) clone() *RowIndex {
	r := *ri
	if ri.ind32 != nil {
		r.ind32 = make([]int32, len(ri.ind32))
		copy(r.ind32, ri.ind32)
	}
	if ri.ind64 != nil {
		r.ind64 = make([]int64, len(ri.ind64))
		copy(r.ind64, ri.ind64)
	}
	return &r
}

// newArr32 wraps an owned int32 buffer with a precomputed value range.
func newArr32(ind []int32, min, max int64) *RowIndex {
	if len(ind) > 0 && min > max {
		log.Panicf("rowindex.newArr32: min %d > max %d", min, max)
	}
	return &RowIndex{kind: KindArr32, length: int64(len(ind)), min: min, max: max, ind32: ind}
}

// newArr64 wraps an owned int64 buffer with a precomputed value range.
func newArr64(ind []int64, min, max int64) *RowIndex {
	if len(ind) > 0 && min > max {
		log.Panicf("rowindex.newArr64: min %d > max %d", min, max)
	}
	return &RowIndex{kind: KindArr64, length: int64(len(ind)), min: min, max: max, ind64: ind}
}

// emptyArr32 is the canonical zero-selected result: a KindArr32 with no
// payload.
func emptyArr32() *RowIndex {
	return &RowIndex{kind: KindArr32}
}
