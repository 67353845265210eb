// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package rowindex

import (
	"math"

	"github.com/grailbio/base/log"
	"github.com/jcohut/datatable/column"
	"github.com/pkg/errors"
)

// FromArr32 wraps ind as a KindArr32 RowIndex, taking ownership of the
// buffer: the caller must not touch ind afterwards.  The buffer is scanned
// once for its value range.  All values must be nonnegative.
func FromArr32(ind []int32) *RowIndex {
	if len(ind) == 0 {
		return emptyArr32()
	}
	min := int64(math.MaxInt64)
	max := int64(math.MinInt64)
	for _, v := range ind {
		if int64(v) < min {
			min = int64(v)
		}
		if int64(v) > max {
			max = int64(v)
		}
	}
	if min < 0 {
		log.Panicf("rowindex.FromArr32: negative row %d", min)
	}
	return newArr32(ind, min, max)
}

// FromArr64 wraps ind as a KindArr64 RowIndex, taking ownership of the
// buffer: the caller must not touch ind afterwards.  The buffer is scanned
// once for its value range, but is never narrowed to int32: an externally
// supplied int64 array stays KindArr64 even when its values would fit, since
// the width is the caller's choice.  All values must be nonnegative.
func FromArr64(ind []int64) *RowIndex {
	if len(ind) == 0 {
		return &RowIndex{kind: KindArr64}
	}
	min := int64(math.MaxInt64)
	max := int64(math.MinInt64)
	for _, v := range ind {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min < 0 {
		log.Panicf("rowindex.FromArr64: negative row %d", min)
	}
	return newArr64(ind, min, max)
}

// FromIntColumn treats an integer column's values as source row numbers.
// Unlike FromArr32/FromArr64 it copies, since the column keeps its storage.
// The storage width is preserved: an Int32 column yields a KindArr32, an
// Int64 column a KindArr64.  Fails on a non-integer column or a negative
// value.
func FromIntColumn(col *column.Column) (*RowIndex, error) {
	switch col.Stype() {
	case column.Int32:
		src := col.Int32s()
		if len(src) == 0 {
			return emptyArr32(), nil
		}
		ind := make([]int32, len(src))
		min := int64(math.MaxInt64)
		max := int64(math.MinInt64)
		for i, v := range src {
			if v < 0 {
				return nil, errors.Errorf("rowindex.FromIntColumn: negative row %d at position %d", v, i)
			}
			if int64(v) < min {
				min = int64(v)
			}
			if int64(v) > max {
				max = int64(v)
			}
			ind[i] = v
		}
		return newArr32(ind, min, max), nil
	case column.Int64:
		src := col.Int64s()
		if len(src) == 0 {
			return &RowIndex{kind: KindArr64}, nil
		}
		ind := make([]int64, len(src))
		min := int64(math.MaxInt64)
		max := int64(math.MinInt64)
		for i, v := range src {
			if v < 0 {
				return nil, errors.Errorf("rowindex.FromIntColumn: negative row %d at position %d", v, i)
			}
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
			ind[i] = v
		}
		return newArr64(ind, min, max), nil
	}
	return nil, errors.Errorf("rowindex.FromIntColumn: non-integer column (stype %v)", col.Stype())
}
