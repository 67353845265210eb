// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package rowindex

import (
	"math"

	"github.com/jcohut/datatable/column"
	"github.com/pkg/errors"
)

// FromBoolColumn returns the index of the rows selected by a boolean column:
// the ascending positions in [0, nrows) whose byte is 1.
//
// WARNING: Bytes other than 0 and 1 are invalid input and produce a garbage
// result.  (However, they won't corrupt memory.)
func FromBoolColumn(col *column.Column, nrows int64) (*RowIndex, error) {
	if col.Stype() != column.Bool8 {
		return nil, errors.Errorf("rowindex.FromBoolColumn: non-boolean column (stype %v)", col.Stype())
	}
	if nrows < 0 || nrows > col.NRows() {
		return nil, errors.Errorf("rowindex.FromBoolColumn: nrows %d out of range for %d-row column",
			nrows, col.NRows())
	}
	data := col.Bytes()[:nrows]
	nout := int64(column.CountSet(data))
	if nout == 0 {
		return emptyArr32(), nil
	}
	maxrow := int64(column.LastSet(data))
	// Only positions 0..maxrow can be selected, so the emit pass stops there.
	if nout <= math.MaxInt32 && maxrow <= math.MaxInt32 {
		ind := make([]int32, nout)
		k := 0
		for i, b := range data[:maxrow+1] {
			if b == 1 {
				ind[k] = int32(i)
				k++
			}
		}
		return newArr32(ind, int64(ind[0]), maxrow), nil
	}
	ind := make([]int64, nout)
	k := 0
	for i, b := range data[:maxrow+1] {
		if b == 1 {
			ind[k] = int64(i)
			k++
		}
	}
	return newArr64(ind, ind[0], maxrow), nil
}

// FromBoolColumnIndexed filters an existing view: it visits the source rows
// of ri in destination order and selects the iteration positions whose
// column byte is 1.  The produced indices therefore address rows of the
// outer view, not of the original source.  Variant selection follows
// FromBoolColumn.
//
// WARNING: Bytes other than 0 and 1 are invalid input and produce a garbage
// result.  (However, they won't corrupt memory.)
func FromBoolColumnIndexed(col *column.Column, ri *RowIndex) (*RowIndex, error) {
	if col.Stype() != column.Bool8 {
		return nil, errors.Errorf("rowindex.FromBoolColumnIndexed: non-boolean column (stype %v)", col.Stype())
	}
	if ri.length > 0 && ri.max >= col.NRows() {
		return nil, errors.Errorf("rowindex.FromBoolColumnIndexed: index reaches row %d of a %d-row column",
			ri.max, col.NRows())
	}
	data := col.Bytes()
	var nout, maxpos int64
	ri.ForEach(func(dst, src int64) {
		if data[src] == 1 {
			nout++
			maxpos = dst
		}
	})
	if nout == 0 {
		return emptyArr32(), nil
	}
	if nout <= math.MaxInt32 && maxpos <= math.MaxInt32 {
		ind := make([]int32, 0, nout)
		ri.ForEach(func(dst, src int64) {
			if data[src] == 1 {
				ind = append(ind, int32(dst))
			}
		})
		return newArr32(ind, int64(ind[0]), maxpos), nil
	}
	ind := make([]int64, 0, nout)
	ri.ForEach(func(dst, src int64) {
		if data[src] == 1 {
			ind = append(ind, dst)
		}
	})
	return newArr64(ind, ind[0], maxpos), nil
}
