// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package rowindex

import (
	"math"

	"github.com/pkg/errors"
)

// checkSlice validates a (start, count, step) triple: start and count must be
// nonnegative, and for count > 1 the endpoint start + step*(count-1) must be
// nonnegative and representable in int64.  count is the primitive rather than
// an endpoint, so step == 0 needs no special case.
func checkSlice(start, count, step int64) error {
	if start < 0 || count < 0 {
		return errors.Errorf("rowindex: invalid slice (start %d, count %d, step %d)", start, count, step)
	}
	if count > 1 {
		// Both checks divide instead of multiplying so they cannot themselves
		// overflow.
		if step > 0 && step > (math.MaxInt64-start)/(count-1) {
			return errors.Errorf("rowindex: slice (start %d, count %d, step %d) overflows", start, count, step)
		}
		if step < 0 && step < -(start/(count-1)) {
			return errors.Errorf("rowindex: slice (start %d, count %d, step %d) goes negative", start, count, step)
		}
	}
	return nil
}

// sliceRange returns the value range of a valid nonempty (start, count, step)
// triple; the endpoints are the extrema in the orientation dictated by the
// sign of step.
func sliceRange(start, count, step int64) (min, max int64) {
	end := start + step*(count-1)
	if step >= 0 {
		return start, end
	}
	return end, start
}

// FromSlice returns the RowIndex visiting start, start+step, ...,
// start+step*(count-1).
func FromSlice(start, count, step int64) (*RowIndex, error) {
	if err := checkSlice(start, count, step); err != nil {
		return nil, err
	}
	ri := &RowIndex{kind: KindSlice, length: count, start: start, step: step}
	if count > 0 {
		ri.min, ri.max = sliceRange(start, count, step)
	}
	return ri, nil
}

// FromSliceList concatenates the slices described by the parallel triples
// (starts[k], counts[k], steps[k]) in input order.  Empty triples are
// skipped.  The result is materialised as a KindArr32 when both the total
// length and the largest visited row fit in int32, and as a KindArr64
// otherwise.  Any invalid triple fails the whole construction.
func FromSliceList(starts, counts, steps []int64) (*RowIndex, error) {
	n := len(starts)
	if len(counts) != n || len(steps) != n {
		return nil, errors.Errorf("rowindex.FromSliceList: mismatched triple lengths %d/%d/%d",
			n, len(counts), len(steps))
	}
	var total int64
	min := int64(math.MaxInt64)
	max := int64(-1)
	for k := 0; k < n; k++ {
		if err := checkSlice(starts[k], counts[k], steps[k]); err != nil {
			return nil, err
		}
		if counts[k] == 0 {
			continue
		}
		lo, hi := sliceRange(starts[k], counts[k], steps[k])
		if lo < min {
			min = lo
		}
		if hi > max {
			max = hi
		}
		total += counts[k]
	}
	if total == 0 {
		return emptyArr32(), nil
	}
	if total <= math.MaxInt32 && max <= math.MaxInt32 {
		ind := make([]int32, 0, total)
		for k := 0; k < n; k++ {
			src := starts[k]
			for c := int64(0); c < counts[k]; c++ {
				ind = append(ind, int32(src))
				src += steps[k]
			}
		}
		return newArr32(ind, min, max), nil
	}
	ind := make([]int64, 0, total)
	for k := 0; k < n; k++ {
		src := starts[k]
		for c := int64(0); c < counts[k]; c++ {
			ind = append(ind, src)
			src += steps[k]
		}
	}
	return newArr64(ind, min, max), nil
}
