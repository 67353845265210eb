// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package rowindex implements the row-selection index at the heart of the
// data table: a compact mapping from destination row positions to source row
// positions.  Every derived column is a (source data, RowIndex) pair, so
// filters, slices, reorderings and joins all reduce to constructing and
// composing RowIndex values.
//
// A RowIndex is stored in one of three variants, chosen per instance for
// memory footprint: an arithmetic slice (start + step*i), an int32 index
// array, or an int64 index array.  Freshly built int64 arrays are narrowed to
// int32 in place whenever the observed maximum allows.
package rowindex
