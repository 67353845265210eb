// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build amd64 && !appengine
// +build amd64,!appengine

package column

import (
	"github.com/grailbio/base/simd"
)

// CountSet returns the number of bytes in src equal to 1.
//
// WARNING: This function assumes Bool8 storage, i.e. every byte is 0 or 1.
// It returns a garbage result on other input.  (However, it won't corrupt
// memory.)
func CountSet(src []byte) int {
	// For 0/1 bytes the sum is the count, and the byte-summing kernel is the
	// fastest primitive base/simd offers here.
	return simd.Accumulate8(src)
}

// FirstSet returns the position of the first nonzero byte in src, or
// len(src) if all bytes are zero.
func FirstSet(src []byte) int {
	return simd.FirstGreater8(src, 0, 0)
}
