// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build !amd64 || appengine
// +build !amd64 appengine

package column

// CountSet returns the number of bytes in src equal to 1.
//
// WARNING: This function assumes Bool8 storage, i.e. every byte is 0 or 1.
// It returns a garbage result on other input.  (However, it won't corrupt
// memory.)
func CountSet(src []byte) int {
	cnt := 0
	for _, b := range src {
		cnt += int(b)
	}
	return cnt
}

// FirstSet returns the position of the first nonzero byte in src, or
// len(src) if all bytes are zero.
func FirstSet(src []byte) int {
	for i, b := range src {
		if b != 0 {
			return i
		}
	}
	return len(src)
}
