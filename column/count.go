// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package column

// LastSet returns the position of the last nonzero byte in src, or -1 if all
// bytes are zero.
// (Probable todo: replace with a base/simd reverse-scan kernel once one
// exists; it'd be a straightforward variation of simd.FirstGreater8.)
func LastSet(src []byte) int {
	for i := len(src) - 1; i >= 0; i-- {
		if src[i] != 0 {
			return i
		}
	}
	return -1
}
