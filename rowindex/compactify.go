// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package rowindex

import (
	"math"
)

// compactify narrows a freshly built KindArr64 RowIndex to KindArr32 in
// place when both its max and its length fit in int32.  The int32 buffer
// reuses the int64 buffer's memory, written front to back: the narrow slots
// trail the read cursor, so no value is clobbered before it is read.  The
// caller must hold the only reference to ri.
//
// Returns whether the index was narrowed; when it wasn't (already KindArr32,
// or out of int32 range), ri is unchanged.
func (ri *RowIndex) compactify() bool {
	if ri.kind != KindArr64 || ri.max > math.MaxInt32 || ri.length > math.MaxInt32 {
		return false
	}
	src := ri.ind64
	dst := unsafeBytesToint32s(unsafeint64sToBytes(src))
	for i, v := range src {
		dst[i] = int32(v)
	}
	ri.ind32 = dst[:len(src):len(src)]
	ri.ind64 = nil
	ri.kind = KindArr32
	return true
}
