// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package column provides the minimal byte-backed column representation
// consumed by the rowindex constructors, along with the byte-scan kernels
// they need (selected-row counting, first/last nonzero byte).
package column
