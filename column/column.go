// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package column

import (
	"github.com/grailbio/base/log"
)

// Stype identifies the physical storage type of a column.
type Stype byte

const (
	// Bool8 is 1-byte boolean storage.  Byte value 0 means false, 1 means
	// true; any other byte value is invalid input.
	Bool8 Stype = iota + 1
	// Int32 is native-endian 4-byte signed integer storage.
	Int32
	// Int64 is native-endian 8-byte signed integer storage.
	Int64
)

// elemSize returns the per-row storage width in bytes.
func (s Stype) elemSize() int64 {
	switch s {
	case Bool8:
		return 1
	case Int32:
		return 4
	case Int64:
		return 8
	}
	return 0
}

func (s Stype) String() string {
	switch s {
	case Bool8:
		return "bool8"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	}
	return "invalid"
}

// Column is a single column of a data table: a storage-type tag plus the raw
// row-major byte buffer.  A Column does not own its buffer; the constructors
// below keep a reference to the caller's slice without copying.
type Column struct {
	stype Stype
	data  []byte
}

// NewBool8 wraps a 1-byte-per-row boolean buffer.
func NewBool8(data []byte) *Column {
	return &Column{stype: Bool8, data: data}
}

// NewInt32 wraps an int32 buffer, reinterpreting it as raw bytes without
// copying.
func NewInt32(vals []int32) *Column {
	return &Column{stype: Int32, data: unsafeint32sToBytes(vals)}
}

// NewInt64 wraps an int64 buffer, reinterpreting it as raw bytes without
// copying.
func NewInt64(vals []int64) *Column {
	return &Column{stype: Int64, data: unsafeint64sToBytes(vals)}
}

// Stype returns the storage-type tag.
func (c *Column) Stype() Stype {
	return c.stype
}

// Bytes returns the raw storage.  The caller must not mutate it while the
// Column is in use.
func (c *Column) Bytes() []byte {
	return c.data
}

// NRows returns the number of rows the storage holds.
func (c *Column) NRows() int64 {
	return int64(len(c.data)) / c.stype.elemSize()
}

// Int32s returns the storage viewed as int32 rows.  The column must have
// Int32 stype.
func (c *Column) Int32s() []int32 {
	if c.stype != Int32 {
		log.Panicf("column.Int32s: called on %v column", c.stype)
	}
	return unsafeBytesToint32s(c.data)
}

// Int64s returns the storage viewed as int64 rows.  The column must have
// Int64 stype.
func (c *Column) Int64s() []int64 {
	if c.stype != Int64 {
		log.Panicf("column.Int64s: called on %v column", c.stype)
	}
	return unsafeBytesToint64s(c.data)
}
