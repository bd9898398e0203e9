// Package endian provides byte order utilities for the fixed-width integer
// codec.
//
// DER INTEGER content is always big-endian on the wire, but the native
// IntBlob representation (spec.md §3) is little-endian in memory. This
// package combines encoding/binary's ByteOrder and AppendByteOrder
// interfaces into a single EndianEngine so the fixed-width integer codec
// (see package integer) can decompose a native int32 into bytes and reverse
// them into minimal big-endian DER form without hand-rolled shifts.
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library, making it fully compatible with existing Go code while
// providing access to both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
