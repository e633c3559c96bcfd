// Package endian provides byte order utilities for binary decoding.
//
// It combines the ByteOrder and AppendByteOrder interfaces from the standard
// encoding/binary package into a single EndianEngine interface, so decoding
// code can take one value that covers both fixed-width reads and append-style
// writes.
//
// The marshal wire format is big-endian except for the little-endian double
// tag families, so most callers use GetBigEndianEngine:
//
//	import "github.com/camlkit/intern/endian"
//
//	engine := endian.GetBigEndianEngine()
//	value := engine.Uint32(buf[off : off+4])
//
// All functions in this package are safe for concurrent use; the returned
// engines are immutable and stateless.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.BigEndian and binary.LittleEndian,
// making it fully compatible with existing Go code.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	// For a big-endian system, the MSB (0x01) is first.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

// GetBigEndianEngine returns the big-endian engine, the wire format's default
// byte order.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine, used only by the
// little-endian double and double-array tag families.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
