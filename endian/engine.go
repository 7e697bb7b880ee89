// Package endian provides byte order utilities for decoding raw binary values.
//
// The kernel returns performance-counter values as 8-byte integers in the
// host's native byte order, so the one engine that matters here is the native
// one. GetNativeEngine detects the host order once and returns the matching
// encoding/binary implementation.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single interface. It is satisfied by both
// binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness inspects a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. A little-endian host stores the LSB (0x00) first,
	// a big-endian host stores the MSB (0x01) first.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// GetNativeEngine returns the engine matching the host byte order.
func GetNativeEngine() EndianEngine {
	if IsNativeLittleEndian() {
		return binary.LittleEndian
	}

	return binary.BigEndian
}
