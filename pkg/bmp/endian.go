package bmp

import (
	"sync"
	"unsafe"
)

// hostLittleEndian reports whether the host stores the least significant
// byte of a multi-byte value at the lowest address. The probe writes a
// known 32-bit value and inspects its low-address byte; the result cannot
// change while the process runs, so it is computed once.
var hostLittleEndian = sync.OnceValue(func() bool {
	n := uint32(1)
	return *(*byte)(unsafe.Pointer(&n)) == 1
})

// reverseBytes reverses b in place. The whole slice is reversed, whatever
// its length.
func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// All header and mask values in a BMP file are stored little-endian. The
// readLE functions below are the only place byte order is handled: each
// copies sizeof(T) bytes at buf[off:] into an aligned scratch array,
// reverses them on big-endian hosts, and reinterprets the result.
// Callers must guarantee at least sizeof(T) readable bytes at off.

func readLEU16(buf []byte, off int) uint16 {
	var tmp [2]byte
	copy(tmp[:], buf[off:off+2])
	if !hostLittleEndian() {
		reverseBytes(tmp[:])
	}
	return *(*uint16)(unsafe.Pointer(&tmp[0]))
}

func readLEU32(buf []byte, off int) uint32 {
	var tmp [4]byte
	copy(tmp[:], buf[off:off+4])
	if !hostLittleEndian() {
		reverseBytes(tmp[:])
	}
	return *(*uint32)(unsafe.Pointer(&tmp[0]))
}

func readLEU64(buf []byte, off int) uint64 {
	var tmp [8]byte
	copy(tmp[:], buf[off:off+8])
	if !hostLittleEndian() {
		reverseBytes(tmp[:])
	}
	return *(*uint64)(unsafe.Pointer(&tmp[0]))
}

func readLEI16(buf []byte, off int) int16 {
	return int16(readLEU16(buf, off))
}

func readLEI32(buf []byte, off int) int32 {
	return int32(readLEU32(buf, off))
}

func readLEI64(buf []byte, off int) int64 {
	return int64(readLEU64(buf, off))
}
