package shared

import (
	"math/bits"
)

// NumBits returns the number of bits required to represent val. Zero still
// occupies one bit.
func NumBits(val uint64) int {
	if val == 0 {
		return 1
	}
	return bits.Len64(val)
}

// UintBE decodes b as an unsigned integer in Big-Endian byte order.
func UintBE(b []byte) uint64 {
	var val uint64
	for i := 0; i < len(b); i++ {
		val = val<<8 | uint64(b[i])
	}
	return val
}

// PutUintBE encodes val into b in Big-Endian byte order, filling all of b.
func PutUintBE(b []byte, val uint64) {
	for i := len(b) - 1; i >= 0; i-- {
		b[i] = byte(val)
		val >>= 8
	}
}

func IsPowerOfTwo(val uint64) bool {
	return val != 0 && val&(val-1) == 0
}
