package shared

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsPowerOfTwo(t *testing.T) {
	r := require.New(t)

	r.False(IsPowerOfTwo(0))
	r.False(IsPowerOfTwo(3))
	r.False(IsPowerOfTwo(5))
	r.False(IsPowerOfTwo(6))
	r.False(IsPowerOfTwo(7))
	r.False(IsPowerOfTwo(9))

	r.True(IsPowerOfTwo(1))
	r.True(IsPowerOfTwo(2))
	r.True(IsPowerOfTwo(4))
	r.True(IsPowerOfTwo(8))
	r.True(IsPowerOfTwo(16))
	r.True(IsPowerOfTwo(32))
	r.True(IsPowerOfTwo(64))
}

func TestNumBits(t *testing.T) {
	r := require.New(t)

	r.Equal(1, NumBits(0))
	r.Equal(1, NumBits(1))
	r.Equal(2, NumBits(2))
	r.Equal(2, NumBits(3))
	r.Equal(3, NumBits(4))
	r.Equal(8, NumBits(255))
	r.Equal(9, NumBits(256))
	r.Equal(64, NumBits(1<<63))
}

func TestUintBE(t *testing.T) {
	r := require.New(t)

	r.Equal(uint64(0x0102), UintBE([]byte{0x01, 0x02}))
	r.Equal(uint64(0xFF), UintBE([]byte{0xFF}))

	b := make([]byte, 3)
	PutUintBE(b, 0x010203)
	r.Equal([]byte{0x01, 0x02, 0x03}, b)
	r.Equal(uint64(0x010203), UintBE(b))
}
