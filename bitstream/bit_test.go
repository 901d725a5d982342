package bitstream_test

import (
	"testing"

	"github.com/einzigartigerName/bitwise-io/bitstream"
	"github.com/stretchr/testify/require"
)

func TestFromInt(t *testing.T) {
	req := require.New(t)

	req.Equal(Zero, bitstream.FromInt(uint8(0)))
	req.Equal(Zero, bitstream.FromInt(uint16(0)))
	req.Equal(Zero, bitstream.FromInt(uint32(0)))
	req.Equal(Zero, bitstream.FromInt(uint64(0)))
	req.Equal(Zero, bitstream.FromInt(uint(0)))
	req.Equal(Zero, bitstream.FromInt(uintptr(0)))
	req.Equal(Zero, bitstream.FromInt(int8(0)))
	req.Equal(Zero, bitstream.FromInt(int16(0)))
	req.Equal(Zero, bitstream.FromInt(int32(0)))
	req.Equal(Zero, bitstream.FromInt(int64(0)))
	req.Equal(Zero, bitstream.FromInt(0))

	req.Equal(One, bitstream.FromInt(uint8(1)))
	req.Equal(One, bitstream.FromInt(uint16(0xFF00)))
	req.Equal(One, bitstream.FromInt(uint32(7)))
	req.Equal(One, bitstream.FromInt(uint64(1<<63)))
	req.Equal(One, bitstream.FromInt(uint(42)))
	req.Equal(One, bitstream.FromInt(uintptr(1)))
	req.Equal(One, bitstream.FromInt(int8(127)))
	req.Equal(One, bitstream.FromInt(int16(1)))
	req.Equal(One, bitstream.FromInt(int32(1)))
	req.Equal(One, bitstream.FromInt(int64(1)))
	req.Equal(One, bitstream.FromInt(1))

	// Negative values map to Zero.
	req.Equal(Zero, bitstream.FromInt(int8(-1)))
	req.Equal(Zero, bitstream.FromInt(int16(-100)))
	req.Equal(Zero, bitstream.FromInt(int32(-1)))
	req.Equal(Zero, bitstream.FromInt(int64(-1)))
	req.Equal(Zero, bitstream.FromInt(-7))
}

func TestFromBool(t *testing.T) {
	req := require.New(t)

	req.Equal(Zero, bitstream.FromBool(false))
	req.Equal(One, bitstream.FromBool(true))
}

func TestBitString(t *testing.T) {
	req := require.New(t)

	req.Equal("0", Zero.String())
	req.Equal("1", One.String())
}

func TestBitOrdering(t *testing.T) {
	req := require.New(t)

	req.True(Zero < One)
}
