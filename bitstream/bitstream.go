// Package bitstream provides bit-granularity reading and writing on top of
// byte-oriented streams, following the MSB pattern: the first bit of a byte
// is its most significant bit (mask 0x80), the eighth its least significant
// (mask 0x01).
//
// A BitReader wraps a byte Source and hands out one Bit at a time, buffering
// a snapshot of the source and refilling it as bits are consumed. A BitWriter
// wraps a byte Sink and queues pending bits, draining whole bytes once enough
// have accumulated and padding the trailing partial byte on flush.
package bitstream

// Bit is a single binary digit.
type Bit uint8

const (
	Zero Bit = 0
	One  Bit = 1
)

// integer covers the numeric kinds convertible to a Bit.
type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// FromInt converts a numeric value to a Bit. Values greater than zero map to
// One; zero and negative values map to Zero.
func FromInt[T integer](value T) Bit {
	if value > 0 {
		return One
	}
	return Zero
}

// FromBool converts a boolean to a Bit.
func FromBool(value bool) Bit {
	if value {
		return One
	}
	return Zero
}

func (b Bit) String() string {
	if b == One {
		return "1"
	}
	return "0"
}
