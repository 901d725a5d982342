package shared

import (
	"io"

	"github.com/einzigartigerName/bitwise-io/bitstream"
)

// GranSpecificReader provides a wrapper for io.Reader to allow granularity-specific
// access to the stream according to the defined item size, where bit-granular and
// byte-granular sizes are supported via a specialized code path.
type GranSpecificReader struct {
	ReadNext       func() ([]byte, error)
	ReadNextUintBE func() (uint64, error)
}

func NewGranSpecificReader(rd io.Reader, itemBitSize uint) (*GranSpecificReader, error) {
	gsReader := new(GranSpecificReader)
	if itemBitSize%8 == 0 {
		// Byte-granular reader is using the underlying reader directly.
		gsReader.ReadNext = func() ([]byte, error) {
			b := make([]byte, itemBitSize/8)
			_, err := io.ReadFull(rd, b)
			if err != nil {
				return nil, err
			}
			return b, nil
		}
		gsReader.ReadNextUintBE = func() (uint64, error) {
			b, err := gsReader.ReadNext()
			if err != nil {
				return 0, err
			}
			return UintBE(b), nil
		}
	} else {
		// Bit-granular reader is using the bitstream core as a wrapper for
		// the underlying reader.
		br, err := bitstream.NewReader(bitstream.NewSource(rd))
		if err != nil {
			return nil, err
		}
		gsReader.ReadNext = func() ([]byte, error) {
			bits, err := br.ReadMulti(int(itemBitSize))
			if err != nil {
				return nil, err
			}
			return packBitsBE(bits), nil
		}
		gsReader.ReadNextUintBE = func() (uint64, error) {
			b, err := gsReader.ReadNext()
			if err != nil {
				return 0, err
			}
			return UintBE(b), nil
		}
	}

	return gsReader, nil
}

// GranSpecificWriter provides a wrapper for io.Writer to allow granularity-specific
// access to the stream according to the defined item size, where bit-granular and
// byte-granular sizes are supported via a specialized code path.
type GranSpecificWriter struct {
	Write       func([]byte) error
	WriteUintBE func(uint64) error
	Flush       func() error
}

func NewGranSpecificWriter(w io.Writer, itemBitSize uint) *GranSpecificWriter {
	gsWriter := new(GranSpecificWriter)
	if itemBitSize%8 == 0 {
		// Byte-granular writer is using the underlying writer directly.
		gsWriter.Write = func(b []byte) error {
			if _, err := w.Write(b); err != nil {
				return err
			}
			return nil
		}
		gsWriter.WriteUintBE = func(v uint64) error {
			b := make([]byte, itemBitSize/8)
			PutUintBE(b, v)
			return gsWriter.Write(b)
		}
		gsWriter.Flush = func() error { return nil }
	} else {
		// Bit-granular writer is using the bitstream core as a wrapper for
		// the underlying writer, padding with Zero bits on flush.
		bw := bitstream.NewWriter(bitstream.NewSink(w), true)
		gsWriter.Write = func(b []byte) error {
			return writeBitsBE(bw, b, itemBitSize)
		}
		gsWriter.WriteUintBE = func(v uint64) error {
			b := make([]byte, (itemBitSize+7)/8)
			PutUintBE(b, v)
			return gsWriter.Write(b)
		}
		gsWriter.Flush = func() error {
			return bw.WriteBuf()
		}
	}

	return gsWriter
}

// packBitsBE assembles bits into the minimal Big-Endian byte sequence holding
// them, aligned to the value's low end: the last bit read becomes the least
// significant bit of the last byte.
func packBitsBE(bits []bitstream.Bit) []byte {
	size := (len(bits) + 7) / 8
	out := make([]byte, size)

	skip := size*8 - len(bits)
	for i, bit := range bits {
		if bit == bitstream.One {
			idx := skip + i
			out[idx/8] |= 0x80 >> (idx % 8)
		}
	}
	return out
}

// writeBitsBE writes the low numBits of the Big-Endian byte sequence b.
// Missing leading bits are written as Zero.
func writeBitsBE(bw *bitstream.BitWriter, b []byte, numBits uint) error {
	total := uint(len(b)) * 8
	for numBits > total {
		if err := bw.Write(bitstream.Zero); err != nil {
			return err
		}
		numBits--
	}
	for i := total - numBits; i < total; i++ {
		mask := byte(0x80) >> (i % 8)
		if err := bw.Write(bitstream.FromInt(b[i/8] & mask)); err != nil {
			return err
		}
	}
	return nil
}
