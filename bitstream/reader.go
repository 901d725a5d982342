package bitstream

import (
	"io"
)

// BitReader reads single bits from a Source, MSB first.
//
// The reader owns a snapshot of the most recently fetched source bytes and a
// bit position within it. The snapshot is replaced wholesale on each refill;
// the source is told to advance past the exhausted bytes and asked for a new
// view, which is copied into owned storage.
type BitReader struct {
	src      Source
	buf      []byte
	pos      int
	initRead bool
}

// NewReader returns a new BitReader consuming bits from src.
//
// Construction warms up the source with one Fill call so that an I/O failure
// surfaces here rather than on the first Read. The warm-up view is left
// unconsumed and the snapshot starts empty: IsEmpty reports true on a fresh
// reader regardless of the source content, and the first Read performs the
// initial refill, fetching the same bytes again without loss.
func NewReader(src Source) (*BitReader, error) {
	if _, err := src.Fill(); err != nil {
		return nil, err
	}
	return &BitReader{src: src}, nil
}

// Read returns the next bit from the stream. It returns io.EOF once the
// source is exhausted; any other error comes verbatim from the source.
func (r *BitReader) Read() (Bit, error) {
	if !r.initRead {
		if err := r.refill(); err != nil {
			return Zero, err
		}
		r.initRead = true
	}

	// The position may rest at the exact snapshot boundary after the
	// previous Read; refill before indexing past the snapshot.
	if r.pos == len(r.buf)*8 && r.pos > 0 {
		if err := r.refill(); err != nil {
			return Zero, err
		}
	}

	if len(r.buf) == 0 {
		return Zero, io.EOF
	}

	mask := byte(0x80) >> (r.pos % 8)
	bit := FromInt(r.buf[r.pos/8] & mask)
	r.pos++

	return bit, nil
}

// ReadMulti returns the next n bits in stream order. It fails on the first
// underlying failure, discarding any bits already extracted in this call.
func (r *BitReader) ReadMulti(n int) ([]Bit, error) {
	out := make([]Bit, 0, n)
	for i := 0; i < n; i++ {
		bit, err := r.Read()
		if err != nil {
			return nil, err
		}
		out = append(out, bit)
	}
	return out, nil
}

// IsEmpty reports whether the current snapshot is empty. It is true on a
// freshly constructed reader, before any Read forced a refill.
func (r *BitReader) IsEmpty() bool {
	return len(r.buf) == 0
}

// BufLen returns the current snapshot length in bytes.
func (r *BitReader) BufLen() int {
	return len(r.buf)
}

// refill discards the exhausted snapshot, advances the source past it and
// fetches a fresh one. A zero-length snapshot after refill means end of
// stream.
func (r *BitReader) refill() error {
	r.src.Consume(len(r.buf))
	r.buf = nil
	r.pos = 0

	view, err := r.src.Fill()
	if err != nil {
		return err
	}

	r.buf = make([]byte, len(view))
	copy(r.buf, view)

	return nil
}
