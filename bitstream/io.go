package bitstream

import (
	"bufio"
	"io"
)

// DefaultBufSize is the window size, in bytes, of the buffered Source adapter.
const DefaultBufSize = 1024

// Source is the byte stream a BitReader consumes.
//
// Fill returns a view of the bytes currently available without consuming
// them; the view is only valid until the next call to Consume. An empty view
// with a nil error signals the end of the stream. Consume advances the source
// past n bytes previously returned by Fill; n must not exceed the length of
// the last view.
type Source interface {
	Fill() ([]byte, error)
	Consume(n int)
}

// Sink is the byte stream a BitWriter produces into. A *bufio.Writer
// satisfies it directly.
type Sink interface {
	io.Writer
	Flush() error
}

// NewSource returns a Source reading from r through a window of
// DefaultBufSize bytes.
func NewSource(r io.Reader) Source {
	return NewSourceSize(r, DefaultBufSize)
}

// NewSourceSize returns a Source reading from r through a window of the given
// size in bytes.
func NewSourceSize(r io.Reader, size int) Source {
	if size < 1 {
		size = DefaultBufSize
	}
	return &bufferedSource{r: r, buf: make([]byte, size)}
}

// NewSink returns a Sink delivering to w through a buffer.
func NewSink(w io.Writer) Sink {
	return bufio.NewWriter(w)
}

type bufferedSource struct {
	r     io.Reader
	buf   []byte
	start int
	end   int
	err   error
}

func (s *bufferedSource) Fill() ([]byte, error) {
	if s.start < s.end {
		return s.buf[s.start:s.end], nil
	}

	s.start = 0
	s.end = 0
	for s.err == nil {
		var n int
		n, s.err = s.r.Read(s.buf)
		if n > 0 {
			// Defer the error, if any, until the chunk is consumed; io.EOF
			// then turns into the empty view.
			s.end = n
			return s.buf[:n], nil
		}
	}

	if s.err == io.EOF {
		return nil, nil
	}
	return nil, s.err
}

func (s *bufferedSource) Consume(n int) {
	s.start += n
	if s.start > s.end {
		s.start = s.end
	}
}
