package bitstream

// DefaultCapacity is the initial pending-bit queue capacity of a BitWriter,
// in bytes. It also sets the automatic flush threshold: once the queue holds
// DefaultCapacity*8 bits, the next Write flushes before appending.
const DefaultCapacity = 1024

const flushThreshold = DefaultCapacity * 8

// BitWriter writes single bits to a Sink, MSB first.
//
// Bits accumulate in a pending queue and are drained to the sink in whole
// bytes, where the first bit written becomes the most significant bit of the
// byte. An incomplete trailing byte is padded on flush according to the pad
// policy.
type BitWriter struct {
	sink    Sink
	buf     bitQueue
	padZero bool
}

// NewWriter returns a new BitWriter delivering to sink, with the default
// queue capacity. If padZero is true an incomplete trailing byte is padded
// with Zero bits on flush, otherwise with One bits.
func NewWriter(sink Sink, padZero bool) *BitWriter {
	return NewWriterCapacity(DefaultCapacity, sink, padZero)
}

// NewWriterCapacity returns a new BitWriter with an initial queue capacity of
// the given number of bytes. The capacity only pre-sizes the queue; the
// automatic flush threshold stays fixed.
func NewWriterCapacity(capacity int, sink Sink, padZero bool) *BitWriter {
	return &BitWriter{
		sink:    sink,
		buf:     newBitQueue(capacity * 8),
		padZero: padZero,
	}
}

// Write appends a single bit to the pending queue. If the queue is at the
// flush threshold, the queued bits are flushed first and the bit is appended
// only after a successful flush; on flush failure the bit is not appended and
// the sink error is returned.
func (w *BitWriter) Write(bit Bit) error {
	if w.buf.Len() == flushThreshold {
		if err := w.WriteBuf(); err != nil {
			return err
		}
	}
	w.buf.PushBack(bit)
	return nil
}

// WriteBits appends the given bits in order, stopping at the first failure.
// Bits appended before the failure stay committed to the queue.
func (w *BitWriter) WriteBits(bits []Bit) error {
	for _, bit := range bits {
		if err := w.Write(bit); err != nil {
			return err
		}
	}
	return nil
}

// WriteBuf pads the queue to a whole number of bytes, drains it into the sink
// and flushes the sink. On failure the already-drained bytes are lost from
// the writer; the caller must treat the error as fatal for the stream.
func (w *BitWriter) WriteBuf() error {
	w.pad()

	bytes := w.drain()
	if _, err := w.sink.Write(bytes); err != nil {
		return err
	}
	return w.sink.Flush()
}

// DiscardNonByte removes the most recently queued bits until the queue length
// is a multiple of 8. The removed bits are never written.
func (w *BitWriter) DiscardNonByte() {
	for w.buf.Len()%8 != 0 {
		w.buf.PopBack()
	}
}

// IsEmpty reports whether the pending queue is empty.
func (w *BitWriter) IsEmpty() bool {
	return w.buf.Len() == 0
}

// BufLen returns the pending queue length in bits.
func (w *BitWriter) BufLen() int {
	return w.buf.Len()
}

// Close performs one final WriteBuf. Deferring Close is the best-effort
// shutdown path; callers that need to observe a flush failure must call
// WriteBuf (or Close) explicitly and check the result.
func (w *BitWriter) Close() error {
	return w.WriteBuf()
}

// pad appends pad bits until the queue length is a multiple of 8. Padding
// only ever adds bits.
func (w *BitWriter) pad() {
	padBit := One
	if w.padZero {
		padBit = Zero
	}

	for w.buf.Len()%8 != 0 {
		w.buf.PushBack(padBit)
	}
}

// drain removes all complete bytes from the queue, assembling each group of 8
// bits first-bit-as-MSB.
func (w *BitWriter) drain() []byte {
	bytes := make([]byte, 0, w.buf.Len()/8)

	for w.buf.Len() >= 8 {
		var b byte
		for i := 0; i < 8; i++ {
			b = b<<1 | byte(w.buf.PopFront())
		}
		bytes = append(bytes, b)
	}

	return bytes
}
