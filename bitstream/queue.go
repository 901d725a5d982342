package bitstream

// bitQueue is a ring buffer of pending bits with O(1) append-at-tail,
// remove-from-head and remove-from-tail.
type bitQueue struct {
	buf  []Bit
	head int
	n    int
}

func newBitQueue(capacity int) bitQueue {
	if capacity < 8 {
		capacity = 8
	}
	return bitQueue{buf: make([]Bit, capacity)}
}

func (q *bitQueue) Len() int {
	return q.n
}

func (q *bitQueue) PushBack(bit Bit) {
	if q.n == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.n)%len(q.buf)] = bit
	q.n++
}

// PopFront removes and returns the oldest bit. The queue must not be empty.
func (q *bitQueue) PopFront() Bit {
	bit := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.n--
	return bit
}

// PopBack removes and returns the most recently pushed bit. The queue must
// not be empty.
func (q *bitQueue) PopBack() Bit {
	q.n--
	return q.buf[(q.head+q.n)%len(q.buf)]
}

func (q *bitQueue) grow() {
	buf := make([]Bit, 2*len(q.buf))
	for i := 0; i < q.n; i++ {
		buf[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = buf
	q.head = 0
}
