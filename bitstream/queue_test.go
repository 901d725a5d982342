package bitstream

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitQueue(t *testing.T) {
	req := require.New(t)

	q := newBitQueue(8)
	req.Equal(0, q.Len())

	for i := 0; i < 20; i++ {
		q.PushBack(FromInt(i % 2))
	}
	req.Equal(20, q.Len())

	for i := 0; i < 20; i++ {
		req.Equal(FromInt(i%2), q.PopFront())
	}
	req.Equal(0, q.Len())
}

func TestBitQueueWrapAround(t *testing.T) {
	req := require.New(t)

	q := newBitQueue(8)

	// Shift the head off zero, then force wrapping pushes.
	for i := 0; i < 6; i++ {
		q.PushBack(Zero)
	}
	for i := 0; i < 4; i++ {
		q.PopFront()
	}
	for i := 0; i < 6; i++ {
		q.PushBack(One)
	}

	req.Equal(8, q.Len())
	req.Equal(Zero, q.PopFront())
	req.Equal(Zero, q.PopFront())
	for i := 0; i < 6; i++ {
		req.Equal(One, q.PopFront())
	}
}

func TestBitQueuePopBack(t *testing.T) {
	req := require.New(t)

	q := newBitQueue(8)
	q.PushBack(One)
	q.PushBack(Zero)
	q.PushBack(One)

	req.Equal(One, q.PopBack())
	req.Equal(Zero, q.PopBack())
	req.Equal(1, q.Len())
	req.Equal(One, q.PopFront())
}
