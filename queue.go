// Package ringqueue implements a generic FIFO queue on top of a growable ring buffer.
//
// The queue is not safe for concurrent use. Callers sharing an instance between
// goroutines must guard it themselves (e.g. with a sync.Mutex around every call).
package ringqueue

import (
	"iter"
	"slices"
)

// DefaultCapacity is the capacity used by NewDefault and the floor used by NewFrom.
const DefaultCapacity = 10

// Queue is a first-in, first-out collection backed by a ring buffer.
//
// Live elements occupy buf[head], buf[(head+1)%len(buf)], ... for size slots.
// head is kept reduced modulo len(buf) and grow linearizes the live range,
// so indices never overflow no matter how long the queue lives.
type Queue[T any] struct {
	buf        []T
	head, tail int
	size       int
}

// New returns an empty queue able to hold capacity elements before growing.
func New[T any](capacity int) (*Queue[T], error) {
	if capacity <= 0 {
		return nil, ErrNonPositiveCapacity
	}
	return &Queue[T]{buf: make([]T, capacity)}, nil
}

// NewDefault returns an empty queue with DefaultCapacity.
func NewDefault[T any]() *Queue[T] {
	return &Queue[T]{buf: make([]T, DefaultCapacity)}
}

// NewFrom returns a queue holding the elements of source in order.
// The source is materialized once, then the queue is sized to
// max(len(source), DefaultCapacity) so filling it never triggers a grow.
func NewFrom[T any](source iter.Seq[T]) (*Queue[T], error) {
	if source == nil {
		return nil, ErrNilSource
	}

	items := slices.Collect(source)
	q := &Queue[T]{buf: make([]T, max(len(items), DefaultCapacity))}
	for _, v := range items {
		q.Enqueue(v)
	}
	return q, nil
}

// Capacity returns the number of slots currently allocated.
func (q *Queue[T]) Capacity() int {
	return len(q.buf)
}

// Len returns the number of live elements.
func (q *Queue[T]) Len() int {
	return q.size
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.size == 0
}

// Enqueue appends v at the tail, doubling the buffer when it is full.
func (q *Queue[T]) Enqueue(v T) {
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[q.tail] = v
	q.tail = (q.tail + 1) % len(q.buf)
	q.size++
}

// Dequeue removes and returns the element at the head.
// The vacated slot keeps its value until it is overwritten or Clear is called.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	v := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return v, nil
}

// Peek returns the element at the head without removing it.
func (q *Queue[T]) Peek() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return q.buf[q.head], nil
}

// GetElement returns the slot index positions after the head.
//
// Only negative indices are rejected. An index at or past Len reads whatever the
// slot holds: a zero value, or a stale element left behind by Dequeue.
func (q *Queue[T]) GetElement(index int) (T, error) {
	if index < 0 {
		var zero T
		return zero, ErrNegativeIndex
	}
	return q.buf[(q.head+index%len(q.buf))%len(q.buf)], nil
}

// Clear zeroes every live slot and empties the queue. Capacity is kept.
func (q *Queue[T]) Clear() {
	if q.size > 0 {
		if end := q.head + q.size; end <= len(q.buf) {
			clear(q.buf[q.head:end])
		} else {
			clear(q.buf[q.head:])
			clear(q.buf[:end-len(q.buf)])
		}
	}
	q.head, q.tail, q.size = 0, 0, 0
}

// grow adds the current buffer length to the capacity and copies the live
// elements to the front of the new buffer in logical order.
func (q *Queue[T]) grow() {
	next := make([]T, len(q.buf)+len(q.buf))
	n := copy(next, q.buf[q.head:])
	copy(next[n:], q.buf[:q.head])
	q.buf = next
	q.head = 0
	q.tail = q.size
}
