package ringqueue

import "iter"

// All returns a sequence over Capacity slots starting at the head, not just the
// Len live ones: slots past the live range yield zero or stale values, exactly as
// GetElement does for out-of-range indices.
//
// The sequence is lazy. Each step re-reads the queue, so mutations made while
// ranging are observed by the following steps, and Capacity is checked again
// before every element. Ranging again starts over from the current head.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < q.Capacity(); i++ {
			v, _ := q.GetElement(i)
			if !yield(v) {
				return
			}
		}
	}
}

// Iterator is an explicit cursor over the same positions All yields.
type Iterator[T any] struct {
	q   *Queue[T]
	pos int // -1 before the first Next
	cur T
}

// Iterator returns a cursor positioned before the first slot.
func (q *Queue[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{q: q, pos: -1}
}

// Next advances the cursor and reports whether it landed on a slot.
// Running off the end resets the cursor, so the next call starts over.
func (it *Iterator[T]) Next() bool {
	it.pos++
	if it.pos >= it.q.Capacity() {
		it.Reset()
		return false
	}
	it.cur, _ = it.q.GetElement(it.pos)
	return true
}

// Value returns the element the cursor is on.
func (it *Iterator[T]) Value() (T, error) {
	if it.pos < 0 {
		var zero T
		return zero, ErrIteratorState
	}
	return it.cur, nil
}

// Reset moves the cursor back before the first slot.
func (it *Iterator[T]) Reset() {
	var zero T
	it.pos, it.cur = -1, zero
}
