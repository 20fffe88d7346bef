package spsc

import "sync/atomic"

// Queue is a bounded single-producer/single-consumer FIFO queue.
//
// Values are stored in a power-of-two ring; head counts enqueued values and
// tail counts dequeued values, both monotonically. The difference between the
// two is the current queue length, so full and empty states are unambiguous
// without reserving a slot. Atomic loads and stores on the counters order the
// slot accesses between the producer and consumer goroutines.
//
// The zero value is not usable; construct with New.
type Queue[T any] struct {
	buf  []T
	mask uint64
	size uint64

	// head is advanced only by the producer, tail only by the consumer.
	head atomic.Uint64
	tail atomic.Uint64
}

// New creates a queue holding up to capacity values.
// Panics if capacity is less than 1.
func New[T any](capacity int) *Queue[T] {
	if capacity < 1 {
		panic("spsc: capacity must be at least 1")
	}

	// Round the ring up to a power of two so slot positions reduce to a mask.
	ring := uint64(1)
	for ring < uint64(capacity) {
		ring <<= 1
	}

	return &Queue[T]{
		buf:  make([]T, ring),
		mask: ring - 1,
		size: uint64(capacity),
	}
}

// Enqueue appends v to the queue. It returns false when the queue is full.
// Must be called from a single producer goroutine.
func (q *Queue[T]) Enqueue(v T) bool {
	head := q.head.Load()
	if head-q.tail.Load() >= q.size {
		return false
	}

	q.buf[head&q.mask] = v
	q.head.Store(head + 1)
	return true
}

// Dequeue removes and returns the oldest value. It returns false when the
// queue is empty. Must be called from a single consumer goroutine.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T

	tail := q.tail.Load()
	if tail == q.head.Load() {
		return zero, false
	}

	v := q.buf[tail&q.mask]
	// Release the slot's reference before publishing the new tail.
	q.buf[tail&q.mask] = zero
	q.tail.Store(tail + 1)
	return v, true
}

// Len returns the number of queued values. The result may be stale as soon as
// it is returned when the other side is active.
func (q *Queue[T]) Len() int {
	tail := q.tail.Load()
	return int(q.head.Load() - tail)
}

// Cap returns the capacity the queue was created with.
func (q *Queue[T]) Cap() int {
	return int(q.size)
}

// Reset empties the queue and releases all held references.
// Not safe for concurrent use with Enqueue or Dequeue.
func (q *Queue[T]) Reset() {
	clear(q.buf)
	q.head.Store(0)
	q.tail.Store(0)
}
