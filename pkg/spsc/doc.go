// Package spsc provides a bounded single-producer/single-consumer FIFO queue
// built on atomic index counters.
//
// The queue never blocks, never locks, and never grows: Enqueue reports false
// when the queue is full, Dequeue reports false when it is empty. This makes
// it suitable for hand-off between a restricted execution context (a signal
// handler, a callback invoked from foreign code, a latency-critical producer
// goroutine) and a normal consumer context that drains it.
//
// # Discipline
//
// Exactly one goroutine may call Enqueue and exactly one goroutine may call
// Dequeue at any given time. The two sides may run concurrently with each
// other; multiple producers or multiple consumers require external
// coordination and are not supported by the queue itself.
//
// # Usage
//
//	q := spsc.New[string](64)
//
//	// Producer side:
//	if !q.Enqueue("event") {
//	    // queue full, value dropped
//	}
//
//	// Consumer side:
//	for {
//	    v, ok := q.Dequeue()
//	    if !ok {
//	        break
//	    }
//	    process(v)
//	}
//
// Len reports an instantaneous size that may be stale by the time it is read
// when the other side is active. Reset is not safe for concurrent use and is
// intended for teardown between runs.
package spsc
