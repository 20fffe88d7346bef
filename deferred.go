package dispatch

import "log/slog"

// deferredEvent is one queued (trigger, data) pair awaiting a pump.
type deferredEvent struct {
	trigger string
	data    any
}

// TriggerDeferred enqueues a firing for later delivery by Pump instead of
// dispatching it in place. It never blocks, never locks, and never logs,
// which makes it the one registry operation callable from a restricted
// context: a latency-critical producer goroutine, or a callback running
// inside a Trigger on this same registry.
//
// The queue is single-producer/single-consumer: at most one goroutine may
// call TriggerDeferred concurrently, and at most one may call Pump.
//
// Returns ErrDeferredDisabled when the registry was built without
// WithDeferredQueue, ErrDeferredFull when the queue has no free slot (the
// event is dropped, never delivered late).
func (r *Registry) TriggerDeferred(name string, data any) error {
	if r.deferred == nil {
		return ErrDeferredDisabled
	}

	if !r.deferred.Enqueue(deferredEvent{trigger: name, data: data}) {
		r.deferredDropped.Add(1)
		return ErrDeferredFull
	}

	r.deferredEnqueued.Add(1)
	return nil
}

// Pump drains the deferred queue, firing each queued event through the
// ordinary Trigger path with identical ordering and Stop semantics. It keeps
// draining until the queue reports empty, so events enqueued while the pump
// runs are delivered by the same call. Returns the number of events drained.
//
// Pump is the queue's single consumer; calling it from more than one
// goroutine concurrently is a caller error. Events pumped on a closed
// registry are consumed without delivery. Returns 0 when the deferred queue
// is not enabled.
func (r *Registry) Pump() int {
	if r.deferred == nil {
		return 0
	}

	drained := 0
	for {
		evt, ok := r.deferred.Dequeue()
		if !ok {
			break
		}
		r.Trigger(evt.trigger, evt.data)
		drained++
	}

	if drained > 0 {
		r.deferredDrained.Add(uint64(drained))
		r.logger.Debug("deferred queue pumped", slog.Int("drained", drained))
	}
	return drained
}
