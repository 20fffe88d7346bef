package dispatch

// Stats provides observability metrics for monitoring and debugging.
// Counters are cumulative for the life of the Registry object; Close resets
// Live but not the counters.
type Stats struct {
	Live     int // Current number of live registrations
	Capacity int // Registration slot capacity, 0 when unbounded
	Buckets  int // Current bucket count of the trigger index

	Registered       uint64 // Total successful registrations
	Removed          uint64 // Total removals (unregister, one-shot expiry, Close)
	TriggersFired    uint64 // Total Trigger calls that reached dispatch
	CallbacksInvoked uint64 // Total callback invocations
	DeferredEnqueued uint64 // Total deferred events accepted
	DeferredDropped  uint64 // Total deferred events rejected on a full queue
	DeferredDrained  uint64 // Total deferred events consumed by Pump
}

// Stats returns current registry statistics for observability and monitoring.
// Safe to call concurrently with registry operations.
func (r *Registry) Stats() Stats {
	r.mu.Lock()
	live := r.live
	capacity := r.store.capacity()
	buckets := len(r.store.buckets())
	r.mu.Unlock()

	return Stats{
		Live:             live,
		Capacity:         capacity,
		Buckets:          buckets,
		Registered:       r.registered.Load(),
		Removed:          r.removed.Load(),
		TriggersFired:    r.triggersFired.Load(),
		CallbacksInvoked: r.callbacksInvoked.Load(),
		DeferredEnqueued: r.deferredEnqueued.Load(),
		DeferredDropped:  r.deferredDropped.Load(),
		DeferredDrained:  r.deferredDrained.Load(),
	}
}
