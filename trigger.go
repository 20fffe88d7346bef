package dispatch

// Trigger fires the named trigger, synchronously invoking every callback
// registered under that exact name in descending priority order
// (registration order among equals). Each callback receives its registration
// owner and the given data. One-shot callbacks are unlinked immediately after
// they fire. A callback returning Stop halts delivery of the remaining
// callbacks for this firing; it has no effect on other trigger names, even
// ones sharing a hash bucket.
//
// Delivery reports nothing to the caller: a trigger with no registrations is
// a silent no-op, as is a trigger on a closed registry.
//
// Callbacks run to completion on the calling goroutine, holding the registry
// lock when thread safety is on. A callback must not call Register,
// Unregister, Remove, or Trigger on the same registry; TriggerDeferred is the
// one operation safe to call from inside a callback.
func (r *Registry) Trigger(name string, data any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}

	r.triggersFired.Add(1)

	b := r.store.buckets()
	for cur := &b[bucketIndex(name, len(b))]; *cur != nil; {
		n := *cur
		if n.trigger != name {
			cur = &n.next
			continue
		}

		act := n.fn(n.owner, data)
		r.callbacksInvoked.Add(1)

		if n.once {
			// Unlink first so the walk resumes at the replacement node.
			*cur = n.next
			r.store.release(n)
			r.live--
			r.removed.Add(1)

			if act == Stop {
				break
			}
			continue
		}

		if act == Stop {
			break
		}
		cur = &n.next
	}
}
