package dispatch

import (
	"log/slog"

	"github.com/google/uuid"
)

// Register binds fn to the named trigger. Higher priorities fire earlier;
// equal priorities fire in registration order. The owner reference is passed
// back to fn on every firing and can be matched by Unregister; nil is valid
// and means "no owner".
//
// Register re-arms a closed registry. A failed Register leaves the registry
// unchanged.
//
// Example:
//
//	reg.Register("conn.lost", dispatch.PriorityHigh,
//	    func(owner, data any) dispatch.Action {
//	        owner.(*Reconnector).Schedule(data.(error))
//	        return dispatch.Continue
//	    }, reconnector)
func (r *Registry) Register(trigger string, priority Priority, fn Callback, owner any) (*Registration, error) {
	return r.register(trigger, priority, fn, owner, false)
}

// RegisterOnce is Register for a callback that is removed immediately after
// its first firing.
func (r *Registry) RegisterOnce(trigger string, priority Priority, fn Callback, owner any) (*Registration, error) {
	return r.register(trigger, priority, fn, owner, true)
}

func (r *Registry) register(trigger string, priority Priority, fn Callback, owner any, once bool) (*Registration, error) {
	if trigger == "" {
		return nil, ErrEmptyTrigger
	}
	if fn == nil {
		return nil, ErrNilCallback
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Storage was already reset by Close; registering again re-arms the
	// registry.
	r.closed = false

	r.store.grow(r.live)

	n, err := r.store.acquire(trigger)
	if err != nil {
		return nil, err
	}

	n.id = uuid.New()
	n.trigger = trigger
	n.priority = priority
	n.once = once
	n.fn = fn
	n.fnPtr = callbackPointer(fn)
	n.owner = owner

	// Insert before the first node that shares the trigger name and has
	// strictly lower priority. Walking past equal priorities keeps
	// registration order among them.
	b := r.store.buckets()
	cur := &b[bucketIndex(trigger, len(b))]
	for *cur != nil {
		if (*cur).trigger == trigger && (*cur).priority < priority {
			break
		}
		cur = &(*cur).next
	}
	n.next = *cur
	*cur = n

	r.live++
	r.registered.Add(1)

	r.logger.Debug("callback registered",
		slog.String("trigger", trigger),
		slog.Int("priority", int(priority)),
		slog.Bool("once", once),
		slog.String("registration_id", n.id.String()))

	return &Registration{
		ID:       n.id,
		Trigger:  trigger,
		Priority: priority,
		Once:     once,
	}, nil
}
