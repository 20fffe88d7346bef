package dispatch

import (
	"log/slog"
	"reflect"
)

// Unregister removes every registration matching the given filter and returns
// the number removed. An empty trigger, a nil fn, and a nil owner each act as
// wildcards; all three wildcarded removes everything. When a trigger name is
// given only its bucket is scanned.
//
// Callbacks are matched by code pointer, so a named function or a shared
// function value matches reliably; distinct closures over the same body do
// not have distinct identities, so precise closure removal goes through
// Remove with the Registration handle. Returns 0 on a closed registry.
//
// Example:
//
//	reg.Unregister("user.created", nil, nil) // everything on one trigger
//	reg.Unregister("", nil, session)         // everything owned by session
//	reg.Unregister("", nil, nil)             // everything
func (r *Registry) Unregister(trigger string, fn Callback, owner any) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return 0
	}

	var fnPtr uintptr
	if fn != nil {
		fnPtr = callbackPointer(fn)
	}

	matches := func(n *node) bool {
		if fn != nil && n.fnPtr != fnPtr {
			return false
		}
		if owner != nil && !sameOwner(n.owner, owner) {
			return false
		}
		return true
	}

	removed := 0
	b := r.store.buckets()

	if trigger != "" {
		removed = r.removeMatching(&b[bucketIndex(trigger, len(b))], trigger, matches)
	} else {
		for i := range b {
			removed += r.removeMatching(&b[i], "", matches)
		}
	}

	if removed > 0 {
		r.removed.Add(uint64(removed))
		r.logger.Debug("callbacks unregistered",
			slog.String("trigger", trigger),
			slog.Int("removed", removed))
	}
	return removed
}

// Remove unlinks exactly the registration behind the handle. It reports
// whether the registration was still live. Returns false on a closed
// registry or a nil handle.
func (r *Registry) Remove(reg *Registration) bool {
	if reg == nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return false
	}

	b := r.store.buckets()
	for cur := &b[bucketIndex(reg.Trigger, len(b))]; *cur != nil; cur = &(*cur).next {
		n := *cur
		if n.id != reg.ID {
			continue
		}

		*cur = n.next
		r.store.release(n)
		r.live--
		r.removed.Add(1)

		r.logger.Debug("callback removed",
			slog.String("trigger", reg.Trigger),
			slog.String("registration_id", reg.ID.String()))
		return true
	}
	return false
}

// removeMatching unlinks every node in the chain at head that matches the
// filter, releasing each slot. An empty trigger matches all names.
func (r *Registry) removeMatching(head **node, trigger string, matches func(*node) bool) int {
	removed := 0
	for cur := head; *cur != nil; {
		n := *cur
		if (trigger == "" || n.trigger == trigger) && matches(n) {
			*cur = n.next
			r.store.release(n)
			r.live--
			removed++
			continue
		}
		cur = &n.next
	}
	return removed
}

// sameOwner reports whether two owner references are the same value without
// ever panicking on uncomparable types. Values of different dynamic types
// never match; comparable types match by equality; funcs, maps, slices, and
// channels match by referenced pointer. Uncomparable non-reference values
// (e.g. a struct containing a map, passed by value) have no usable identity
// and never match.
func sameOwner(stored, query any) bool {
	if stored == nil {
		return false
	}

	st, qt := reflect.TypeOf(stored), reflect.TypeOf(query)
	if st != qt {
		return false
	}
	if st.Comparable() {
		return stored == query
	}

	switch reflect.ValueOf(stored).Kind() {
	case reflect.Func, reflect.Map, reflect.Slice, reflect.Chan:
		return reflect.ValueOf(stored).Pointer() == reflect.ValueOf(query).Pointer()
	}
	return false
}
