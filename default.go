package dispatch

import "sync/atomic"

// The package-level functions mirror the Registry methods against a
// process-wide default instance, for programs that want dispatch as an
// ambient facility rather than a wired dependency.

var defaultRegistry atomic.Pointer[Registry]

// Default returns the process-wide registry, creating it on first use with
// New's defaults.
func Default() *Registry {
	if r := defaultRegistry.Load(); r != nil {
		return r
	}

	r := New()
	if defaultRegistry.CompareAndSwap(nil, r) {
		return r
	}
	return defaultRegistry.Load()
}

// SetDefault replaces the process-wide registry. A nil registry is ignored.
// Registrations held by the previous default are not carried over.
func SetDefault(r *Registry) {
	if r != nil {
		defaultRegistry.Store(r)
	}
}

// Register binds a callback on the default registry.
func Register(trigger string, priority Priority, fn Callback, owner any) (*Registration, error) {
	return Default().Register(trigger, priority, fn, owner)
}

// RegisterOnce binds a one-shot callback on the default registry.
func RegisterOnce(trigger string, priority Priority, fn Callback, owner any) (*Registration, error) {
	return Default().RegisterOnce(trigger, priority, fn, owner)
}

// Unregister removes matching registrations from the default registry.
func Unregister(trigger string, fn Callback, owner any) int {
	return Default().Unregister(trigger, fn, owner)
}

// Trigger fires a trigger on the default registry.
func Trigger(name string, data any) {
	Default().Trigger(name, data)
}

// TriggerDeferred enqueues a deferred firing on the default registry.
// The default registry is built without a deferred queue; use SetDefault
// with a registry constructed with WithDeferredQueue to enable it.
func TriggerDeferred(name string, data any) error {
	return Default().TriggerDeferred(name, data)
}

// Pump drains the default registry's deferred queue.
func Pump() int {
	return Default().Pump()
}

// Count returns the default registry's live registration count.
func Count() int {
	return Default().Count()
}

// Close tears down the default registry. A later Register re-arms it.
func Close() {
	Default().Close()
}
