// Package dispatch provides a named-trigger callback registry for
// synchronous, in-process event delivery. Producers fire a string-named
// trigger with an opaque data reference; every callback registered under that
// exact name runs on the calling goroutine, in priority order, before the
// Trigger call returns.
//
// # Core Concepts
//
// Registry holds the registrations and dispatches triggers. Registrations
// bind a Callback to a trigger name with a Priority; higher priorities fire
// earlier and equal priorities fire in registration order. A callback returns
// Continue to let delivery proceed or Stop to halt the remaining callbacks of
// the current firing. One-shot registrations remove themselves immediately
// after their first firing.
//
// Payloads are opaque: Trigger passes the data reference through to callbacks
// untouched, along with the owner reference captured at registration. The
// registry never serializes, copies, or inspects either.
//
// # Basic Usage
//
//	import (
//		"fmt"
//
//		"github.com/dmitrymomot/dispatch"
//	)
//
//	func main() {
//		reg := dispatch.New()
//		defer reg.Close()
//
//		reg.Register("user.created", dispatch.PriorityHigh,
//			func(owner, data any) dispatch.Action {
//				fmt.Println("audit:", data)
//				return dispatch.Continue
//			}, nil)
//
//		reg.Register("user.created", dispatch.PriorityNormal,
//			func(owner, data any) dispatch.Action {
//				fmt.Println("welcome mail:", data)
//				return dispatch.Continue
//			}, nil)
//
//		// Fires audit first (higher priority), then welcome mail.
//		reg.Trigger("user.created", "u-123")
//	}
//
// # One-Shot Registrations
//
// RegisterOnce removes the registration right after its first firing:
//
//	reg.RegisterOnce("migration.done", dispatch.PriorityNormal,
//		func(owner, data any) dispatch.Action {
//			close(ready)
//			return dispatch.Continue
//		}, nil)
//
// # Halting Delivery
//
// A callback returning Stop suppresses the remaining callbacks of that firing
// only. Later Trigger calls, and other trigger names, are unaffected:
//
//	reg.Register("request", dispatch.PriorityHighest,
//		func(owner, data any) dispatch.Action {
//			if quotaExceeded(data) {
//				return dispatch.Stop // lower-priority handlers never run
//			}
//			return dispatch.Continue
//		}, nil)
//
// # Unregistering
//
// Unregister takes a (trigger, callback, owner) filter where an empty trigger
// name, a nil callback, and a nil owner are wildcards:
//
//	reg.Unregister("user.created", nil, nil) // one trigger, all callbacks
//	reg.Unregister("", nil, sess)            // one owner, all triggers
//	reg.Unregister("", nil, nil)             // everything
//
// Callbacks are matched by code pointer; distinct closures over one function
// body share a pointer, so precise removal of a closure goes through the
// Registration handle instead:
//
//	handle, _ := reg.Register("tick", dispatch.PriorityNormal, cb, nil)
//	reg.Remove(handle)
//
// # Deferred Triggering
//
// A registry built with WithDeferredQueue accepts fire-and-forget events from
// a restricted context through a bounded single-producer/single-consumer
// queue. TriggerDeferred never blocks and never takes the registry lock; a
// later Pump call drains the queue through the ordinary dispatch path:
//
//	reg := dispatch.New(dispatch.WithDeferredQueue(64))
//
//	// Producer context (one goroutine):
//	if err := reg.TriggerDeferred("sensor.sample", sample); err != nil {
//		// ErrDeferredFull: queue saturated, event dropped
//	}
//
//	// Consumer context (one goroutine), e.g. a main loop:
//	for {
//		reg.Pump()
//		idle()
//	}
//
// TriggerDeferred is also the one registry operation a callback may safely
// invoke while a Trigger on the same registry is running.
//
// # Storage Strategies
//
// The default storage grows: buckets double as registrations accumulate and
// slots come from the heap. WithFixedPool switches to a preallocated pool
// with a fixed bucket table, a bounded slot count, and a maximum trigger-name
// length, for long-running processes that must not allocate after startup:
//
//	reg := dispatch.New(dispatch.WithFixedPool(32, 64, 32))
//
//	_, err := reg.Register(veryLongName, dispatch.PriorityNormal, cb, nil)
//	// errors.Is(err, dispatch.ErrTriggerTooLong)
//
// Exhaustion surfaces as ErrPoolExhausted; the pool never grows.
//
// # Thread Safety
//
// Registries serialize Register, Unregister, Remove, Trigger, and Pump behind
// one mutex by default. Dispatch stays synchronous: the lock is held while a
// firing's callbacks run, so a blocking callback blocks every other registry
// operation. Callbacks must not re-enter the registry (see Trigger).
// WithThreadSafety(false) removes the lock for single-goroutine use.
//
// # Configuration
//
// Config carries the construction settings with DISPATCH_* env tags:
//
//	cfg, err := dispatch.LoadConfig() // .env + environment
//	if err != nil {
//		log.Fatal(err)
//	}
//	reg, err := dispatch.NewFromConfig(cfg, dispatch.WithLogger(logger))
//
// # Default Registry
//
// Package-level Register, Trigger, and friends operate on a lazily created
// process-wide registry, interchangeable via SetDefault:
//
//	dispatch.Register("app.shutdown", dispatch.PriorityHighest, saveState, nil)
//	dispatch.Trigger("app.shutdown", nil)
//
// # Observability
//
// Stats exposes live counts and cumulative counters:
//
//	stats := reg.Stats()
//	logger.Info("dispatch stats",
//		"live", stats.Live,
//		"fired", stats.TriggersFired,
//		"invoked", stats.CallbacksInvoked,
//		"deferred_dropped", stats.DeferredDropped)
package dispatch
