package dispatch

import (
	"reflect"

	"github.com/google/uuid"
)

// Action is returned by a callback to control delivery of the current firing.
type Action uint8

const (
	// Continue lets delivery proceed to the remaining callbacks.
	Continue Action = iota
	// Stop halts delivery to the remaining callbacks of the fired trigger.
	Stop
)

// Priority orders callbacks sharing a trigger: higher values run earlier.
// Callbacks registered with equal priority run in registration order.
// Every uint8 value is valid.
type Priority uint8

const (
	PriorityLowest  Priority = 0
	PriorityLow     Priority = 64
	PriorityNormal  Priority = 128
	PriorityHigh    Priority = 192
	PriorityHighest Priority = 255
)

// Callback handles a fired trigger. It receives the opaque owner reference
// supplied at registration and the opaque data reference supplied by the
// caller of Trigger, and returns Continue or Stop.
//
// The registry never inspects owner or data; their interpretation is entirely
// between the registrant and the code firing the trigger.
type Callback func(owner, data any) Action

// Registration identifies a single registered callback. It is returned by
// Register and RegisterOnce and can be passed to Remove for precise removal,
// which matters for closures: distinct closures over one function body share
// a code pointer, so Unregister by callback can match more than intended.
type Registration struct {
	ID       uuid.UUID
	Trigger  string
	Priority Priority
	Once     bool
}

// callbackPointer returns the code pointer identity used to match callbacks
// during unregistration.
func callbackPointer(fn Callback) uintptr {
	return reflect.ValueOf(fn).Pointer()
}
