package dispatch

import "errors"

var (
	// ErrEmptyTrigger is returned when registering with an empty trigger name.
	// The empty string is reserved as the trigger wildcard for Unregister.
	ErrEmptyTrigger = errors.New("empty trigger name")

	// ErrNilCallback is returned when registering a nil callback.
	ErrNilCallback = errors.New("nil callback")

	// ErrTriggerTooLong is returned by the fixed-pool storage when a trigger
	// name exceeds the configured maximum length.
	ErrTriggerTooLong = errors.New("trigger name exceeds maximum length")

	// ErrPoolExhausted is returned by the fixed-pool storage when every
	// registration slot is in use.
	ErrPoolExhausted = errors.New("registration pool exhausted")

	// ErrDeferredDisabled is returned by TriggerDeferred when the registry was
	// built without a deferred queue.
	ErrDeferredDisabled = errors.New("deferred queue not enabled")

	// ErrDeferredFull is returned by TriggerDeferred when the deferred queue
	// has no free slot.
	ErrDeferredFull = errors.New("deferred queue is full")

	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("invalid dispatch config")
)
