package dispatch

import (
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/dispatch/pkg/spsc"
)

const (
	// DefaultInitialBuckets is the growable storage's starting bucket count.
	DefaultInitialBuckets = 16

	// DefaultPoolBuckets is the fixed-pool storage's bucket count.
	DefaultPoolBuckets = 32

	// DefaultPoolCapacity is the fixed-pool storage's registration slot count.
	DefaultPoolCapacity = 64

	// DefaultMaxTriggerLength is the fixed-pool storage's trigger name bound.
	DefaultMaxTriggerLength = 32

	// DefaultDeferredCapacity is the deferred queue size used when the
	// feature is enabled without an explicit capacity.
	DefaultDeferredCapacity = 16
)

// Registry dispatches named triggers to registered callbacks synchronously,
// in priority order. Callbacks may self-remove after one firing (one-shot)
// and may halt the remaining delivery of the current firing (Stop).
//
// A Registry is safe for concurrent use unless built with
// WithThreadSafety(false), in which case the caller owns all
// synchronization. Dispatch is never concurrent either way: Trigger runs its
// callback chain to completion on the calling goroutine.
//
// Example:
//
//	reg := dispatch.New()
//	defer reg.Close()
//
//	reg.Register("user.created", dispatch.PriorityNormal,
//	    func(owner, data any) dispatch.Action {
//	        fmt.Println("created:", data)
//	        return dispatch.Continue
//	    }, nil)
//
//	reg.Trigger("user.created", userID)
type Registry struct {
	store    storage
	deferred *spsc.Queue[deferredEvent]
	mu       sync.Locker
	logger   *slog.Logger

	// closed marks a torn-down registry: Trigger, Unregister, and Remove
	// no-op until a Register call re-arms it. Guarded by mu.
	closed bool
	live   int

	// Construction settings, materialized by New after options run.
	threadSafe     bool
	initialBuckets int
	pool           *poolSettings
	deferredCap    int

	registered       atomic.Uint64
	removed          atomic.Uint64
	triggersFired    atomic.Uint64
	callbacksInvoked atomic.Uint64
	deferredEnqueued atomic.Uint64
	deferredDropped  atomic.Uint64
	deferredDrained  atomic.Uint64
}

type poolSettings struct {
	buckets       int
	capacity      int
	maxTriggerLen int
}

// noopLocker replaces the registry mutex when thread safety is disabled.
type noopLocker struct{}

func (noopLocker) Lock()   {}
func (noopLocker) Unlock() {}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger configures structured logging for the registry.
// Use slog.New(slog.NewTextHandler(io.Discard, nil)) to disable logging.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithInitialBuckets sets the growable storage's starting bucket count.
// Default is DefaultInitialBuckets. Ignored when the fixed pool is selected.
func WithInitialBuckets(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.initialBuckets = n
		}
	}
}

// WithFixedPool selects the fixed-capacity storage strategy: all registration
// slots are preallocated, the bucket count never changes, and registration
// fails once the pool is exhausted or when a trigger name is longer than
// maxTriggerLen. Zero or negative arguments fall back to the package
// defaults.
//
// Example:
//
//	reg := dispatch.New(dispatch.WithFixedPool(32, 64, 32))
func WithFixedPool(buckets, capacity, maxTriggerLen int) Option {
	return func(r *Registry) {
		p := &poolSettings{
			buckets:       buckets,
			capacity:      capacity,
			maxTriggerLen: maxTriggerLen,
		}
		if p.buckets <= 0 {
			p.buckets = DefaultPoolBuckets
		}
		if p.capacity <= 0 {
			p.capacity = DefaultPoolCapacity
		}
		if p.maxTriggerLen <= 0 {
			p.maxTriggerLen = DefaultMaxTriggerLength
		}
		r.pool = p
	}
}

// WithDeferredQueue enables the deferred trigger path: TriggerDeferred
// enqueues onto a bounded single-producer/single-consumer ring and Pump
// drains it. Capacity values below 1 fall back to DefaultDeferredCapacity.
//
// Example:
//
//	reg := dispatch.New(dispatch.WithDeferredQueue(64))
func WithDeferredQueue(capacity int) Option {
	return func(r *Registry) {
		if capacity < 1 {
			capacity = DefaultDeferredCapacity
		}
		r.deferredCap = capacity
	}
}

// WithThreadSafety toggles the global registry lock. It is on by default;
// disable it only when all registry use is confined to one goroutine.
func WithThreadSafety(enabled bool) Option {
	return func(r *Registry) {
		r.threadSafe = enabled
	}
}

// New creates a registry with growable storage, thread safety on, and the
// deferred queue disabled, then applies the given options.
//
// Example:
//
//	reg := dispatch.New(
//	    dispatch.WithDeferredQueue(64),
//	    dispatch.WithLogger(logger),
//	)
//	defer reg.Close()
func New(opts ...Option) *Registry {
	r := &Registry{
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		threadSafe:     true,
		initialBuckets: DefaultInitialBuckets,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.threadSafe {
		r.mu = &sync.Mutex{}
	} else {
		r.mu = noopLocker{}
	}

	if r.pool != nil {
		r.store = newPoolStorage(r.pool.buckets, r.pool.capacity, r.pool.maxTriggerLen)
	} else {
		r.store = newHeapStorage(r.initialBuckets)
	}

	if r.deferredCap > 0 {
		r.deferred = spsc.New[deferredEvent](r.deferredCap)
	}

	r.logger.Debug("registry created",
		slog.Bool("fixed_pool", r.pool != nil),
		slog.Int("deferred_capacity", r.deferredCap),
		slog.Bool("thread_safe", r.threadSafe))

	return r
}

// NewFromConfig creates a registry from configuration.
// Additional options override config values.
//
// Example:
//
//	cfg, err := dispatch.LoadConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	reg, err := dispatch.NewFromConfig(cfg, dispatch.WithLogger(logger))
func NewFromConfig(cfg Config, opts ...Option) (*Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Build options from config
	configOpts := make([]Option, 0, 3)

	switch cfg.Storage {
	case StorageFixed:
		configOpts = append(configOpts,
			WithFixedPool(cfg.PoolBuckets, cfg.PoolCapacity, cfg.MaxTriggerLength))
	default:
		configOpts = append(configOpts, WithInitialBuckets(cfg.InitialBuckets))
	}

	if cfg.DeferredCapacity > 0 {
		configOpts = append(configOpts, WithDeferredQueue(cfg.DeferredCapacity))
	}

	configOpts = append(configOpts, WithThreadSafety(cfg.ThreadSafe))

	// Combine config options with user-provided options (user options override)
	return New(append(configOpts, opts...)...), nil
}

// Close releases every registration, drops any queued deferred events, and
// returns the registry to a torn-down state. Trigger, Unregister, and Remove
// become no-ops until a Register call re-arms the registry. Close is
// idempotent.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}

	released := r.live
	r.store.reset()
	r.live = 0
	if released > 0 {
		r.removed.Add(uint64(released))
	}

	if r.deferred != nil {
		r.deferred.Reset()
	}

	r.closed = true
	r.logger.Info("registry closed", slog.Int("released", released))
}

// Count returns the number of live registrations.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.live
}

// Registrations returns a snapshot of live registrations for the given
// trigger in dispatch order, or for every trigger when name is empty. With an
// empty name, ordering across different triggers is unspecified; within one
// trigger it is always dispatch order.
func (r *Registry) Registrations(name string) []Registration {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}

	b := r.store.buckets()

	var out []Registration
	appendMatches := func(head *node, match string) {
		for n := head; n != nil; n = n.next {
			if match != "" && n.trigger != match {
				continue
			}
			out = append(out, Registration{
				ID:       n.id,
				Trigger:  n.trigger,
				Priority: n.priority,
				Once:     n.once,
			})
		}
	}

	if name != "" {
		appendMatches(b[bucketIndex(name, len(b))], name)
		return out
	}

	for _, head := range b {
		appendMatches(head, "")
	}
	return out
}
