package dispatch

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// StorageKind selects the registration storage strategy.
type StorageKind string

const (
	// StorageGrowable allocates registrations from the heap and resizes the
	// bucket table with load.
	StorageGrowable StorageKind = "growable"

	// StorageFixed preallocates a bounded registration pool and a fixed
	// bucket table.
	StorageFixed StorageKind = "fixed"
)

// Config holds registry construction settings.
// Designed for environment-based configuration using popular env parsing libraries.
type Config struct {
	// Storage strategy selection
	Storage        StorageKind `env:"DISPATCH_STORAGE" envDefault:"growable"`
	InitialBuckets int         `env:"DISPATCH_INITIAL_BUCKETS" envDefault:"16"`

	// Fixed-pool sizing, used when Storage is "fixed"
	PoolBuckets      int `env:"DISPATCH_POOL_BUCKETS" envDefault:"32"`
	PoolCapacity     int `env:"DISPATCH_POOL_CAPACITY" envDefault:"64"`
	MaxTriggerLength int `env:"DISPATCH_MAX_TRIGGER_LENGTH" envDefault:"32"`

	// Deferred queue capacity; 0 leaves the feature disabled
	DeferredCapacity int `env:"DISPATCH_DEFERRED_CAPACITY" envDefault:"0"`

	ThreadSafe bool `env:"DISPATCH_THREAD_SAFE" envDefault:"true"`
}

// DefaultConfig returns the settings New uses when no options are given.
func DefaultConfig() Config {
	return Config{
		Storage:          StorageGrowable,
		InitialBuckets:   DefaultInitialBuckets,
		PoolBuckets:      DefaultPoolBuckets,
		PoolCapacity:     DefaultPoolCapacity,
		MaxTriggerLength: DefaultMaxTriggerLength,
		DeferredCapacity: 0,
		ThreadSafe:       true,
	}
}

// Validate reports the first invalid field as an error wrapping
// ErrInvalidConfig.
func (c Config) Validate() error {
	switch c.Storage {
	case StorageGrowable, StorageFixed:
	default:
		return fmt.Errorf("%w: unknown storage strategy %q", ErrInvalidConfig, c.Storage)
	}

	if c.Storage == StorageGrowable && c.InitialBuckets < 1 {
		return fmt.Errorf("%w: initial buckets must be positive, got %d", ErrInvalidConfig, c.InitialBuckets)
	}

	if c.Storage == StorageFixed {
		if c.PoolBuckets < 1 {
			return fmt.Errorf("%w: pool buckets must be positive, got %d", ErrInvalidConfig, c.PoolBuckets)
		}
		if c.PoolCapacity < 1 {
			return fmt.Errorf("%w: pool capacity must be positive, got %d", ErrInvalidConfig, c.PoolCapacity)
		}
		if c.MaxTriggerLength < 1 {
			return fmt.Errorf("%w: max trigger length must be positive, got %d", ErrInvalidConfig, c.MaxTriggerLength)
		}
	}

	if c.DeferredCapacity < 0 {
		return fmt.Errorf("%w: deferred capacity must not be negative, got %d", ErrInvalidConfig, c.DeferredCapacity)
	}

	return nil
}

// LoadConfig reads Config from the environment, loading a .env file first
// when one is present.
//
// Example:
//
//	cfg, err := dispatch.LoadConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	reg, err := dispatch.NewFromConfig(cfg)
func LoadConfig() (Config, error) {
	// Missing .env files are fine; the environment may be set directly.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse dispatch config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
