package starsays

import (
	"context"
	"time"

	c "github.com/dinaypatil-web/whatmystarssays/codec"
	st "github.com/dinaypatil-web/whatmystarssays/store"
)

// NeverExpires is the reserved TTL sentinel for entries that are valid
// forever (content tied to immutable facts, e.g. a natal chart).
const NeverExpires = time.Duration(-1)

// SetCostFunc computes the cost hint passed to the store on writes.
// Only cost-aware stores (Ristretto) consume it.
type SetCostFunc func(key string, raw []byte) int64

// Cache is the high-level TTL cache API. V is the caller's value type;
// serialization is handled by a pluggable Codec[V].
type Cache[V any] interface {
	Enabled() bool
	Close(context.Context) error

	// Get returns the cached value for key. ok=false covers every absence:
	// no entry, expired entry, corrupt envelope, undecodable payload.
	// The latter three are deleted as a side effect. err is reserved for
	// store I/O failures.
	Get(ctx context.Context, key string) (v V, ok bool, err error)

	// Put unconditionally overwrites key, recording the current time.
	// ttl == 0 uses the configured default; NeverExpires never expires.
	Put(ctx context.Context, key string, value V, ttl time.Duration) error

	// Delete removes key (best-effort).
	Delete(ctx context.Context, key string) error
}

// Options tune the behavior of the generic cache.
// Only Namespace, Store and Codec are required; others have defaults.
type Options[V any] struct {
	// Required
	Namespace string // logical namespace to avoid collisions, e.g. "horoscope"
	Store     st.Store
	Codec     c.Codec[V]

	Logger         Logger           // if nil, NopLogger is used
	Hooks          Hooks            // if nil, NopHooks is used
	DefaultTTL     time.Duration    // used when Put gets ttl==0; 0 => 24h
	Disabled       bool             // default false (enabled)
	ComputeSetCost SetCostFunc      // default 1
	Now            func() time.Time // clock override for tests; nil => time.Now
}

func New[V any](opts Options[V]) (Cache[V], error) {
	return newCache[V](opts)
}
