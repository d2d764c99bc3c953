package starsays

import (
	"context"
	"time"
)

// Instrumented is an optional interface a Cache implementation may provide
// so GetOrFetch can report retry and exhaustion events through the cache's
// own logger and hooks. Wrappers around a Cache should forward both from
// the wrapped instance or those events are lost. Either method may return
// nil to keep the no-op default.
type Instrumented interface {
	FetchLogger() Logger
	FetchHooks() Hooks
}

// GetOrFetch is the cached-remote-call template every readings operation
// follows: check the cache, run op under the retry policy on a miss, and
// write the fresh result back with the domain TTL before returning it.
//
// The returned bool reports whether the value came from the cache. A
// cache read error degrades to a miss (the cache layer never fails a
// fetch); a write-back error is logged and swallowed for the same reason.
// On failure nothing is cached and the final error is returned as-is.
func GetOrFetch[V any](
	ctx context.Context,
	cch Cache[V],
	key string,
	ttl time.Duration,
	pol Policy,
	op func(context.Context) (V, error),
) (V, bool, error) {
	var zero V

	log := Logger(NopLogger{})
	hooks := Hooks(NopHooks{})
	if ins, ok := cch.(Instrumented); ok {
		if l := ins.FetchLogger(); l != nil {
			log = l
		}
		if h := ins.FetchHooks(); h != nil {
			hooks = h
		}
	}

	v, ok, err := cch.Get(ctx, key)
	if err != nil {
		log.Warn("cache read failed, treating as miss", Fields{"key": key, "err": err})
	}
	if ok {
		return v, true, nil
	}

	attempts := 0
	v, err = Do(ctx, pol, log, func(ctx context.Context) (V, error) {
		attempts++
		if attempts > 1 {
			hooks.RemoteRetry(key, attempts)
		}
		return op(ctx)
	})
	if err != nil {
		hooks.RemoteExhausted(key, err)
		return zero, false, err
	}

	if putErr := cch.Put(ctx, key, v, ttl); putErr != nil {
		log.Warn("cache write-back failed", Fields{"key": key, "err": putErr})
	}
	return v, false, nil
}
