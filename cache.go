package starsays

import (
	"context"
	"fmt"
	"time"

	"github.com/dinaypatil-web/whatmystarssays/codec"
	"github.com/dinaypatil-web/whatmystarssays/internal/wire"
	"github.com/dinaypatil-web/whatmystarssays/store"
)

const defaultTTL = 24 * time.Hour

type cache[V any] struct {
	ns             string
	store          store.Store
	codec          codec.Codec[V]
	log            Logger
	hooks          Hooks
	enabled        bool
	defaultTTL     time.Duration
	computeSetCost SetCostFunc
	now            func() time.Time
}

func newCache[V any](opts Options[V]) (*cache[V], error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("starsays: store is required")
	}
	if opts.Codec == nil {
		return nil, fmt.Errorf("starsays: codec is required")
	}
	if opts.Namespace == "" {
		return nil, fmt.Errorf("starsays: namespace is required")
	}

	c := &cache[V]{
		ns:      opts.Namespace,
		store:   opts.Store,
		codec:   opts.Codec,
		enabled: !opts.Disabled,
	}

	// defaults
	c.log = coalesce[Logger](opts.Logger, NopLogger{})
	c.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	c.defaultTTL = coalesce[time.Duration](opts.DefaultTTL, defaultTTL)

	if opts.ComputeSetCost != nil {
		c.computeSetCost = opts.ComputeSetCost
	} else {
		c.computeSetCost = func(_ string, _ []byte) int64 { return 1 }
	}

	if opts.Now != nil {
		c.now = opts.Now
	} else {
		c.now = time.Now
	}

	return c, nil
}

func (c *cache[V]) Enabled() bool { return c.enabled }

func (c *cache[V]) FetchLogger() Logger { return c.log }
func (c *cache[V]) FetchHooks() Hooks   { return c.hooks }

func (c *cache[V]) Close(ctx context.Context) error {
	if c.store != nil {
		return c.store.Close(ctx)
	}
	return nil
}

func (c *cache[V]) Get(ctx context.Context, key string) (V, bool, error) {
	var zero V
	if !c.enabled {
		return zero, false, nil
	}
	k := c.storageKey(key)
	raw, ok, err := c.store.Get(ctx, k)
	if err != nil || !ok {
		return zero, false, err
	}
	env, err := wire.Decode(raw)
	if err != nil {
		_ = c.store.Del(ctx, k) // self-heal corrupt
		c.hooks.SelfHeal(k, "corrupt")
		return zero, false, nil
	}
	if env.Expired(c.now()) {
		_ = c.store.Del(ctx, k)
		c.hooks.EntryExpired(k)
		return zero, false, nil
	}
	v, err := c.codec.Decode(env.Payload)
	if err != nil {
		_ = c.store.Del(ctx, k) // self-heal
		c.hooks.SelfHeal(k, "value_decode")
		return zero, false, nil
	}
	return v, true, nil
}

func (c *cache[V]) Put(ctx context.Context, key string, value V, ttl time.Duration) error {
	if !c.enabled {
		return nil
	}
	if ttl == 0 {
		ttl = c.defaultTTL
	}
	payload, err := c.codec.Encode(value)
	if err != nil {
		return fmt.Errorf("starsays: encode %q: %w", key, err)
	}
	k := c.storageKey(key)
	raw := wire.Encode(wire.Envelope{
		StoredAt: c.now(),
		TTL:      ttl,
		Payload:  payload,
	})
	ok, err := c.store.Set(ctx, k, raw, c.computeSetCost(k, raw), ttl)
	if err != nil {
		return err
	}
	if !ok {
		c.log.Debug("Put rejected by store (pressure)", Fields{"key": key})
		c.hooks.StoreSetRejected(k)
	}
	return nil
}

func (c *cache[V]) Delete(ctx context.Context, key string) error {
	if !c.enabled {
		return nil
	}
	return c.store.Del(ctx, c.storageKey(key))
}

func (c *cache[V]) storageKey(userKey string) string {
	// isolate by namespace
	return c.ns + ":" + userKey
}
