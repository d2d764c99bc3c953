// Package starsays implements the cache-and-retry request layer behind the
// WhatMyStarsSays readings client: a TTL cache generic over the value type,
// layered on a pluggable byte store, plus an exponential-backoff retry
// wrapper for the remote generative-model call.
//
// Components:
//   - store.Store: byte substrate with TTL hints (memory, Redis, BigCache,
//     Ristretto, LRU).
//   - codec.Codec[V]: (de)serializes V <-> []byte.
//   - Cache[V]: namespaced TTL cache; expiry is lazy (checked on read) and
//     corrupt or undecodable entries are deleted and reported as misses.
//
// Keys are namespaced as <ns>:<key>. Each entry is framed in a small
// envelope carrying the write time and TTL, so the cache owns expiry even
// on stores without native TTLs.
//
// The usual call shape:
//
//	v, cached, err := starsays.GetOrFetch(ctx, cache, key, ttl, policy,
//	    func(ctx context.Context) (V, error) { return callModel(ctx) })
//
// On a hit the remote operation is never invoked. On a miss the operation
// runs under the retry policy; terminal failures (missing credentials,
// malformed responses) short-circuit, transient ones back off and retry.
package starsays
