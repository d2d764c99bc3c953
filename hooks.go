package starsays

// Hooks are lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking; the cache calls them on
// hot paths. Wrap with hooks/async to offload expensive sinks.
type Hooks interface {
	// An entry was deleted on read because its TTL had elapsed.
	EntryExpired(storageKey string)

	// An entry was deleted on read because it could not be decoded.
	// reason ∈ {"corrupt", "value_decode"}
	SelfHeal(storageKey, reason string)

	// Store returned ok=false on Set (backpressure/eviction).
	StoreSetRejected(storageKey string)

	// A cached remote call is re-invoking its operation. attempt starts
	// at 2 (the first retry).
	RemoteRetry(key string, attempt int)

	// A cached remote call gave up: retries exhausted or terminal failure.
	RemoteExhausted(key string, err error)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) EntryExpired(string)           {}
func (NopHooks) SelfHeal(string, string)       {}
func (NopHooks) StoreSetRejected(string)       {}
func (NopHooks) RemoteRetry(string, int)       {}
func (NopHooks) RemoteExhausted(string, error) {}
