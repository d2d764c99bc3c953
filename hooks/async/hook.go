// usage:
//
//	raw := myHooks{}           // your starsays.Hooks implementation
//	hooks := async.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	cache, _ := starsays.New[readings.Horoscope](starsays.Options[readings.Horoscope]{
//	    Namespace: "horoscope",
//	    Store:     store,
//	    Codec:     codec.JSON[readings.Horoscope]{},
//	    Hooks:     hooks, // or `raw` if you don't want async
//	})
package async

import (
	"sync"

	starsays "github.com/dinaypatil-web/whatmystarssays"
)

// Hooks decouples hook sinks from the cache hot path: events are queued
// and handled by worker goroutines; when the queue is full events are
// dropped rather than blocking a Get.
type Hooks struct {
	inner starsays.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ starsays.Hooks = (*Hooks)(nil)

func New(inner starsays.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) EntryExpired(k string)     { h.try(func() { h.inner.EntryExpired(k) }) }
func (h *Hooks) SelfHeal(k, r string)      { h.try(func() { h.inner.SelfHeal(k, r) }) }
func (h *Hooks) StoreSetRejected(k string) { h.try(func() { h.inner.StoreSetRejected(k) }) }
func (h *Hooks) RemoteRetry(k string, attempt int) {
	h.try(func() { h.inner.RemoteRetry(k, attempt) })
}
func (h *Hooks) RemoteExhausted(k string, err error) {
	h.try(func() { h.inner.RemoteExhausted(k, err) })
}
