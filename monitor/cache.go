package monitor

import (
	"time"

	"github.com/rs/zerolog/log"
)

const (
	// cacheTTL is the maximum age a valid payload may be served at.
	// The boundary is exclusive: an entry exactly cacheTTL old is stale.
	cacheTTL = 60 * time.Second
	// requestSpacing is the minimum gap between the starts of two real
	// network calls, shared across all stop ids.
	requestSpacing = 3 * time.Second
)

type cacheEntry struct {
	payload   string
	fetchedAt time.Time
	valid     bool
}

// FetchCache is the sole gateway to the network fetcher. It caches the
// last payload per stop id with a TTL and enforces spacing between real
// network calls so back-to-back requests for different stops never burst
// against the remote service.
//
// FetchCache is owned by the single acquisition goroutine and is not safe
// for concurrent use.
type FetchCache struct {
	fetcher Fetcher
	entries map[string]*cacheEntry

	// lastCall tracks the start of the most recent real network call.
	// Cache hits neither check nor update it.
	lastCall time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewFetchCache creates a cache in front of f.
func NewFetchCache(f Fetcher) *FetchCache {
	return NewFetchCacheWithClock(f, time.Now, time.Sleep)
}

// NewFetchCacheWithClock is NewFetchCache with an injected clock and
// sleeper, for deterministic tests.
func NewFetchCacheWithClock(f Fetcher, now func() time.Time, sleep func(time.Duration)) *FetchCache {
	return &FetchCache{
		fetcher: f,
		entries: map[string]*cacheEntry{},
		now:     now,
		sleep:   sleep,
	}
}

// Fetch returns the payload for stopID, from cache when a valid entry is
// younger than the TTL and force is false. On a network failure or empty
// body the attempted payload is stored untrusted for diagnostics and
// returned as-is; the caller decides retry policy.
func (fc *FetchCache) Fetch(stopID string, force bool) string {
	if !force {
		if e, ok := fc.entries[stopID]; ok && e.valid && fc.now().Sub(e.fetchedAt) < cacheTTL {
			return e.payload
		}
	}

	if !fc.lastCall.IsZero() {
		if wait := requestSpacing - fc.now().Sub(fc.lastCall); wait > 0 {
			fc.sleep(wait)
		}
	}
	fc.lastCall = fc.now()

	payload, err := fc.fetcher.FetchStop(stopID)
	if err != nil || payload == "" {
		log.Warn().Err(err).Str("stopID", stopID).Msg("Stop fetch failed")
		fc.entries[stopID] = &cacheEntry{payload: payload, fetchedAt: fc.now(), valid: false}
		return payload
	}

	fc.entries[stopID] = &cacheEntry{payload: payload, fetchedAt: fc.now(), valid: true}
	return payload
}

// Invalidate marks a stop's entry untrusted without deleting it, forcing
// the next Fetch to hit the network.
func (fc *FetchCache) Invalidate(stopID string) {
	if e, ok := fc.entries[stopID]; ok {
		e.valid = false
	}
}

// Clear drops all entries.
func (fc *FetchCache) Clear() {
	fc.entries = map[string]*cacheEntry{}
}
