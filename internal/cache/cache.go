// Package cache is an in-process key/value store with per-entry TTLs.
// Expired entries are dropped lazily on read and swept periodically by a
// janitor goroutine. The store owns every payload it holds; callers must
// re-Set to update a value, never mutate it in place.
package cache

import (
	"log/slog"
	"path"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry struct {
	value       any
	createdAt   time.Time
	ttl         time.Duration
	accessCount int64
	lastAccess  time.Time
}

func (e *entry) expired(now time.Time) bool {
	return now.Sub(e.createdAt) > e.ttl
}

// Stats is a point-in-time snapshot of cache accounting.
type Stats struct {
	Hits      int64
	Misses    int64
	Entries   int
	Evictions int64
}

type Store struct {
	mu      sync.RWMutex
	entries map[string]*entry

	hits      int64
	misses    int64
	evictions int64

	group  singleflight.Group
	logger *slog.Logger

	stop chan struct{}
	done chan struct{}

	now func() time.Time // overridable in tests
}

// New creates a store and starts its janitor. sweepInterval <= 0 disables
// the background sweep; expiry is then purely lazy.
func New(sweepInterval time.Duration, logger *slog.Logger) *Store {
	s := &Store{
		entries: make(map[string]*entry),
		logger:  logger.With("component", "cache"),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
		now:     time.Now,
	}

	if sweepInterval > 0 {
		go s.janitor(sweepInterval)
	} else {
		close(s.done)
	}

	return s
}

// Get returns the live value for key. An expired entry counts as a miss
// and is removed.
func (s *Store) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		s.misses++
		return nil, false
	}

	now := s.now()
	if e.expired(now) {
		delete(s.entries, key)
		s.evictions++
		s.misses++
		return nil, false
	}

	e.accessCount++
	e.lastAccess = now
	s.hits++
	return e.value, true
}

// Set stores value under key for ttl. A non-positive ttl falls back to a
// minute so entries cannot live forever by accident.
func (s *Store) Set(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = time.Minute
	}

	now := s.now()
	s.mu.Lock()
	s.entries[key] = &entry{
		value:      value,
		createdAt:  now,
		ttl:        ttl,
		lastAccess: now,
	}
	s.mu.Unlock()
}

// Delete removes key if present.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// ClearPattern removes every key matching the path.Match glob. Returns the
// number of entries removed. A malformed pattern removes nothing.
func (s *Store) ClearPattern(pattern string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key := range s.entries {
		ok, err := path.Match(pattern, key)
		if err != nil {
			s.logger.Warn("bad invalidation pattern", "pattern", pattern, "error", err)
			return 0
		}
		if ok {
			delete(s.entries, key)
			removed++
		}
	}

	if removed > 0 {
		s.logger.Debug("invalidated entries", "pattern", pattern, "removed", removed)
	}
	return removed
}

// Remember implements the cache-aside pattern: return the cached value for
// key, or invoke producer, store its result under key, and return it.
// Concurrent callers for the same missing key are collapsed into a single
// producer invocation.
func (s *Store) Remember(key string, ttl time.Duration, producer func() (any, error)) (any, error) {
	if v, ok := s.Get(key); ok {
		return v, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		// Re-check: another caller may have filled the key while we
		// waited on the flight group.
		if v, ok := s.Get(key); ok {
			return v, nil
		}
		v, err := producer()
		if err != nil {
			return nil, err
		}
		s.Set(key, v, ttl)
		return v, nil
	})
	return v, err
}

// Stats returns current accounting counters.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{
		Hits:      s.hits,
		Misses:    s.misses,
		Entries:   len(s.entries),
		Evictions: s.evictions,
	}
}

// Len returns the number of entries, expired or not.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Stop terminates the janitor. The store remains usable afterwards.
func (s *Store) Stop() {
	select {
	case <-s.done:
		return
	default:
	}
	close(s.stop)
	<-s.done
}

func (s *Store) janitor(interval time.Duration) {
	defer close(s.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *Store) sweep() {
	now := s.now()

	s.mu.Lock()
	swept := 0
	for key, e := range s.entries {
		if e.expired(now) {
			delete(s.entries, key)
			s.evictions++
			swept++
		}
	}
	remaining := len(s.entries)
	s.mu.Unlock()

	if swept > 0 {
		s.logger.Debug("swept expired entries", "swept", swept, "remaining", remaining)
	}
}
