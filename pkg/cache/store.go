// Package cache is the in-process query cache: a key to value-with-TTL store
// plus the static table mapping each mutation to the keys it invalidates.
// Optimistic interaction updates edit cached values directly and rely on
// Snapshot/Restore to revert when the server rejects the write.
package cache

import (
	"strings"
	"sync"
	"time"
)

type entry struct {
	value    interface{}
	storedAt time.Time
	ttl      time.Duration
}

func (e entry) fresh(now time.Time) bool {
	return e.ttl <= 0 || now.Sub(e.storedAt) < e.ttl
}

// Store is a mutex-guarded TTL map. Entries expire lazily: a stale entry
// stays readable through GetStale until overwritten or invalidated, which is
// what lets reads fall back to stale-but-present data on fetch failure.
type Store struct {
	mu      sync.Mutex
	entries map[string]entry
}

// New creates an empty store
func New() *Store {
	return &Store{entries: make(map[string]entry)}
}

// Get returns the value for key if present and fresh
func (s *Store) Get(key string) (interface{}, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || !e.fresh(time.Now()) {
		return nil, false
	}
	return e.value, true
}

// GetStale returns the value for key even when its TTL has elapsed
func (s *Store) GetStale(key string) (interface{}, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Set stores value under key with the given staleness window
func (s *Store) Set(key string, value interface{}, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry{value: value, storedAt: time.Now(), ttl: ttl}
}

// Invalidate removes the given keys. A key ending in '*' removes every key
// with that prefix.
func (s *Store) Invalidate(keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		if strings.HasSuffix(key, "*") {
			prefix := strings.TrimSuffix(key, "*")
			for k := range s.entries {
				if strings.HasPrefix(k, prefix) {
					delete(s.entries, k)
				}
			}
			continue
		}
		delete(s.entries, key)
	}
}

// MarkStale expires a key without dropping its value: the next fresh read
// refetches, while stale-but-present fallback still works. This is how a
// settled mutation forces reconciliation without blanking the view.
func (s *Store) MarkStale(keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		if e, ok := s.entries[key]; ok {
			e.storedAt = time.Time{}
			e.ttl = time.Nanosecond
			s.entries[key] = e
		}
	}
}

// Snapshot captures the current value under key, present or not, so an
// optimistic update can be reverted exactly.
func (s *Store) Snapshot(key string) (interface{}, bool) {
	return s.GetStale(key)
}

// Restore puts a snapshot back. A snapshot taken of an absent key restores
// to absence.
func (s *Store) Restore(key string, value interface{}, present bool, ttl time.Duration) {
	if !present {
		s.Invalidate(key)
		return
	}
	s.Set(key, value, ttl)
}

// Len reports the number of entries, fresh or stale
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
