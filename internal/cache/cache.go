// Package cache provides an in-memory key/value store with per-entry
// TTL expiration evaluated at read time.
package cache

import (
	"sync"
	"time"
)

// Entry represents a cached value with metadata
type Entry struct {
	Value    any
	StoredAt time.Time
	// expiresAt is zero for entries that never expire
	expiresAt time.Time
}

// Fresh reports whether the entry has not yet passed its TTL at time now.
func (e *Entry) Fresh(now time.Time) bool {
	return e.expiresAt.IsZero() || now.Before(e.expiresAt)
}

// Reader defines the interface for reading cache entries
type Reader interface {
	// Get retrieves a cache entry by key.
	// Returns the entry and true if found and not expired. An expired
	// entry is still returned (with false) so callers that serve stale
	// data can use it; there is no active eviction.
	Get(key string) (*Entry, bool)
}

// Writer defines the interface for writing cache entries
type Writer interface {
	// Put stores value under key with the given TTL, replacing any
	// previous entry wholesale. A non-positive TTL means no expiry.
	Put(key string, value any, ttl time.Duration)
}

// Store combines both cache operations
type Store interface {
	Reader
	Writer
}

// Memory implements Store with a mutex-guarded map. It supports
// concurrent reads and writes; writes to the same key are
// last-writer-wins.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewMemory creates an empty in-memory cache
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]*Entry)}
}

// Get implements Reader
func (m *Memory) Get(key string) (*Entry, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !e.Fresh(time.Now()) {
		return e, false
	}
	return e, true
}

// Put implements Writer
func (m *Memory) Put(key string, value any, ttl time.Duration) {
	e := &Entry{Value: value, StoredAt: time.Now()}
	if ttl > 0 {
		e.expiresAt = e.StoredAt.Add(ttl)
	}
	m.mu.Lock()
	m.entries[key] = e
	m.mu.Unlock()
}

// Len returns the number of stored entries, expired ones included
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
