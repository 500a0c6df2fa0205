package repository

import (
	"context"
	"sync"
	"time"
)

// minSweepInterval bounds how often the sweeper wakes for very short TTLs.
const minSweepInterval = 10 * time.Millisecond

type memoryEntry struct {
	value     string
	expiresAt time.Time // zero means no expiry
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// MemoryCache is an in-process CacheRepository used when Redis is not configured.
// With a TTL, a background sweep drops expired entries every TTL until Close.
type MemoryCache struct {
	mu        sync.RWMutex
	data      map[string]memoryEntry
	ttl       time.Duration
	now       func() time.Time
	stopSweep chan struct{}
	stopOnce  sync.Once
}

// NewMemoryCache creates a cache whose entries expire after ttl (never when ttl <= 0).
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	m := &MemoryCache{
		data:      make(map[string]memoryEntry),
		ttl:       ttl,
		now:       time.Now,
		stopSweep: make(chan struct{}),
	}
	if ttl > 0 {
		go m.sweepLoop(max(ttl, minSweepInterval))
	}
	return m
}

func (m *MemoryCache) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.sweep()
		case <-m.stopSweep:
			return
		}
	}
}

// sweep removes every expired entry and returns how many were dropped.
func (m *MemoryCache) sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	dropped := 0
	for key, e := range m.data {
		if e.expired(now) {
			delete(m.data, key)
			dropped++
		}
	}
	return dropped
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	e, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return "", false
	}
	if e.expired(m.now()) {
		m.mu.Lock()
		if cur, still := m.data[key]; still && cur.expiresAt.Equal(e.expiresAt) {
			delete(m.data, key)
		}
		m.mu.Unlock()
		return "", false
	}
	return e.value, true
}

func (m *MemoryCache) Set(_ context.Context, key string, value string) error {
	e := memoryEntry{value: value}
	if m.ttl > 0 {
		e.expiresAt = m.now().Add(m.ttl)
	}
	m.mu.Lock()
	m.data[key] = e
	m.mu.Unlock()
	return nil
}

// Len returns the number of stored entries, expired ones not yet swept included.
func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Close stops the sweeper. It may be called more than once.
func (m *MemoryCache) Close() error {
	m.stopOnce.Do(func() { close(m.stopSweep) })
	return nil
}
