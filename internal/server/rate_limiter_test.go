package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter(capacity int, window time.Duration) (*RateLimiter, *time.Time) {
	now := time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(capacity, window)
	rl.now = func() time.Time { return now }
	return rl, &now
}

func TestRateLimiterAllow(t *testing.T) {
	rl, now := newTestLimiter(3, time.Minute)
	defer rl.Stop()

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("10.0.0.1"), "request %d", i)
	}
	assert.False(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.2"), "buckets are per client")

	*now = now.Add(time.Minute)
	assert.True(t, rl.Allow("10.0.0.1"), "bucket refills after the window")
}

func TestRateLimiterCleanup(t *testing.T) {
	rl, now := newTestLimiter(1, time.Minute)
	defer rl.Stop()

	rl.Allow("10.0.0.1")
	*now = now.Add(2 * time.Hour)
	rl.Allow("10.0.0.2")
	rl.cleanup()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.clients, "10.0.0.1")
	assert.Contains(t, rl.clients, "10.0.0.2")
}

func TestRateLimiterStopIdempotent(t *testing.T) {
	rl := NewRateLimiter(1, time.Second)
	rl.Stop()
	rl.Stop()
}
