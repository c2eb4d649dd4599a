// Package quota provides the per-user correction-sync limiter. It is a soft
// abuse guard with process lifetime: counters live in memory only and reset
// on restart, which is acceptable because the quota protects the profile
// store, it is not billing-grade accounting
package quota

import (
	"sync"
	"time"
)

// Defaults for the correction-sync quota
const (
	DefaultLimit  = 30
	DefaultWindow = time.Hour
)

// now is a seam for tests
var now = time.Now

// bucket tracks one user's spend inside the current window
type bucket struct {
	count       int
	windowStart time.Time
}

// Limiter enforces a fixed per-user call quota over a rolling window.
// Safe for concurrent use across users; same-user calls are expected to be
// serialized by the transport (one sync request per user at a time)
type Limiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	users  map[string]*bucket
}

// New constructs a Limiter. Non-positive limit or window fall back to the
// defaults
func New(limit int, window time.Duration) *Limiter {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &Limiter{
		limit:  limit,
		window: window,
		users:  make(map[string]*bucket),
	}
}

// Allow reports whether userID may spend one call now. A fresh or expired
// window resets the counter to 1; a full window denies without mutation
func (l *Limiter) Allow(userID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	t := now()
	b, ok := l.users[userID]
	if !ok || t.Sub(b.windowStart) > l.window {
		l.users[userID] = &bucket{count: 1, windowStart: t}
		return true
	}
	if b.count < l.limit {
		b.count++
		return true
	}
	return false
}
