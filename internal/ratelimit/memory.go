package ratelimit

import (
	"context"
	"sync"
	"time"
)

type window struct {
	count   int64
	resetAt time.Time
}

// MemoryLimiter keeps counters in process. Used when no redis is configured;
// counters are not shared between instances.
type MemoryLimiter struct {
	mu      sync.Mutex
	buckets map[string]*window
	now     func() time.Time
}

func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{
		buckets: make(map[string]*window),
		now:     time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, rule Rule, key string) (Result, error) {
	k := bucketKey(rule, key)
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.buckets[k]
	if !ok || !now.Before(w.resetAt) {
		w = &window{resetAt: now.Add(rule.Window)}
		l.buckets[k] = w
		l.sweep(now)
	}
	w.count++

	return result(rule, w.count, w.resetAt.Sub(now)), nil
}

// sweep drops expired windows. Caller holds mu.
func (l *MemoryLimiter) sweep(now time.Time) {
	for k, w := range l.buckets {
		if !now.Before(w.resetAt) {
			delete(l.buckets, k)
		}
	}
}

var _ Limiter = (*MemoryLimiter)(nil)
