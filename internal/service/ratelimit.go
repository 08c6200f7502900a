package service

import (
	"sync"
	"time"
)

const (
	bucketSweepInterval = 5 * time.Minute
	bucketStaleAfter    = 10 * time.Minute
)

// TokenBucket is an in-memory per-key token bucket limiter, used to throttle
// the login, submission, and feedback endpoints by client address. Safe for
// concurrent use; idle buckets are swept in the background.
type TokenBucket struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	rate     float64 // tokens added per second
	capacity float64 // maximum tokens
}

type bucket struct {
	tokens float64
	last   time.Time
}

// NewTokenBucket creates a limiter allowing up to capacity requests per key
// with refill at rate tokens per second, and starts the sweep goroutine.
func NewTokenBucket(rate, capacity float64) *TokenBucket {
	tb := &TokenBucket{
		buckets:  make(map[string]*bucket),
		rate:     rate,
		capacity: capacity,
	}
	go tb.sweep()
	return tb
}

// Allow consumes one token for key and reports whether the request may
// proceed. A key seen for the first time starts with a full bucket.
func (tb *TokenBucket) Allow(key string) bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	b, ok := tb.buckets[key]
	if !ok {
		b = &bucket{tokens: tb.capacity, last: time.Now()}
		tb.buckets[key] = b
	}

	now := time.Now()
	elapsed := now.Sub(b.last).Seconds()
	b.tokens = min(b.tokens+elapsed*tb.rate, tb.capacity)
	b.last = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

func (tb *TokenBucket) sweep() {
	ticker := time.NewTicker(bucketSweepInterval)
	for range ticker.C {
		tb.mu.Lock()
		cutoff := time.Now().Add(-bucketStaleAfter)
		for key, b := range tb.buckets {
			if b.last.Before(cutoff) {
				delete(tb.buckets, key)
			}
		}
		tb.mu.Unlock()
	}
}
