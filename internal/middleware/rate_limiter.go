package middleware

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter reports whether a caller identified by key may proceed.
type RateLimiter interface {
	Allow(key string) bool
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipRateLimiter enforces a token-bucket limit per key, typically a client IP.
// Idle entries are pruned on the next Allow call after their ttl elapses.
type ipRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	limit   rate.Limit
	burst   int
	ttl     time.Duration
	now     func() time.Time
}

// NewIPRateLimiter allows up to requests events per window for each key, with
// burst extra capacity on top. Keys unseen for ttl are forgotten.
func NewIPRateLimiter(requests int, window time.Duration, burst int, ttl time.Duration) RateLimiter {
	if requests <= 0 {
		requests = 1
	}
	if window <= 0 {
		window = time.Second
	}
	if burst <= 0 {
		burst = 1
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &ipRateLimiter{
		clients: make(map[string]*client),
		limit:   rate.Every(window / time.Duration(requests)),
		burst:   burst,
		ttl:     ttl,
		now:     time.Now,
	}
}

func (l *ipRateLimiter) Allow(key string) bool {
	if key == "" {
		key = "unknown"
	}

	now := l.now()

	l.mu.Lock()
	c, ok := l.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = c
	}
	c.lastSeen = now
	l.pruneLocked(now)
	l.mu.Unlock()

	return c.limiter.Allow()
}

func (l *ipRateLimiter) pruneLocked(now time.Time) {
	for key, c := range l.clients {
		if now.Sub(c.lastSeen) > l.ttl {
			delete(l.clients, key)
		}
	}
}
