// Package rate tracks a token-bucket limiter per client. The coupon
// apply endpoint uses it so codes cannot be guessed by brute force.
package rate

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type Limiter struct {
	burst    int
	limitRPS float64
	expiry   time.Duration
	clients  map[string]*client
	mu       sync.Mutex
}

type client struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// NewLimiter builds a limiter allowing limitRPS requests per second
// with the given burst per client. Clients idle longer than expiry are
// forgotten.
func NewLimiter(burst int, expiry time.Duration, limitRPS float64) *Limiter {
	lm := &Limiter{
		burst:    burst,
		limitRPS: limitRPS,
		expiry:   expiry,
		clients:  make(map[string]*client),
	}
	go lm.evict()
	return lm
}

// Check reports whether the client identified by id may proceed.
func (l *Limiter) Check(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	cl, ok := l.clients[id]
	if !ok {
		cl = &client{limiter: rate.NewLimiter(rate.Limit(l.limitRPS), l.burst)}
		l.clients[id] = cl
	}
	cl.lastAccess = time.Now()
	return cl.limiter.Allow()
}

func (l *Limiter) evict() {
	for {
		time.Sleep(time.Minute)

		l.mu.Lock()
		for id, cl := range l.clients {
			if time.Since(cl.lastAccess) > l.expiry {
				delete(l.clients, id)
			}
		}
		l.mu.Unlock()
	}
}

// Every converts an interval between events to a per-second rate.
func Every(interval time.Duration) float64 {
	return float64(rate.Every(interval))
}
