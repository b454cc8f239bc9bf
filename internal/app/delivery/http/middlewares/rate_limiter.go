package middlewares

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Entries idle longer than this are dropped so the per-IP map does not grow
// with every distinct client ever seen.
const limiterIdleTTL = time.Hour

// RateLimiter throttles OTP endpoints per client IP so a single caller
// cannot hammer the clinic backend's SMS gateway. Offenders are blocked
// outright for a cool-down period.
type RateLimiter struct {
	limiters  map[string]*clientLimiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	lastSweep time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(rps int, per, blockTime time.Duration) *RateLimiter {
	return &RateLimiter{
		limiters:  make(map[string]*clientLimiter),
		blocked:   make(map[string]time.Time),
		requests:  rps,
		per:       per,
		blockTime: blockTime,
		lastSweep: time.Now(),
	}
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		now := time.Now()

		r.mu.Lock()
		r.sweep(now)

		if blockedUntil, found := r.blocked[ip]; found {
			if now.Before(blockedUntil) {
				r.mu.Unlock()

				http.Error(w, "Too many requests, you are temporarily blocked.", http.StatusTooManyRequests)
				return
			}

			delete(r.blocked, ip)
		}

		entry, exists := r.limiters[ip]
		if !exists {
			entry = &clientLimiter{limiter: rate.NewLimiter(rate.Every(r.per), r.requests)}
			r.limiters[ip] = entry
		}
		entry.lastSeen = now

		r.mu.Unlock()

		if !entry.limiter.Allow() {

			r.mu.Lock()
			defer r.mu.Unlock()

			r.blocked[ip] = time.Now().Add(r.blockTime)
			http.Error(w, "Too many requests, you are blocked temporarily.", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, req)
	})
}

// sweep drops limiter entries not seen within limiterIdleTTL. Runs at most
// once per TTL window. Callers must hold r.mu.
func (r *RateLimiter) sweep(now time.Time) {
	if now.Sub(r.lastSweep) < limiterIdleTTL {
		return
	}
	r.lastSweep = now
	for ip, entry := range r.limiters {
		if now.Sub(entry.lastSeen) >= limiterIdleTTL {
			delete(r.limiters, ip)
		}
	}
}
