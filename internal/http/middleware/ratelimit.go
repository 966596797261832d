package middleware

import (
	"net/http"
	"sync"
	"time"
)

const (
	sweepInterval = 5 * time.Minute
	visitorIdle   = 10 * time.Minute
)

// RateLimiter tracks a token bucket per client address. Buckets refill
// continuously at the configured rate up to the burst size.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     float64 // tokens added per second
	burst    float64
}

type visitor struct {
	tokens float64
	seen   time.Time
}

// NewRateLimiter allows rate requests per second with the given burst per
// client address. Idle clients are swept in the background.
func NewRateLimiter(rate float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate,
		burst:    float64(burst),
	}
	go rl.sweep()
	return rl
}

// Allow reports whether a request from addr may proceed, consuming one token
// when it does.
func (rl *RateLimiter) Allow(addr string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	v, ok := rl.visitors[addr]
	if !ok {
		rl.visitors[addr] = &visitor{tokens: rl.burst - 1, seen: now}
		return true
	}

	v.tokens += now.Sub(v.seen).Seconds() * rl.rate
	if v.tokens > rl.burst {
		v.tokens = rl.burst
	}
	v.seen = now

	if v.tokens < 1 {
		return false
	}
	v.tokens--
	return true
}

func (rl *RateLimiter) sweep() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for range ticker.C {
		cutoff := time.Now().Add(-visitorIdle)
		rl.mu.Lock()
		for addr, v := range rl.visitors {
			if v.seen.Before(cutoff) {
				delete(rl.visitors, addr)
			}
		}
		rl.mu.Unlock()
	}
}

// RateLimit rejects requests over the configured per-client rate with
// 429 Too Many Requests.
func RateLimit(rate float64, burst int) func(http.Handler) http.Handler {
	limiter := NewRateLimiter(rate, burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			addr := r.RemoteAddr
			// Prefer the proxy-provided client address when present.
			if xri := r.Header.Get("X-Real-Ip"); xri != "" {
				addr = xri
			}
			if !limiter.Allow(addr) {
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
