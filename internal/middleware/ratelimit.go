package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/roamly/api/internal/model"
)

// RateLimitConfig holds rate limiter configuration
type RateLimitConfig struct {
	Rate    int           // Requests per window (default 100)
	Window  time.Duration // Time window (default 1 minute)
	Burst   int           // Extra headroom on top of Rate (default 20)
	Cleanup time.Duration // Stale client eviction interval (default 5 minutes)
}

// visitor tracks one client's remaining allowance in the current window
type visitor struct {
	remaining   int
	windowStart time.Time
}

// RateLimiter caps requests per client over a fixed window. Each client
// starts a window with Rate+Burst requests; the allowance resets when
// the window elapses. Clients idle for two windows are evicted by a
// background janitor.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     int
	window   time.Duration
	burst    int
	stopCh   chan struct{}
}

// NewRateLimiter creates a rate limiter and starts its janitor
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	if cfg.Rate == 0 {
		cfg.Rate = 100
	}
	if cfg.Window == 0 {
		cfg.Window = time.Minute
	}
	if cfg.Burst == 0 {
		cfg.Burst = 20
	}
	if cfg.Cleanup == 0 {
		cfg.Cleanup = 5 * time.Minute
	}

	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     cfg.Rate,
		window:   cfg.Window,
		burst:    cfg.Burst,
		stopCh:   make(chan struct{}),
	}

	go rl.janitor(cfg.Cleanup)

	return rl
}

// Stop shuts down the janitor goroutine
func (rl *RateLimiter) Stop() {
	close(rl.stopCh)
}

func (rl *RateLimiter) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.evictStale()
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *RateLimiter) evictStale() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-2 * rl.window)
	for key, v := range rl.visitors {
		if v.windowStart.Before(cutoff) {
			delete(rl.visitors, key)
		}
	}
}

// Allow records one request for key and reports whether it fits the
// current window, along with the remaining allowance and the time the
// window resets.
func (rl *RateLimiter) Allow(key string) (allowed bool, remaining int, reset time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	v, ok := rl.visitors[key]
	if !ok || now.Sub(v.windowStart) >= rl.window {
		v = &visitor{remaining: rl.rate + rl.burst, windowStart: now}
		rl.visitors[key] = v
	}

	reset = v.windowStart.Add(rl.window)
	if v.remaining <= 0 {
		return false, 0, reset
	}
	v.remaining--
	return true, v.remaining, reset
}

// clientKey identifies the caller for rate limiting: the authenticated
// user when present, otherwise the client IP.
func clientKey(r *http.Request) string {
	if userID := GetUserID(r.Context()); userID != "" {
		return userID
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit returns a middleware enforcing the limiter per client
func RateLimit(limiter *RateLimiter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, remaining, reset := limiter.Allow(clientKey(r))

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limiter.rate))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))

			if !allowed {
				retryAfter := int(time.Until(reset).Seconds())
				if retryAfter < 1 {
					retryAfter = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))

				model.NewRateLimitError(retryAfter).WriteJSON(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
