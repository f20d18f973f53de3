// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"newsroom/internal/logger"
)

// Allower decides whether a client may make another request. When it may
// not, wait is the time until a slot frees up.
type Allower interface {
	Allow(ctx context.Context, key string) (ok bool, wait time.Duration, err error)
}

// visitor holds the request times of one client inside the current window.
type visitor struct {
	mu   sync.Mutex
	hits []time.Time
}

// RateLimiter provides per-IP rate limiting using a sliding window. It
// expects RemoteAddr to hold the real client address (see chi's RealIP).
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
	now      func() time.Time
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter creates a rate limiter that allows limit requests per
// window and client. A limit of zero or less disables limiting. A background
// goroutine drops idle clients until Stop is called.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}

	go func() {
		ticker := time.NewTicker(max(window, time.Minute))
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rl.sweep()
			case <-rl.stopCh:
				return
			}
		}
	}()

	return rl
}

// Stop terminates the background cleanup goroutine. It is safe to call
// more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Allow records a hit for key in process memory. It never fails.
func (rl *RateLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	ok, wait := rl.allow(key)
	return ok, wait, nil
}

// allow records a hit for key and reports whether it is within the limit.
// When it is not, it also returns how long until the oldest hit expires.
func (rl *RateLimiter) allow(key string) (bool, time.Duration) {
	if rl.limit <= 0 {
		return true, 0
	}

	rl.mu.Lock()
	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{}
		rl.visitors[key] = v
	}
	rl.mu.Unlock()

	now := rl.now()
	v.mu.Lock()
	defer v.mu.Unlock()

	v.hits = trim(v.hits, now.Add(-rl.window))
	if len(v.hits) >= rl.limit {
		return false, v.hits[0].Add(rl.window).Sub(now)
	}
	v.hits = append(v.hits, now)
	return true, 0
}

// trim drops hits at or before cutoff. hits is sorted oldest first.
func trim(hits []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(hits) && !hits[i].After(cutoff) {
		i++
	}
	return hits[i:]
}

// sweep removes clients with no hits inside the window.
func (rl *RateLimiter) sweep() {
	cutoff := rl.now().Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, v := range rl.visitors {
		v.mu.Lock()
		v.hits = trim(v.hits, cutoff)
		idle := len(v.hits) == 0
		v.mu.Unlock()
		if idle {
			delete(rl.visitors, key)
		}
	}
}

// RateLimit returns an HTTP middleware that rate-limits by client IP.
// Rejected requests get 429 with a Retry-After header in whole seconds. If
// the limiter itself fails the request is let through and the error logged.
func RateLimit(limiter Allower) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			ok, wait, err := limiter.Allow(r.Context(), ip)
			if err != nil {
				logger.FromContext(r.Context()).Warn("rate limiter unavailable", "ip", ip, "error", err)
				next.ServeHTTP(w, r)
				return
			}
			if !ok {
				logger.FromContext(r.Context()).Warn("rate limit exceeded", "ip", ip, "path", r.URL.Path)
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP strips the port from RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
