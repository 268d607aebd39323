package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/skillsenselab/fintrust/errors"
	"github.com/skillsenselab/fintrust/observability"
)

// RateLimitConfig configures a sliding-window rate limiter for one route
// group. The login group and the resource API group run independent
// limiters with their own windows and maximums.
type RateLimitConfig struct {
	// Group names this limiter for metrics.
	Group string
	// Window is the sliding window duration.
	Window time.Duration
	// Max is the number of requests allowed per key per window.
	Max int
	// KeyFunc extracts the rate limit key from a request. Defaults to client IP.
	KeyFunc func(*gin.Context) string
	// Metrics records rejected requests. May be nil.
	Metrics *observability.Metrics
}

// RateLimit returns a Gin middleware that applies per-key sliding-window
// rate limiting. Counters are mutex-guarded; concurrent increments from
// simultaneous requests are safe.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.Window <= 0 {
		cfg.Window = 15 * time.Minute
	}
	if cfg.Max <= 0 {
		cfg.Max = 60
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = IPBasedKey
	}

	rl := &rateLimiter{
		requests:  make(map[string][]time.Time),
		window:    cfg.Window,
		limit:     cfg.Max,
		lastSweep: time.Now(),
	}

	return func(c *gin.Context) {
		key := cfg.KeyFunc(c)
		if !rl.allow(key) {
			cfg.Metrics.RecordRateLimited(c.Request.Context(), cfg.Group)
			appErr := apperrors.RateLimited()
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
			return
		}
		c.Next()
	}
}

// IPBasedKey extracts the client IP for use as a rate limit key.
func IPBasedKey(c *gin.Context) string {
	return c.ClientIP()
}

type rateLimiter struct {
	mu        sync.Mutex
	requests  map[string][]time.Time
	window    time.Duration
	limit     int
	lastSweep time.Time
}

func (rl *rateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-rl.window)

	// Abandoned keys are swept on the request path rather than by a
	// background goroutine, so a limiter needs no teardown.
	if now.Sub(rl.lastSweep) >= rl.window {
		rl.sweep(cutoff)
		rl.lastSweep = now
	}

	valid := filterByTime(rl.requests[key], cutoff)
	if len(valid) >= rl.limit {
		rl.requests[key] = valid
		return false
	}
	rl.requests[key] = append(valid, now)
	return true
}

// sweep drops expired entries for every key. Callers must hold the mutex.
func (rl *rateLimiter) sweep(cutoff time.Time) {
	for key, times := range rl.requests {
		valid := filterByTime(times, cutoff)
		if len(valid) == 0 {
			delete(rl.requests, key)
		} else {
			rl.requests[key] = valid
		}
	}
}

func filterByTime(times []time.Time, cutoff time.Time) []time.Time {
	var result []time.Time
	for _, t := range times {
		if t.After(cutoff) {
			result = append(result, t)
		}
	}
	return result
}
