// Package ratelimit bounds request rate per client.
package ratelimit

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// Config is the token bucket applied to each new client.
type Config struct {
	RequestsPerSecond float64
	BurstSize         int
}

// DefaultConfig returns the limits applied when none are set.
func DefaultConfig() Config {
	return Config{
		RequestsPerSecond: 10,
		BurstSize:         20,
	}
}

// ClientLimiter tracks one token bucket per client key.
type ClientLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	defaults Config
}

// NewClientLimiter returns a ClientLimiter creating buckets from cfg.
func NewClientLimiter(cfg Config) *ClientLimiter {
	return &ClientLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: cfg,
	}
}

// Get returns the limiter for key, creating it on first use.
func (l *ClientLimiter) Get(key string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[key]
	l.mu.RUnlock()

	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, exists = l.limiters[key]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(l.defaults.RequestsPerSecond), l.defaults.BurstSize)
	l.limiters[key] = limiter
	return limiter
}

// Middleware rejects requests exceeding the client's budget with 429.
func (l *ClientLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !l.Get(c.RealIP()).Allow() {
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"error": "rate_limited",
				})
			}
			return next(c)
		}
	}
}
