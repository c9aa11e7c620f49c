package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig describes one fixed-window limit.
type RateLimitConfig struct {
	Limit  int
	Window time.Duration
	// KeyPrefix namespaces the counters, e.g. "rl:contact:".
	KeyPrefix string
	// KeyFunc picks the bucket for a request (client IP when nil).
	KeyFunc func(*gin.Context) string
	// FailClosed rejects requests with 503 when Redis errors instead of counting in memory.
	FailClosed bool
}

func ipLimit(prefix string, limit, fallback int, window time.Duration) RateLimitConfig {
	if limit <= 0 {
		limit = fallback
	}
	if window <= 0 {
		window = time.Minute
	}
	return RateLimitConfig{Limit: limit, Window: window, KeyPrefix: prefix}
}

// GlobalRateLimitConfig covers every /api request from one IP.
func GlobalRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return ipLimit("rl:ip:", limit, 100, window)
}

// ContactRateLimitConfig limits contact form submissions per client IP.
func ContactRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return ipLimit("rl:contact:", limit, 5, window)
}

// AuthRateLimitConfig is the strict limit on the sign-in endpoints.
func AuthRateLimitConfig() RateLimitConfig {
	return ipLimit("rl:auth:", 10, 10, time.Minute)
}

// counter increments the hit count for key within window and reports when the window resets.
type counter interface {
	hit(ctx context.Context, key string, window time.Duration) (int, time.Time, error)
}

// KEYS[1] = counter key, ARGV[1] = window in seconds. Returns {count, ttl}.
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

type redisCounter struct {
	client *goredis.Client
}

func (r redisCounter) hit(ctx context.Context, key string, window time.Duration) (int, time.Time, error) {
	result, err := r.client.Eval(ctx, rateLimitLuaScript, []string{key}, int(window.Seconds())).Result()
	if err != nil {
		return 0, time.Time{}, err
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, errors.New("unexpected redis result format")
	}
	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)
	return int(count), time.Now().Add(time.Duration(ttl) * time.Second), nil
}

type bucket struct {
	count   int
	resetAt time.Time
}

// memoryCounter is the per-process fallback. Expired windows are swept lazily.
type memoryCounter struct {
	mu        sync.Mutex
	windows   map[string]*bucket
	nextSweep time.Time
}

func newMemoryCounter() *memoryCounter {
	return &memoryCounter{windows: make(map[string]*bucket)}
}

func (m *memoryCounter) hit(_ context.Context, key string, d time.Duration) (int, time.Time, error) {
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	if now.After(m.nextSweep) {
		for k, w := range m.windows {
			if now.After(w.resetAt) {
				delete(m.windows, k)
			}
		}
		m.nextSweep = now.Add(5 * time.Minute)
	}

	w, ok := m.windows[key]
	if !ok || now.After(w.resetAt) {
		w = &bucket{resetAt: now.Add(d)}
		m.windows[key] = w
	}
	w.count++
	return w.count, w.resetAt, nil
}

// RateLimitMiddleware counts in Redis when it is configured and in memory otherwise.
// A Redis failure falls back to memory unless FailClosed is set.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	keyFunc := config.KeyFunc
	if keyFunc == nil {
		keyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}
	memory := newMemoryCounter()

	return func(c *gin.Context) {
		key := config.KeyPrefix + keyFunc(c)

		var backend counter = memory
		if client := redis.Client(); client != nil {
			backend = redisCounter{client: client}
		}

		count, resetAt, err := backend.hit(c.Request.Context(), key, config.Window)
		if err != nil {
			logger.Log.Error("Rate limiter backend failure", "error", err, "ip", c.ClientIP())
			if config.FailClosed {
				response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.")
				c.Abort()
				return
			}
			count, resetAt, _ = memory.hit(c.Request.Context(), key, config.Window)
		}

		remaining := config.Limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		if count > config.Limit {
			retryAfter := int(time.Until(resetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			logger.Log.Warn("Rate limit triggered",
				"ip", c.ClientIP(),
				"path", c.FullPath(),
				"request_id", response.RequestID(c),
			)
			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
			c.Abort()
			return
		}

		c.Next()
	}
}

func GlobalRateLimitMiddleware(limit int, window time.Duration) gin.HandlerFunc {
	return RateLimitMiddleware(GlobalRateLimitConfig(limit, window))
}

// StrictRateLimitMiddleware guards the sign-in endpoints.
func StrictRateLimitMiddleware() gin.HandlerFunc {
	return RateLimitMiddleware(AuthRateLimitConfig())
}
