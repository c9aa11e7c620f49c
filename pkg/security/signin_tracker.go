package security

import (
	"context"
	"errors"
	"fmt"
	"time"

	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/redis"

	goredis "github.com/redis/go-redis/v9"
)

// SignInTrackerConfig holds configuration for sign-in failure tracking
type SignInTrackerConfig struct {
	MaxAttempts   int           // failed callbacks before a block (default: 5)
	AttemptWindow time.Duration // window the failures are counted in (default: 15min)
	BlockDuration time.Duration // how long a block lasts (default: 15min)
}

func DefaultSignInTrackerConfig() SignInTrackerConfig {
	return SignInTrackerConfig{
		MaxAttempts:   5,
		AttemptWindow: 15 * time.Minute,
		BlockDuration: 15 * time.Minute,
	}
}

// SignInTracker counts rejected OAuth callbacks per client IP and blocks an IP
// that keeps failing. Without Redis it fails open.
type SignInTracker struct {
	config SignInTrackerConfig
	client func() *goredis.Client
}

func NewSignInTracker(config SignInTrackerConfig) *SignInTracker {
	return &SignInTracker{
		config: config,
		client: redis.Client,
	}
}

const (
	failSignInPrefix    = "fail:signin:ip:"
	blockedSignInPrefix = "blocked:signin:ip:"
)

// KEYS[1] = counter key, ARGV[1] = TTL in seconds. Returns the count after increment.
const incrWithTTLScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return count
`

func (t *SignInTracker) IsBlocked(ctx context.Context, ip string) (bool, error) {
	client := t.client()
	if client == nil || ip == "" {
		return false, nil
	}

	exists, err := client.Exists(ctx, blockedSignInPrefix+ip).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check sign-in block: %w", err)
	}
	return exists > 0, nil
}

// RecordFailure counts a rejected callback and reports whether ip is now blocked.
func (t *SignInTracker) RecordFailure(ctx context.Context, ip, reason string) (bool, error) {
	client := t.client()
	if client == nil || ip == "" {
		return false, nil
	}

	count, err := t.increment(ctx, client, failSignInPrefix+ip, int(t.config.AttemptWindow.Seconds()))
	if err != nil {
		return false, fmt.Errorf("failed to count sign-in failure: %w", err)
	}
	logger.Log.Warn("Sign-in rejected", "ip", ip, "reason", reason, "attempts", count)

	if count < t.config.MaxAttempts {
		return false, nil
	}

	if err := client.Set(ctx, blockedSignInPrefix+ip, "1", t.config.BlockDuration).Err(); err != nil {
		return true, fmt.Errorf("failed to set sign-in block: %w", err)
	}
	logger.Log.Warn("Sign-in blocked", "ip", ip, "minutes", int(t.config.BlockDuration.Minutes()))
	return true, nil
}

// Clear drops the failure count after a successful sign-in.
func (t *SignInTracker) Clear(ctx context.Context, ip string) error {
	client := t.client()
	if client == nil || ip == "" {
		return nil
	}
	return client.Del(ctx, failSignInPrefix+ip).Err()
}

func (t *SignInTracker) increment(ctx context.Context, client *goredis.Client, key string, ttlSeconds int) (int, error) {
	result, err := client.Eval(ctx, incrWithTTLScript, []string{key}, ttlSeconds).Result()
	if err != nil {
		return 0, err
	}
	count, ok := result.(int64)
	if !ok {
		return 0, errors.New("unexpected result type from Lua script")
	}
	return int(count), nil
}
