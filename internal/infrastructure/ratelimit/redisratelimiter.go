package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Sorted-set keys are namespaced so the limiter can share a Redis
// database with session or cache data.
const redisKeyPrefix = "ace:ratelimit"

// RedisRateLimiter is a sliding-window limiter backed by Redis sorted sets,
// for deployments that run more than one server instance. Each key/window
// pair is one set scored by request timestamp.
type RedisRateLimiter struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisRateLimiter(client *redis.Client) RateLimiter {
	return &RedisRateLimiter{
		client: client,
		ctx:    context.Background(),
	}
}

func (l *RedisRateLimiter) Allow(key string, config RateLimitConfig) (bool, error) {
	now := time.Now()

	for _, window := range configWindows(config) {
		if window.limit <= 0 {
			continue
		}

		count, err := l.recordAndCount(key, window.duration, now)
		if err != nil {
			return false, err
		}
		if count >= int64(window.limit) {
			return false, nil
		}
	}

	return true, nil
}

// recordAndCount trims expired entries, counts what remains, and records the
// current request, all in one pipeline round trip. The returned count does
// not include the request being recorded.
func (l *RedisRateLimiter) recordAndCount(key string, window time.Duration, now time.Time) (int64, error) {
	setKey := l.setKey(key, window)
	cutoff := strconv.FormatInt(now.Add(-window).UnixNano(), 10)
	stamp := now.UnixNano()

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(l.ctx, setKey, "0", cutoff)
	card := pipe.ZCard(l.ctx, setKey)
	pipe.ZAdd(l.ctx, setKey, redis.Z{Score: float64(stamp), Member: stamp})
	pipe.Expire(l.ctx, setKey, window+time.Minute)

	if _, err := pipe.Exec(l.ctx); err != nil {
		return 0, fmt.Errorf("rate limit pipeline for %s: %w", setKey, err)
	}

	return card.Val(), nil
}

func (l *RedisRateLimiter) GetRemaining(key string, window time.Duration) (int64, error) {
	setKey := l.setKey(key, window)
	cutoff := strconv.FormatInt(time.Now().Add(-window).UnixNano(), 10)

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(l.ctx, setKey, "0", cutoff)
	card := pipe.ZCard(l.ctx, setKey)

	if _, err := pipe.Exec(l.ctx); err != nil {
		return 0, fmt.Errorf("rate limit count for %s: %w", setKey, err)
	}

	return card.Val(), nil
}

// Reset drops every window tracked for the key.
func (l *RedisRateLimiter) Reset(key string) error {
	pattern := fmt.Sprintf("%s:%s:*", redisKeyPrefix, key)

	iter := l.client.Scan(l.ctx, 0, pattern, 0).Iterator()
	for iter.Next(l.ctx) {
		if err := l.client.Del(l.ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("delete rate limit key %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan rate limit keys: %w", err)
	}

	return nil
}

func (l *RedisRateLimiter) setKey(key string, window time.Duration) string {
	return fmt.Sprintf("%s:%s:%s", redisKeyPrefix, key, window.String())
}
