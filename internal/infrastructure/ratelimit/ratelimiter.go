package ratelimit

import "time"

type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
	RequestsPerDay    int
}

type RateLimiter interface {
	Allow(key string, config RateLimitConfig) (bool, error)
	GetRemaining(key string, window time.Duration) (int64, error)
	Reset(key string) error
}

type limitWindow struct {
	duration time.Duration
	limit    int
}

// configWindows lists the tracked windows tightest first. A window with a
// non-positive limit is unenforced.
func configWindows(config RateLimitConfig) []limitWindow {
	return []limitWindow{
		{time.Minute, config.RequestsPerMinute},
		{time.Hour, config.RequestsPerHour},
		{24 * time.Hour, config.RequestsPerDay},
	}
}
