package ratelimit

import (
	"sync"
	"time"
)

// MemoryRateLimiter is a sliding-window limiter held in process memory.
// It is the default when Redis is not configured; counts are per instance.
type MemoryRateLimiter struct {
	mu      sync.Mutex
	entries map[string][]time.Time
}

func NewMemoryRateLimiter() RateLimiter {
	return &MemoryRateLimiter{
		entries: make(map[string][]time.Time),
	}
}

func (l *MemoryRateLimiter) Allow(key string, config RateLimitConfig) (bool, error) {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	// Drop everything older than the widest window we track.
	stamps := l.prune(key, now, 24*time.Hour)

	for _, window := range configWindows(config) {
		if window.limit <= 0 {
			continue
		}
		if countSince(stamps, now.Add(-window.duration)) >= window.limit {
			return false, nil
		}
	}

	l.entries[key] = append(stamps, now)
	return true, nil
}

func (l *MemoryRateLimiter) GetRemaining(key string, window time.Duration) (int64, error) {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	stamps := l.prune(key, now, 24*time.Hour)
	return int64(countSince(stamps, now.Add(-window))), nil
}

func (l *MemoryRateLimiter) Reset(key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.entries, key)
	return nil
}

// prune removes timestamps older than keep and returns the surviving slice.
// Caller must hold the mutex.
func (l *MemoryRateLimiter) prune(key string, now time.Time, keep time.Duration) []time.Time {
	stamps := l.entries[key]
	cutoff := now.Add(-keep)

	i := 0
	for i < len(stamps) && !stamps[i].After(cutoff) {
		i++
	}
	if i > 0 {
		stamps = stamps[i:]
		if len(stamps) == 0 {
			delete(l.entries, key)
		} else {
			l.entries[key] = stamps
		}
	}
	return stamps
}

func countSince(stamps []time.Time, cutoff time.Time) int {
	count := 0
	for i := len(stamps) - 1; i >= 0; i-- {
		if stamps[i].After(cutoff) {
			count++
		} else {
			break
		}
	}
	return count
}
