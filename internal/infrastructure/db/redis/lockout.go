package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LockoutStore keeps per-account login failure counters in Redis.
// Key format: lockout:<email>. The key expires with the window, so a locked
// account unlocks itself when the window lapses; nothing is written to the
// identity store on bad credentials.
type LockoutStore struct {
	client      *redis.Client
	maxAttempts int64
	window      time.Duration
}

// NewLockoutStore creates a LockoutStore. maxAttempts failures inside window
// lock the account until the window expires.
func NewLockoutStore(client *redis.Client, maxAttempts int, window time.Duration) *LockoutStore {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &LockoutStore{client: client, maxAttempts: int64(maxAttempts), window: window}
}

// Locked reports whether the account has reached the failure threshold.
func (s *LockoutStore) Locked(ctx context.Context, email string) (bool, error) {
	n, err := s.client.Get(ctx, s.key(email)).Int64()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("lockout check: %w", err)
	}
	return n >= s.maxAttempts, nil
}

// RecordFailure increments the failure counter and returns the new count.
// The expiry is refreshed on every failure (sliding window).
func (s *LockoutStore) RecordFailure(ctx context.Context, email string) (int64, error) {
	key := s.key(email)

	n, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("lockout incr: %w", err)
	}
	if err := s.client.Expire(ctx, key, s.window).Err(); err != nil {
		return n, fmt.Errorf("lockout expire: %w", err)
	}
	return n, nil
}

// Clear removes the failure counter after a successful sign-in.
func (s *LockoutStore) Clear(ctx context.Context, email string) error {
	return s.client.Del(ctx, s.key(email)).Err()
}

func (s *LockoutStore) key(email string) string {
	return "lockout:" + email
}
