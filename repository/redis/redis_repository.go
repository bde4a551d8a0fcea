package redis

import (
	"context"
	"time"

	redisclient "github.com/muhammadheryan/course-platform/cmd/redis"
)

// Repository stores short-lived operator state in Redis: JWT sessions keyed
// by jti, and the broadcast lock. Every method degrades to a no-op when the
// client was never initialized so the bot can run without Redis in dev.
type Repository interface {
	SetSession(ctx context.Context, sessionID string, adminID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error
	AcquireBroadcastLock(ctx context.Context, ttl time.Duration) (bool, error)
	ReleaseBroadcastLock(ctx context.Context) error
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

const broadcastLockKey = "broadcast:lock"

// SetSession stores a session with adminID and TTL
func (r *redis) SetSession(ctx context.Context, sessionID string, adminID uint64, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	key := "session:" + sessionID
	return client.Set(ctx, key, adminID, ttl).Err()
}

// GetSession retrieves adminID from session
func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, nil
	}
	key := "session:" + sessionID
	val, err := client.Get(ctx, key).Uint64()
	if err != nil {
		return 0, err
	}
	return val, nil
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	key := "session:" + sessionID
	return client.Del(ctx, key).Err()
}

// AcquireBroadcastLock takes the broadcast lock; false means a broadcast is
// already running. Without Redis the lock always succeeds.
func (r *redis) AcquireBroadcastLock(ctx context.Context, ttl time.Duration) (bool, error) {
	client := redisclient.Get()
	if client == nil {
		return true, nil
	}
	return client.SetNX(ctx, broadcastLockKey, 1, ttl).Result()
}

func (r *redis) ReleaseBroadcastLock(ctx context.Context) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, broadcastLockKey).Err()
}
