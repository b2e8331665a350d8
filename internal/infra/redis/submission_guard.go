package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SubmissionGuard takes a short-lived SETNX lock per participant so two
// submits racing past the already-submitted check cannot both write, even
// across service instances sharing one store.
// Keys: submit:lock:{participantName}
type SubmissionGuard struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSubmissionGuard(client *redis.Client, ttl time.Duration) *SubmissionGuard {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &SubmissionGuard{client: client, ttl: ttl}
}

func (g *SubmissionGuard) Acquire(ctx context.Context, name string) (func(), bool, error) {
	key := g.key(name)
	ok, err := g.client.SetNX(ctx, key, "1", g.ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("acquire submit lock: %w", err)
	}
	if !ok {
		return nil, false, nil
	}
	release := func() {
		// Best effort; the TTL reclaims the lock if this is lost.
		_ = g.client.Del(context.Background(), key).Err()
	}
	return release, true, nil
}

func (g *SubmissionGuard) key(name string) string {
	return "submit:lock:" + name
}
