package app

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"propbets-service/internal/domain"

	"golang.org/x/sync/singleflight"
)

// leaderboardCache memoizes the scored leaderboard with a TTL so result-page
// refreshes do not rescore the whole store on every request. A submit
// invalidates it immediately.
type leaderboardCache struct {
	compute func(ctx context.Context) (domain.Leaderboard, error)
	ttl     time.Duration
	clock   func() time.Time
	sf      singleflight.Group
	rnd     *rand.Rand

	mu        sync.RWMutex
	cached    domain.Leaderboard
	expiresAt time.Time
}

func newLeaderboardCache(compute func(ctx context.Context) (domain.Leaderboard, error), ttl time.Duration) *leaderboardCache {
	return &leaderboardCache{
		compute: compute,
		ttl:     ttl,
		clock:   time.Now,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (c *leaderboardCache) get(ctx context.Context) (domain.Leaderboard, error) {
	if c.ttl <= 0 {
		return c.compute(ctx)
	}

	now := c.clock()
	c.mu.RLock()
	if c.expiresAt.After(now) {
		lb := c.cached
		c.mu.RUnlock()
		return lb, nil
	}
	c.mu.RUnlock()

	result, err, _ := c.sf.Do("leaderboard", func() (interface{}, error) {
		now := c.clock()
		c.mu.RLock()
		if c.expiresAt.After(now) {
			lb := c.cached
			c.mu.RUnlock()
			return lb, nil
		}
		c.mu.RUnlock()

		lb, err := c.compute(ctx)
		if err != nil {
			return domain.Leaderboard{}, err
		}

		c.mu.Lock()
		c.cached = lb
		c.expiresAt = now.Add(c.ttlWithJitter())
		c.mu.Unlock()
		return lb, nil
	})
	if err != nil {
		return domain.Leaderboard{}, err
	}
	return result.(domain.Leaderboard), nil
}

func (c *leaderboardCache) invalidate() {
	c.mu.Lock()
	c.expiresAt = time.Time{}
	c.mu.Unlock()
}

func (c *leaderboardCache) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	// up to 10% jitter to spread expirations
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}
