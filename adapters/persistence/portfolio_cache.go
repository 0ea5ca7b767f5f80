package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/careercanvas/api/internal/application/service"
	"github.com/careercanvas/api/internal/domain/portfolio"
)

// redisPortfolioCache caches the public portfolio view. The password hash is
// never serialized (json:"-"), so a cached document is safe to serve on the
// unauthenticated path.
type redisPortfolioCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisPortfolioCache(rdb *redis.Client, ttl time.Duration) service.PortfolioCache {
	return &redisPortfolioCache{rdb: rdb, ttl: ttl}
}

func publicViewKey(id uuid.UUID) string {
	return fmt.Sprintf("portfolio:public:%s", id)
}

func (c *redisPortfolioCache) Get(ctx context.Context, id uuid.UUID) (*portfolio.Portfolio, error) {
	raw, err := c.rdb.Get(ctx, publicViewKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get failed: %w", err)
	}

	p := &portfolio.Portfolio{}
	if err := json.Unmarshal(raw, p); err != nil {
		return nil, fmt.Errorf("cache entry corrupted: %w", err)
	}
	return p, nil
}

func (c *redisPortfolioCache) Set(ctx context.Context, p *portfolio.Portfolio) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("cache marshal failed: %w", err)
	}
	if err := c.rdb.Set(ctx, publicViewKey(p.ID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set failed: %w", err)
	}
	return nil
}

func (c *redisPortfolioCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	if err := c.rdb.Del(ctx, publicViewKey(id)).Err(); err != nil {
		return fmt.Errorf("cache invalidate failed: %w", err)
	}
	return nil
}
