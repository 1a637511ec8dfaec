package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/elegance/restaurant-backend/internal/app/model"
	"github.com/redis/go-redis/v9"
)

const MenuKey = "menu:categories"

// MenuCache keeps the serialized catalog in Redis
type MenuCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewMenuCache(client redis.Cmdable, ttl time.Duration) *MenuCache {
	return &MenuCache{client: client, ttl: ttl}
}

func (c *MenuCache) Get(ctx context.Context) ([]model.MenuCategory, bool, error) {
	raw, err := c.client.Get(ctx, MenuKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var categories []model.MenuCategory
	if err := json.Unmarshal(raw, &categories); err != nil {
		// unreadable entries are treated as a miss and dropped
		_ = c.client.Del(ctx, MenuKey).Err()
		return nil, false, nil
	}
	return categories, true, nil
}

func (c *MenuCache) Set(ctx context.Context, categories []model.MenuCategory) error {
	raw, err := json.Marshal(categories)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, MenuKey, raw, c.ttl).Err()
}

func (c *MenuCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, MenuKey).Err()
}
