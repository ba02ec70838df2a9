// Package catalog holds infrastructure shared by the product and supplier
// master-data modules.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a versioned Redis side-cache for the listing endpoints that
// populate the order-form selects. Every create bumps the entity version,
// so a listing issued after a write always observes it. All methods are
// nil-safe: without Redis the services fall through to the database.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache instantiates the cache helper.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func versionKey(entity string) string { return "catalog:" + entity + ":ver" }

func (c *Cache) version(ctx context.Context, entity string) (int64, error) {
	ver, err := c.client.Get(ctx, versionKey(entity)).Int64()
	if errors.Is(err, redis.Nil) {
		if err := c.client.Set(ctx, versionKey(entity), 1, 0).Err(); err != nil {
			return 0, err
		}
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return ver, nil
}

func (c *Cache) listKey(ctx context.Context, entity string) (string, error) {
	ver, err := c.version(ctx, entity)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("catalog:%s:list:%d", entity, ver), nil
}

// GetList loads the cached listing for entity into dest. The boolean
// reports a hit; errors are returned so callers can log and fall through.
func (c *Cache) GetList(ctx context.Context, entity string, dest any) (bool, error) {
	if c == nil || c.client == nil {
		return false, nil
	}
	key, err := c.listKey(ctx, entity)
	if err != nil {
		return false, err
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetList stores the listing for entity under the current version.
func (c *Cache) SetList(ctx context.Context, entity string, value any) error {
	if c == nil || c.client == nil {
		return nil
	}
	key, err := c.listKey(ctx, entity)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, c.ttl).Err()
}

// Invalidate bumps the entity version, orphaning every cached listing.
func (c *Cache) Invalidate(ctx context.Context, entity string) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Incr(ctx, versionKey(entity)).Err()
}
