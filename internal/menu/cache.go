package menu

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Cache wraps Redis helpers for cached menu payloads. A nil client disables
// caching entirely; all helpers degrade to no-ops.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache constructs a cache helper.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func itemKey(id uuid.UUID) string { return "menu:item:" + id.String() }

func listKey(kind ItemKind) string {
	if kind == "" {
		return "menu:list:all"
	}
	return "menu:list:" + string(kind)
}

// GetItem returns a cached item and whether it was present.
func (c *Cache) GetItem(ctx context.Context, id uuid.UUID) (Item, bool) {
	var item Item
	ok := c.getJSON(ctx, itemKey(id), &item)
	return item, ok
}

// SetItem caches an item under its id.
func (c *Cache) SetItem(ctx context.Context, item Item) {
	c.setJSON(ctx, itemKey(item.ID), item)
}

// GetList returns a cached item list for the kind filter.
func (c *Cache) GetList(ctx context.Context, kind ItemKind) ([]Item, bool) {
	var items []Item
	ok := c.getJSON(ctx, listKey(kind), &items)
	return items, ok
}

// SetList caches an item list under the kind filter.
func (c *Cache) SetList(ctx context.Context, kind ItemKind, items []Item) {
	c.setJSON(ctx, listKey(kind), items)
}

// Invalidate drops the cached item and every list that may contain it.
func (c *Cache) Invalidate(ctx context.Context, item Item) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Del(ctx,
		itemKey(item.ID),
		listKey(""),
		listKey(item.Kind),
	).Err()
}

func (c *Cache) getJSON(ctx context.Context, key string, dst any) bool {
	if c == nil || c.client == nil || key == "" {
		return false
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dst) == nil
}

func (c *Cache) setJSON(ctx context.Context, key string, v any) {
	if c == nil || c.client == nil || key == "" || c.ttl <= 0 {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, key, data, c.ttl).Err()
}
