package filings

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Cache keeps rendered previews in Redis so repeated review requests do
// not recompose the document. Keys embed the filing's update timestamp,
// so edits invalidate naturally and stale entries simply expire.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache instantiates the preview cache. A nil client disables
// caching and every fetch falls through to the loader.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func previewKey(id uuid.UUID, updatedAt time.Time) string {
	return fmt.Sprintf("filings:preview:%s:%d", id, updatedAt.UnixNano())
}

// FetchPreview loads a cached preview or populates it via the loader.
func (c *Cache) FetchPreview(ctx context.Context, id uuid.UUID, updatedAt time.Time, loader func(context.Context) (string, error)) (string, error) {
	if c == nil || c.client == nil {
		return loader(ctx)
	}
	key := previewKey(id, updatedAt)
	cached, err := c.client.Get(ctx, key).Result()
	if err == nil {
		return cached, nil
	}
	if err != redis.Nil {
		return "", err
	}
	value, err := loader(ctx)
	if err != nil {
		return "", err
	}
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		return "", err
	}
	return value, nil
}
