package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Adi-cmrec/lenslink/internal/api/metrics"
	"github.com/Adi-cmrec/lenslink/internal/core/ports"
)

const (
	listingTTL    = 30 * time.Second
	generationKey = "discovery:gen"
)

// ListingCache caches discovery listings in Redis.
// Key format: discovery:<generation>:<city>:<type>. Invalidation bumps the
// generation counter so stale keys simply expire instead of being scanned.
type ListingCache struct {
	client *redis.Client
}

// NewListingCache creates a ListingCache wrapping the given Redis client.
func NewListingCache(client *redis.Client) *ListingCache {
	return &ListingCache{client: client}
}

func (c *ListingCache) Get(ctx context.Context, filter ports.ProfileFilter) ([]ports.ProfileView, bool, error) {
	key, err := c.key(ctx, filter)
	if err != nil {
		return nil, false, err
	}

	raw, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.DiscoveryCacheTotal.WithLabelValues("miss").Inc()
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("listing cache get: %w", err)
	}

	var views []ports.ProfileView
	if err := json.Unmarshal([]byte(raw), &views); err != nil {
		return nil, false, fmt.Errorf("listing cache decode: %w", err)
	}

	metrics.DiscoveryCacheTotal.WithLabelValues("hit").Inc()
	return views, true, nil
}

func (c *ListingCache) Set(ctx context.Context, filter ports.ProfileFilter, views []ports.ProfileView) error {
	key, err := c.key(ctx, filter)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(views)
	if err != nil {
		return fmt.Errorf("listing cache encode: %w", err)
	}
	return c.client.Set(ctx, key, raw, listingTTL).Err()
}

// Invalidate bumps the generation so every previously written listing key is
// unreachable. The orphaned entries age out via their TTL.
func (c *ListingCache) Invalidate(ctx context.Context) error {
	return c.client.Incr(ctx, generationKey).Err()
}

func (c *ListingCache) key(ctx context.Context, filter ports.ProfileFilter) (string, error) {
	gen, err := c.client.Get(ctx, generationKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			return "", fmt.Errorf("listing cache generation: %w", err)
		}
		gen = "0"
	}
	return fmt.Sprintf("discovery:%s:%s:%s",
		gen,
		strings.ToLower(filter.City),
		strings.ToLower(filter.PhotographyType),
	), nil
}
