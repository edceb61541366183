package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"startup-hub-api/internal/metrics"
)

// ListOptions controls a listing read
type ListOptions struct {
	// IncludeInactive returns non-public rows too; the router only sets
	// it for verified admin requests
	IncludeInactive bool
	// IncludePast keeps rows whose deadline already passed
	IncludePast bool
}

// Public reports whether the read is the plain public listing, the only
// variant worth caching
func (o ListOptions) Public() bool {
	return !o.IncludeInactive && !o.IncludePast
}

// ListingCache keeps public listing payloads in redis. Every method is
// best effort: a nil client or a redis failure falls through to the DB,
// and invalidation failures only log. The TTL bounds staleness when an
// invalidation is lost.
type ListingCache struct {
	client  *redis.Client
	ttl     time.Duration
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewListingCache creates a listing cache. client may be nil, which
// disables caching entirely.
func NewListingCache(client *redis.Client, ttl time.Duration, m *metrics.Metrics, logger *zap.Logger) *ListingCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ListingCache{client: client, ttl: ttl, metrics: m, logger: logger}
}

func (c *ListingCache) key(entity string) string {
	return "listing:" + entity
}

// Get loads the cached listing for entity into dest and reports a hit
func (c *ListingCache) Get(ctx context.Context, entity string, dest interface{}) bool {
	if c == nil || c.client == nil {
		return false
	}
	data, err := c.client.Get(ctx, c.key(entity)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("リスティングキャッシュの取得に失敗", zap.String("entity", entity), zap.Error(err))
		}
		c.recordResult(entity, "miss")
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		c.logger.Warn("リスティングキャッシュの復元に失敗", zap.String("entity", entity), zap.Error(err))
		c.recordResult(entity, "miss")
		return false
	}
	c.recordResult(entity, "hit")
	return true
}

// Set stores the listing for entity
func (c *ListingCache) Set(ctx context.Context, entity string, value interface{}) {
	if c == nil || c.client == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("リスティングキャッシュの直列化に失敗", zap.String("entity", entity), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, c.key(entity), data, c.ttl).Err(); err != nil {
		c.logger.Warn("リスティングキャッシュの保存に失敗", zap.String("entity", entity), zap.Error(err))
	}
}

// Invalidate drops the cached listing for entity after an admin write
func (c *ListingCache) Invalidate(ctx context.Context, entity string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, c.key(entity)).Err(); err != nil {
		c.logger.Warn("リスティングキャッシュの無効化に失敗", zap.String("entity", entity), zap.Error(err))
	}
}

func (c *ListingCache) recordResult(entity, result string) {
	if c.metrics != nil {
		c.metrics.RecordListingCache(entity, result)
	}
}
