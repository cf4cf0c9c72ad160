package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"link-resolver/services/resolver/model"

	"github.com/redis/go-redis/v9"
	"github.com/zeromicro/go-zero/core/logx"
)

const linkCachePrefix = "link:"

// LinkCache sits in front of the link store on the hot path. Cache
// failures must never fail a lookup: implementations degrade to a miss
// and let the store answer.
type LinkCache interface {
	// Get returns nil, nil on a cache miss.
	Get(ctx context.Context, shortCode string) (*model.Links, error)

	// Set stores an active link under its short code.
	Set(ctx context.Context, link *model.Links) error

	// Invalidate removes a short code from the cache.
	Invalidate(ctx context.Context, shortCode string) error
}

// Compile-time interface checks
var (
	_ LinkCache = (*RedisLinkCache)(nil)
	_ LinkCache = (*noopLinkCache)(nil)
)

// RedisLinkCache implements LinkCache using Redis with a TTL per entry.
type RedisLinkCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisLinkCache creates a Redis-backed link cache. Returns a no-op
// cache if the Redis client is nil, so the resolver runs unchanged
// without Redis configured.
func NewRedisLinkCache(rdb *redis.Client, ttl time.Duration) LinkCache {
	if rdb == nil {
		return &noopLinkCache{}
	}
	return &RedisLinkCache{
		rdb: rdb,
		ttl: ttl,
	}
}

// cachedLink is the serialization format for cached links.
type cachedLink struct {
	Id          string     `json:"id"`
	ShortCode   string     `json:"short_code"`
	OriginalUrl string     `json:"original_url"`
	IsActive    bool       `json:"is_active"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func cacheKey(shortCode string) string {
	return linkCachePrefix + shortCode
}

func (c *RedisLinkCache) Get(ctx context.Context, shortCode string) (*model.Links, error) {
	data, err := c.rdb.Get(ctx, cacheKey(shortCode)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		logx.WithContext(ctx).Errorw("link cache get failed, treating as miss",
			logx.Field("code", shortCode),
			logx.Field("error", err.Error()),
		)
		return nil, nil
	}

	var cached cachedLink
	if err := json.Unmarshal(data, &cached); err != nil {
		logx.WithContext(ctx).Errorw("corrupt link cache entry, treating as miss",
			logx.Field("code", shortCode),
			logx.Field("error", err.Error()),
		)
		return nil, nil
	}

	link := &model.Links{
		Id:          cached.Id,
		ShortCode:   cached.ShortCode,
		OriginalUrl: cached.OriginalUrl,
		IsActive:    cached.IsActive,
		CreatedAt:   cached.CreatedAt,
		UpdatedAt:   cached.UpdatedAt,
	}
	if cached.ExpiresAt != nil {
		link.ExpiresAt = sql.NullTime{Time: *cached.ExpiresAt, Valid: true}
	}
	return link, nil
}

func (c *RedisLinkCache) Set(ctx context.Context, link *model.Links) error {
	cached := cachedLink{
		Id:          link.Id,
		ShortCode:   link.ShortCode,
		OriginalUrl: link.OriginalUrl,
		IsActive:    link.IsActive,
		CreatedAt:   link.CreatedAt,
		UpdatedAt:   link.UpdatedAt,
	}
	if link.ExpiresAt.Valid {
		expiresAt := link.ExpiresAt.Time
		cached.ExpiresAt = &expiresAt
	}

	data, err := json.Marshal(cached)
	if err != nil {
		logx.WithContext(ctx).Errorw("failed to marshal link for cache",
			logx.Field("code", link.ShortCode),
			logx.Field("error", err.Error()),
		)
		return nil
	}

	if err := c.rdb.Set(ctx, cacheKey(link.ShortCode), data, c.ttl).Err(); err != nil {
		logx.WithContext(ctx).Errorw("failed to cache link",
			logx.Field("code", link.ShortCode),
			logx.Field("error", err.Error()),
		)
	}
	return nil
}

func (c *RedisLinkCache) Invalidate(ctx context.Context, shortCode string) error {
	if err := c.rdb.Del(ctx, cacheKey(shortCode)).Err(); err != nil {
		logx.WithContext(ctx).Errorw("failed to invalidate link cache",
			logx.Field("code", shortCode),
			logx.Field("error", err.Error()),
		)
	}
	return nil
}

// noopLinkCache is used when no Redis address is configured.
type noopLinkCache struct{}

func (c *noopLinkCache) Get(context.Context, string) (*model.Links, error) {
	return nil, nil
}

func (c *noopLinkCache) Set(context.Context, *model.Links) error {
	return nil
}

func (c *noopLinkCache) Invalidate(context.Context, string) error {
	return nil
}
