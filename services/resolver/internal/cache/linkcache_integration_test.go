//go:build integration

package cache_test

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"link-resolver/services/resolver/internal/cache"
	"link-resolver/services/resolver/model"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

// skipIfShort skips the test in short mode or when SKIP_INTEGRATION is set
func skipIfShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if os.Getenv("SKIP_INTEGRATION") != "" {
		t.Skip("Skipping integration test (SKIP_INTEGRATION set)")
	}
}

func setupRedis(t *testing.T) (*redis.Client, func()) {
	t.Helper()
	ctx := context.Background()

	container, err := tcredis.Run(ctx,
		"redis:7-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Ready to accept connections").WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: endpoint})

	cleanup := func() {
		rdb.Close()
		container.Terminate(ctx)
	}

	return rdb, cleanup
}

func TestRedisLinkCache_RoundTrip(t *testing.T) {
	skipIfShort(t)
	rdb, cleanup := setupRedis(t)
	defer cleanup()

	linkCache := cache.NewRedisLinkCache(rdb, 10*time.Minute)
	ctx := context.Background()

	expiresAt := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	link := &model.Links{
		Id:          "0198c2a4-0000-7abc-8000-000000000001",
		ShortCode:   "cachehit",
		OriginalUrl: "https://example.com/cached-page",
		IsActive:    true,
		ExpiresAt:   sql.NullTime{Time: expiresAt, Valid: true},
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
		UpdatedAt:   time.Now().UTC().Truncate(time.Second),
	}

	require.NoError(t, linkCache.Set(ctx, link))

	got, err := linkCache.Get(ctx, "cachehit")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, link.Id, got.Id)
	assert.Equal(t, link.ShortCode, got.ShortCode)
	assert.Equal(t, link.OriginalUrl, got.OriginalUrl)
	assert.True(t, got.IsActive)
	require.True(t, got.ExpiresAt.Valid, "expires_at must survive the round trip")
	assert.True(t, expiresAt.Equal(got.ExpiresAt.Time))
}

func TestRedisLinkCache_RoundTripWithoutExpiry(t *testing.T) {
	skipIfShort(t)
	rdb, cleanup := setupRedis(t)
	defer cleanup()

	linkCache := cache.NewRedisLinkCache(rdb, 10*time.Minute)
	ctx := context.Background()

	link := &model.Links{
		Id:          "0198c2a4-0000-7abc-8000-000000000002",
		ShortCode:   "noexpiry",
		OriginalUrl: "https://example.com/forever",
		IsActive:    true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	require.NoError(t, linkCache.Set(ctx, link))

	got, err := linkCache.Get(ctx, "noexpiry")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.ExpiresAt.Valid, "a link without expiry must come back without one")
}

func TestRedisLinkCache_MissReturnsNil(t *testing.T) {
	skipIfShort(t)
	rdb, cleanup := setupRedis(t)
	defer cleanup()

	linkCache := cache.NewRedisLinkCache(rdb, 10*time.Minute)

	got, err := linkCache.Get(context.Background(), "nevercached")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisLinkCache_EntryExpiresAfterTTL(t *testing.T) {
	skipIfShort(t)
	rdb, cleanup := setupRedis(t)
	defer cleanup()

	linkCache := cache.NewRedisLinkCache(rdb, time.Second)
	ctx := context.Background()

	link := &model.Links{
		Id:          "0198c2a4-0000-7abc-8000-000000000003",
		ShortCode:   "shortlived",
		OriginalUrl: "https://example.com/ttl",
		IsActive:    true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, linkCache.Set(ctx, link))

	got, err := linkCache.Get(ctx, "shortlived")
	require.NoError(t, err)
	require.NotNil(t, got, "entry must be readable before the TTL elapses")

	time.Sleep(1500 * time.Millisecond)

	got, err = linkCache.Get(ctx, "shortlived")
	require.NoError(t, err)
	assert.Nil(t, got, "entry must be gone after the TTL elapses")
}

func TestRedisLinkCache_CorruptEntryIsAMiss(t *testing.T) {
	skipIfShort(t)
	rdb, cleanup := setupRedis(t)
	defer cleanup()

	linkCache := cache.NewRedisLinkCache(rdb, 10*time.Minute)
	ctx := context.Background()

	// Write garbage under the key the cache would use for this code.
	require.NoError(t, rdb.Set(ctx, "link:corrupted", "{not json", 0).Err())

	got, err := linkCache.Get(ctx, "corrupted")
	require.NoError(t, err, "a corrupt entry must degrade to a miss, not an error")
	assert.Nil(t, got)
}

func TestRedisLinkCache_Invalidate(t *testing.T) {
	skipIfShort(t)
	rdb, cleanup := setupRedis(t)
	defer cleanup()

	linkCache := cache.NewRedisLinkCache(rdb, 10*time.Minute)
	ctx := context.Background()

	link := &model.Links{
		Id:          "0198c2a4-0000-7abc-8000-000000000004",
		ShortCode:   "evictme",
		OriginalUrl: "https://example.com/stale",
		IsActive:    true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, linkCache.Set(ctx, link))

	got, err := linkCache.Get(ctx, "evictme")
	require.NoError(t, err)
	require.NotNil(t, got)

	require.NoError(t, linkCache.Invalidate(ctx, "evictme"))

	got, err = linkCache.Get(ctx, "evictme")
	require.NoError(t, err)
	assert.Nil(t, got, "an invalidated code must miss on the next lookup")

	// Invalidating a code that was never cached is a no-op.
	require.NoError(t, linkCache.Invalidate(ctx, "nevercached"))
}
