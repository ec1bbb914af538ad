package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCacheRepo(t *testing.T) (*IncidentRepository, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return &IncidentRepository{redisClient: client, cacheTTL: time.Minute}, mr
}

func TestAggregateCache_SetAndGet(t *testing.T) {
	repo, _ := newCacheRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetAggregateCache(ctx, "abc", []byte(`{"total":42}`)))

	data, err := repo.GetAggregateCache(ctx, "abc")
	require.NoError(t, err)
	assert.JSONEq(t, `{"total":42}`, string(data))
}

func TestAggregateCache_MissReturnsNil(t *testing.T) {
	repo, _ := newCacheRepo(t)

	data, err := repo.GetAggregateCache(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestAggregateCache_EntryExpires(t *testing.T) {
	repo, mr := newCacheRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetAggregateCache(ctx, "abc", []byte("x")))
	mr.FastForward(2 * time.Minute)

	data, err := repo.GetAggregateCache(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestFlushAggregateCache(t *testing.T) {
	repo, mr := newCacheRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetAggregateCache(ctx, "one", []byte("1")))
	require.NoError(t, repo.SetAggregateCache(ctx, "two", []byte("2")))
	// Keys outside the aggregate namespace must survive a flush.
	mr.Set("webhook_events", "queued")

	require.NoError(t, repo.FlushAggregateCache(ctx))

	data, err := repo.GetAggregateCache(ctx, "one")
	require.NoError(t, err)
	assert.Nil(t, data)
	assert.True(t, mr.Exists("webhook_events"))
}
