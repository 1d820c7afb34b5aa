package rediscache_test

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carrierops/internal/adapters/out/rediscache"
	"carrierops/internal/core/domain/model/kernel"
	"carrierops/internal/core/domain/model/load"
)

func setupCache(t *testing.T) (*rediscache.RedisLoadCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return rediscache.NewRedisLoadCache(client), server
}

func cachedTestLoad(t *testing.T, fleetID kernel.UUID) *load.Load {
	t.Helper()

	now := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	pickup, err := load.NewStop(load.StopPickup, 0, now.Add(time.Hour))
	require.NoError(t, err)
	delivery, err := load.NewStop(load.StopDelivery, 1, now.Add(2*time.Hour))
	require.NoError(t, err)

	l, err := load.NewLoad(kernel.NewUUID(), fleetID, []load.Stop{pickup, delivery}, false, now)
	require.NoError(t, err)
	return l
}

func TestRedisLoadCache_PutThenGet_RoundTrip(t *testing.T) {
	cache, _ := setupCache(t)
	fleetID := kernel.NewUUID()
	original := cachedTestLoad(t, fleetID)

	require.NoError(t, cache.PutLoad(t.Context(), original))

	cached, err := cache.GetLoad(t.Context(), fleetID, original.ID())
	require.NoError(t, err)
	require.NotNil(t, cached)

	assert.True(t, original.ID().IsEqual(cached.ID()))
	assert.True(t, fleetID.IsEqual(cached.FleetID()))
	assert.Equal(t, load.Unassigned, cached.Status())
	assert.Nil(t, cached.DriverID())
	assert.True(t, original.UpdatedAt().Equal(cached.UpdatedAt()))

	stops := cached.Stops()
	require.Len(t, stops, 2)
	assert.Equal(t, load.StopPickup, stops[0].Type())
	assert.False(t, stops[0].IsCompleted())
}

func TestRedisLoadCache_Get_MissReturnsNilNil(t *testing.T) {
	cache, _ := setupCache(t)

	cached, err := cache.GetLoad(t.Context(), kernel.NewUUID(), kernel.NewUUID())
	assert.NoError(t, err)
	assert.Nil(t, cached)
}

func TestRedisLoadCache_Get_OtherFleetIsAMiss(t *testing.T) {
	cache, _ := setupCache(t)
	fleetID := kernel.NewUUID()
	l := cachedTestLoad(t, fleetID)

	require.NoError(t, cache.PutLoad(t.Context(), l))

	cached, err := cache.GetLoad(t.Context(), kernel.NewUUID(), l.ID())
	assert.NoError(t, err)
	assert.Nil(t, cached)
}

func TestRedisLoadCache_Get_CorruptDocumentIsAMiss(t *testing.T) {
	cache, server := setupCache(t)
	fleetID, loadID := kernel.NewUUID(), kernel.NewUUID()

	key := "fleet:" + fleetID.String() + ":load:" + loadID.String()
	require.NoError(t, server.Set(key, "not json"))

	cached, err := cache.GetLoad(t.Context(), fleetID, loadID)
	assert.NoError(t, err)
	assert.Nil(t, cached)
}

func TestRedisLoadCache_Get_DownedServerIsAMiss(t *testing.T) {
	cache, server := setupCache(t)
	fleetID := kernel.NewUUID()
	l := cachedTestLoad(t, fleetID)
	require.NoError(t, cache.PutLoad(t.Context(), l))

	server.Close()

	cached, err := cache.GetLoad(t.Context(), fleetID, l.ID())
	assert.NoError(t, err)
	assert.Nil(t, cached)
}

func TestRedisLoadCache_InvalidateLoad_DropsLoadAndListing(t *testing.T) {
	cache, server := setupCache(t)
	fleetID := kernel.NewUUID()
	l := cachedTestLoad(t, fleetID)

	require.NoError(t, cache.PutLoad(t.Context(), l))
	listingKey := "fleet:" + fleetID.String() + ":loads"
	require.NoError(t, server.Set(listingKey, "stale listing"))

	require.NoError(t, cache.InvalidateLoad(t.Context(), fleetID, l.ID()))

	cached, err := cache.GetLoad(t.Context(), fleetID, l.ID())
	assert.NoError(t, err)
	assert.Nil(t, cached)
	assert.False(t, server.Exists(listingKey))
}

func TestRedisLoadCache_Put_EntryExpires(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	cache := rediscache.NewRedisLoadCacheWithTTL(client, time.Minute)

	fleetID := kernel.NewUUID()
	l := cachedTestLoad(t, fleetID)
	require.NoError(t, cache.PutLoad(t.Context(), l))

	server.FastForward(2 * time.Minute)

	cached, err := cache.GetLoad(t.Context(), fleetID, l.ID())
	assert.NoError(t, err)
	assert.Nil(t, cached)
}

func TestRedisLoadCache_Put_UnconstructedLoadRejected(t *testing.T) {
	cache, _ := setupCache(t)

	err := cache.PutLoad(t.Context(), &load.Load{})
	assert.ErrorIs(t, err, load.ErrLoadIsNotConstructed)
}
