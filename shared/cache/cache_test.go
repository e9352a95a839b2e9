package cache_test

import (
	"context"
	"errors"
	"frontdesk/infras/otel/mocks"
	"frontdesk/shared/cache"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roomType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func newCache(t *testing.T) (cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisCache(client, mocks.NewOtel()), server
}

func TestRedisCache_SaveAndGet(t *testing.T) {
	c, server := newCache(t)
	ctx := context.Background()

	want := []roomType{{ID: 1, Name: "Single"}, {ID: 2, Name: "Double"}}
	require.NoError(t, c.Save(ctx, "room_type:all", want, 60))

	var got []roomType
	require.NoError(t, c.Get(ctx, "room_type:all", &got))
	assert.Equal(t, want, got)

	server.FastForward(61 * time.Second)

	err := c.Get(ctx, "room_type:all", &got)
	assert.True(t, errors.Is(err, cache.Nil))
}

func TestRedisCache_String(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "greeting", "hello", 60))

	var got string
	require.NoError(t, c.Get(ctx, "greeting", &got))
	assert.Equal(t, "hello", got)
}

func TestRedisCache_GetUndecodable(t *testing.T) {
	c, server := newCache(t)
	require.NoError(t, server.Set("broken", "not json"))

	var got []roomType
	err := c.Get(context.Background(), "broken", &got)

	assert.Error(t, err)
	assert.False(t, errors.Is(err, cache.Nil))
}

func TestRedisCache_DeleteAndClear(t *testing.T) {
	c, server := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "room_type:all", "a", 60))
	require.NoError(t, c.Save(ctx, "room_type:1", "b", 60))
	require.NoError(t, c.Save(ctx, "booking:1", "c", 60))

	require.NoError(t, c.Delete(ctx, "booking:1"))
	assert.False(t, server.Exists("booking:1"))

	require.NoError(t, c.Clear(ctx, "room_type"))
	assert.False(t, server.Exists("room_type:all"))
	assert.False(t, server.Exists("room_type:1"))
}

func TestNoop(t *testing.T) {
	c := cache.NewRedisCache(nil, mocks.NewOtel())
	ctx := context.Background()

	assert.NoError(t, c.Save(ctx, "key", "value", 60))

	var got string
	err := c.Get(ctx, "key", &got)
	assert.True(t, errors.Is(err, cache.Nil))
	assert.Empty(t, got)

	assert.NoError(t, c.Delete(ctx, "key"))
	assert.NoError(t, c.Clear(ctx, "key"))
}

func TestRemember(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()

	loads := 0
	load := func(context.Context) ([]roomType, error) {
		loads++

		return []roomType{{ID: 1, Name: "Single"}}, nil
	}

	first, err := cache.Remember(ctx, c, "room_type:all", 60, load)
	require.NoError(t, err)

	second, err := cache.Remember(ctx, c, "room_type:all", 60, load)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, loads, "the second call is served from the cache")
}

func TestRemember_LoadFailureIsNotCached(t *testing.T) {
	c, server := newCache(t)

	_, err := cache.Remember(context.Background(), c, "room_type:all", 60, func(context.Context) ([]roomType, error) {
		return nil, errors.New("store is not connected")
	})

	require.Error(t, err)
	assert.False(t, server.Exists("room_type:all"))
}

func TestRemember_Noop(t *testing.T) {
	loads := 0

	for range 2 {
		_, err := cache.Remember(context.Background(), cache.NewNoop(), "room_type:all", 60, func(context.Context) (int, error) {
			loads++

			return loads, nil
		})
		require.NoError(t, err)
	}

	assert.Equal(t, 2, loads)
}
