package cache

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
)

// Remember returns the value cached under key. On a miss it calls load and caches a successful
// result for ttl seconds. An unreachable cache degrades to calling load every time.
func Remember[T any](ctx context.Context, c RedisCache, key string, ttl int, load func(context.Context) (T, error)) (T, error) {
	var cached T

	err := c.Get(ctx, key, &cached)
	if err == nil {
		log.Debug().Str("cacheKey", key).Msg("cache hit")

		return cached, nil
	}

	if !errors.Is(err, Nil) {
		log.Warn().Err(err).Str("cacheKey", key).Msg("cache unavailable, loading from source")
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if err := c.Save(ctx, key, value, ttl); err != nil {
		log.Warn().Err(err).Str("cacheKey", key).Msg("failed to save to cache")
	}

	return value, nil
}
