package cache

import (
	"context"
	"fmt"
)

type noopCache struct{}

// NewNoop returns a cache that stores nothing. Every Get is a miss.
func NewNoop() RedisCache {
	return noopCache{}
}

func (noopCache) Save(context.Context, string, any, int) error { return nil }

func (noopCache) Get(_ context.Context, key string, _ any) error {
	return fmt.Errorf("failed to get cache value for %s: %w", key, Nil)
}

func (noopCache) Delete(context.Context, string) error { return nil }

func (noopCache) Clear(context.Context, string) error { return nil }
