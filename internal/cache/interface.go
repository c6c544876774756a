package cache

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/mock_cache.go -package=mocks frent-client/internal/cache Cache

// Cache defines the interface for caching operations.
type Cache interface {
	// Set stores a value in cache with TTL. A zero TTL never expires.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// Get retrieves a value from cache. Returns false if key doesn't exist.
	Get(ctx context.Context, key string, dest any) (bool, error)
	// Delete removes keys from cache. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
}

// Ensure the implementations satisfy Cache
var (
	_ Cache = (*Redis)(nil)
	_ Cache = (*Memory)(nil)
)
