package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// View names one independently cached, per-user collection.
type View string

const (
	ViewCart         View = "cart"
	ViewCartTotal    View = "cartTotal"
	ViewWishlist     View = "wishlist"
	ViewRentals      View = "rentals"
	ViewRentalsTotal View = "rentalsTotal"
)

// AllViews lists every per-user view.
var AllViews = []View{ViewCart, ViewCartTotal, ViewWishlist, ViewRentals, ViewRentalsTotal}

// ViewKey generates the cache key for one user's view.
func ViewKey(view View, username string) string {
	return fmt.Sprintf("view:%s:%s", view, username)
}

// Views caches per-user collections. There is no transaction across views:
// each mutation invalidates exactly the views it can have changed, and a view
// is only corrected by the next fetch after invalidation.
type Views struct {
	cache  Cache
	ttl    time.Duration
	logger *slog.Logger
}

// NewViews creates a view cache. ttl bounds staleness caused by changes made
// outside this process.
func NewViews(cache Cache, ttl time.Duration, logger *slog.Logger) *Views {
	return &Views{cache: cache, ttl: ttl, logger: logger}
}

// Invalidate drops the given views for username. Failures are logged, never
// returned: a stale entry is bounded by the TTL.
func (v *Views) Invalidate(ctx context.Context, username string, views ...View) {
	if len(views) == 0 {
		return
	}
	keys := make([]string, len(views))
	for i, view := range views {
		keys[i] = ViewKey(view, username)
	}
	if err := v.cache.Delete(ctx, keys...); err != nil {
		v.logger.Warn("failed to invalidate cached views", "username", username, "views", views, "error", err)
	}
}

// InvalidateAll drops every view for username.
func (v *Views) InvalidateAll(ctx context.Context, username string) {
	v.Invalidate(ctx, username, AllViews...)
}

// Load returns the cached view, or calls fetch and caches its result.
// Fetch errors are returned as-is and nothing is cached. Cache errors degrade
// to a direct fetch.
func Load[T any](ctx context.Context, v *Views, view View, username string, fetch func(ctx context.Context) (T, error)) (T, error) {
	key := ViewKey(view, username)

	var cached T
	found, err := v.cache.Get(ctx, key, &cached)
	if err != nil {
		v.logger.Warn("cache read failed", "key", key, "error", err)
	}
	if found {
		return cached, nil
	}

	value, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	if err := v.cache.Set(ctx, key, value, v.ttl); err != nil {
		v.logger.Warn("cache write failed", "key", key, "error", err)
	}
	return value, nil
}
