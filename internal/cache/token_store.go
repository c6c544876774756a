package cache

import (
	"context"
	"fmt"
	"time"

	"frent-client/pkg/auth"
)

// TokenStore persists a session token in the cache, for clients that share a
// Redis instance instead of a local file.
type TokenStore struct {
	cache Cache
	key   string
	ttl   time.Duration
}

var _ auth.TokenStore = (*TokenStore)(nil)

// NewTokenStore creates a token store under the fixed session key for owner.
// ttl should not exceed the token lifetime issued by the rental service.
func NewTokenStore(cache Cache, owner string, ttl time.Duration) *TokenStore {
	return &TokenStore{cache: cache, key: TokenCacheKey(owner), ttl: ttl}
}

// TokenCacheKey generates the cache key holding owner's token.
func TokenCacheKey(owner string) string {
	return fmt.Sprintf("session:%s:%s", owner, auth.TokenStoreKey)
}

// Load returns the stored token, or "" when absent.
func (s *TokenStore) Load(ctx context.Context) (string, error) {
	var token string
	found, err := s.cache.Get(ctx, s.key, &token)
	if err != nil {
		return "", err
	}
	if !found {
		return "", nil
	}
	return token, nil
}

// Save stores the token.
func (s *TokenStore) Save(ctx context.Context, token string) error {
	return s.cache.Set(ctx, s.key, token, s.ttl)
}

// Clear removes the token.
func (s *TokenStore) Clear(ctx context.Context) error {
	return s.cache.Delete(ctx, s.key)
}
