package auth

import "context"

//go:generate mockgen -destination=mocks/mock_token_store.go -package=mocks frent-client/pkg/auth TokenStore

// TokenStoreKey is the fixed name the session token is persisted under.
const TokenStoreKey = "userToken"

// TokenStore persists the bearer token between runs.
type TokenStore interface {
	// Load returns the persisted token, or "" when nothing is stored.
	Load(ctx context.Context) (string, error)
	// Save replaces the persisted token.
	Save(ctx context.Context, token string) error
	// Clear removes the persisted token. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}

// Ensure the built-in stores implement TokenStore
var (
	_ TokenStore = (*FileStore)(nil)
	_ TokenStore = (*MemoryStore)(nil)
)
