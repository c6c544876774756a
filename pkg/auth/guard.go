package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	apperrors "frent-client/internal/errors"
)

// Guard owns the current session token. It is the only component allowed to
// change it; everything else receives an immutable *Session.
type Guard struct {
	store TokenStore
	now   func() time.Time

	mu           sync.RWMutex
	token        string
	onInvalidate []func(username string)
}

// NewGuard creates a guard over store. Call Restore once at start-up.
func NewGuard(store TokenStore) *Guard {
	return &Guard{
		store: store,
		now:   time.Now,
	}
}

// OnInvalidate registers fn to run whenever a token is dropped, either by
// Logout or because it expired or could not be decoded. fn receives the
// dropped token's subject, or "" when the token could not be decoded. Hooks
// only mark cached data stale; the guard never refetches anything itself.
func (g *Guard) OnInvalidate(fn func(username string)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onInvalidate = append(g.onInvalidate, fn)
}

// Restore loads the persisted token and validates it.
func (g *Guard) Restore(ctx context.Context) error {
	token, err := g.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}

	g.mu.Lock()
	g.token = token
	g.mu.Unlock()

	if err := g.Validate(ctx); err != nil && !isSessionError(err) {
		return err
	}
	return nil
}

// CurrentToken returns the held token, or "" when there is none.
func (g *Guard) CurrentToken() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.token
}

// IsValid reports whether a live token is held. An expired or undecodable
// token is cleared from the guard and the store.
func (g *Guard) IsValid(ctx context.Context) bool {
	return g.Validate(ctx) == nil
}

// Validate is IsValid with the reason: ErrAuthRequired when no token is held,
// ErrTokenExpired or ErrInvalidToken when a held token had to be dropped.
func (g *Guard) Validate(ctx context.Context) error {
	token := g.CurrentToken()
	if token == "" {
		return apperrors.ErrAuthRequired
	}

	claims, err := DecodeClaims(token)
	if err == nil && claims.Expiry().After(g.now()) {
		return nil
	}
	if err == nil {
		err = apperrors.ErrTokenExpired
	}

	if clearErr := g.drop(ctx, token); clearErr != nil {
		return errors.Join(err, clearErr)
	}
	return err
}

// Session returns the current session, or ErrAuthRequired.
func (g *Guard) Session(ctx context.Context) (*Session, error) {
	if err := g.Validate(ctx); err != nil {
		if errors.Is(err, apperrors.ErrAuthRequired) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", apperrors.ErrAuthRequired, err)
	}

	sess, err := NewSession(g.CurrentToken())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrAuthRequired, err)
	}
	return sess, nil
}

// Login stores a freshly issued token. Tokens that are already expired or
// cannot be decoded are refused.
func (g *Guard) Login(ctx context.Context, token string) (*Session, error) {
	sess, err := NewSession(token)
	if err != nil {
		return nil, err
	}
	if !sess.Valid(g.now()) {
		return nil, apperrors.ErrTokenExpired
	}

	if err := g.store.Save(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	g.mu.Lock()
	g.token = token
	g.mu.Unlock()

	return sess, nil
}

// Logout drops the current token.
func (g *Guard) Logout(ctx context.Context) error {
	return g.drop(ctx, g.CurrentToken())
}

// drop clears token if it is still the held one, then runs the hooks.
func (g *Guard) drop(ctx context.Context, token string) error {
	g.mu.Lock()
	if g.token != token {
		g.mu.Unlock()
		return nil
	}
	g.token = ""
	hooks := append([]func(string){}, g.onInvalidate...)
	g.mu.Unlock()

	// DecodeClaims ignores exp, so an expired token still names its owner.
	var username string
	if claims, err := DecodeClaims(token); err == nil {
		username = claims.Username()
	}

	err := g.store.Clear(ctx)
	for _, fn := range hooks {
		fn(username)
	}
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func isSessionError(err error) bool {
	return errors.Is(err, apperrors.ErrAuthRequired) ||
		errors.Is(err, apperrors.ErrTokenExpired) ||
		errors.Is(err, apperrors.ErrInvalidToken)
}
