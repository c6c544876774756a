// Package auth holds the client-side session: token decoding, expiry checks
// and token persistence.
package auth

import (
	"fmt"
	"strings"
	"time"

	apperrors "frent-client/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the JWT claims the rental service issues.
// Subject is the username, Issuer carries the role tag ("admin", "member").
type Claims struct {
	jwt.RegisteredClaims
}

// Username returns the subject claim.
func (c *Claims) Username() string {
	return c.Subject
}

// Role returns the lower-cased role tag.
func (c *Claims) Role() string {
	return strings.ToLower(strings.TrimSpace(c.Issuer))
}

// Expiry returns the exp claim, or the zero time when absent.
func (c *Claims) Expiry() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

var parser = jwt.NewParser()

// DecodeClaims reads the token payload without verifying the signature.
// Verification is the rental service's job; the client only needs exp, sub and iss.
func DecodeClaims(token string) (*Claims, error) {
	if strings.TrimSpace(token) == "" {
		return nil, apperrors.ErrInvalidToken
	}

	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}
	if claims.ExpiresAt == nil {
		return nil, fmt.Errorf("%w: missing exp claim", apperrors.ErrInvalidToken)
	}

	return claims, nil
}
