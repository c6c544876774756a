package auth

import (
	"time"

	apperrors "frent-client/internal/errors"
)

// RoleAdmin is the role tag carried by administrator tokens.
const RoleAdmin = "admin"

// Session is an immutable view of one bearer token and its decoded claims.
// It is created on login (or per request in the BFF) and passed explicitly to
// every authenticated operation.
type Session struct {
	token  string
	claims *Claims
}

// NewSession decodes token into a Session. It does not check expiry.
func NewSession(token string) (*Session, error) {
	claims, err := DecodeClaims(token)
	if err != nil {
		return nil, err
	}
	return &Session{token: token, claims: claims}, nil
}

// Token returns the raw bearer token.
func (s *Session) Token() string {
	return s.token
}

// Username returns the token subject.
func (s *Session) Username() string {
	return s.claims.Username()
}

// Role returns the token role tag.
func (s *Session) Role() string {
	return s.claims.Role()
}

// IsAdmin reports whether the token carries the admin role.
func (s *Session) IsAdmin() bool {
	return s.claims.Role() == RoleAdmin
}

// ExpiresAt returns the token expiry.
func (s *Session) ExpiresAt() time.Time {
	return s.claims.Expiry()
}

// Valid reports whether the token is still live at now.
func (s *Session) Valid(now time.Time) bool {
	return s != nil && s.claims != nil && s.claims.Expiry().After(now)
}

// Require returns ErrAuthRequired unless sess is live at now.
func Require(sess *Session, now time.Time) error {
	if !sess.Valid(now) {
		return apperrors.ErrAuthRequired
	}
	return nil
}

// RequireAdmin returns ErrAuthRequired for a dead session and ErrForbidden for
// a live session without the admin role.
func RequireAdmin(sess *Session, now time.Time) error {
	if err := Require(sess, now); err != nil {
		return err
	}
	if !sess.IsAdmin() {
		return apperrors.ErrForbidden
	}
	return nil
}
