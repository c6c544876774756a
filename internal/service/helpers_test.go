package service

import (
	"testing"
	"time"

	"frent-client/internal/authz"
	"frent-client/internal/cache"
	"frent-client/internal/logger"
	"frent-client/pkg/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testUser = "jdoe"

func newTestSession(t *testing.T, role string) *auth.Session {
	t.Helper()
	return newTestSessionExpiring(t, role, time.Now().Add(time.Hour))
}

func newTestSessionExpiring(t *testing.T, role string, exp time.Time) *auth.Session {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   testUser,
		Issuer:    role,
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	sess, err := auth.NewSession(token)
	require.NoError(t, err)
	return sess
}

func timeInPast() time.Time {
	return time.Now().Add(-time.Hour)
}

func newTestViews() (*cache.Views, *cache.Memory) {
	mem := cache.NewMemory()
	return cache.NewViews(mem, time.Minute, logger.Discard()), mem
}

func newTestAuthorizer() authz.Authorizer {
	return authz.NewLocalAuthorizer()
}
