package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"frent-client/internal/middleware"
	"frent-client/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// SetupRouter creates a Gin router in test mode.
func SetupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// MakeRequest creates and executes a test HTTP request.
func MakeRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reqBody)
	require.NoError(t, err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

// MakeAuthRequest creates a request with Authorization header.
func MakeAuthRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reqBody)
	require.NoError(t, err)

	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

// SetSession stores sess in the Gin context (simulates the Auth middleware).
func SetSession(c *gin.Context, sess *auth.Session) {
	c.Set(middleware.SessionKey, sess)
}

// WithSession returns a middleware that injects sess into every request.
func WithSession(sess *auth.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess != nil {
			SetSession(c, sess)
		}
		c.Next()
	}
}

// SignToken issues an HS256 token for username with the given role tag.
// The client never verifies signatures, so the key is arbitrary.
func SignToken(t *testing.T, username, role string, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   username,
		Issuer:    role,
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("testsecret"))
	require.NoError(t, err)
	return token
}

// NewSession builds a session that is live for the next hour.
func NewSession(t *testing.T, username, role string) *auth.Session {
	t.Helper()
	sess, err := auth.NewSession(SignToken(t, username, role, time.Now().Add(time.Hour)))
	require.NoError(t, err)
	return sess
}
