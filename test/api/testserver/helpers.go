//go:build api

package testserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"frent-client/internal/models"
	"frent-client/test/testutil"

	"github.com/stretchr/testify/require"
)

// Envelope is the BFF response shape with the payload left undecoded.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// ParseEnvelope decodes the response envelope.
func ParseEnvelope(t *testing.T, w *httptest.ResponseRecorder) Envelope {
	t.Helper()

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "response should be valid JSON: %s", w.Body.String())
	return env
}

// ParseData decodes the envelope payload into T.
func ParseData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	env := ParseEnvelope(t, w)
	require.True(t, env.Success, "response should be successful: %s", w.Body.String())

	var result T
	require.NoError(t, json.Unmarshal(env.Data, &result), "failed to unmarshal response data")
	return result
}

// CleanupBetweenTests resets the fake remote and empties every container.
func (ts *TestServer) CleanupBetweenTests(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	ts.Remote.Reset()
	require.NoError(t, ts.Redis.FlushDB(ctx))
	require.NoError(t, ts.MongoDB.CleanupCollections(ctx))
	require.NoError(t, ts.MinIO.ClearBucket(ctx))
}

// AuthHelper provides authentication helpers for API tests.
type AuthHelper struct {
	server *TestServer
}

// NewAuthHelper creates a new auth helper.
func NewAuthHelper(server *TestServer) *AuthHelper {
	return &AuthHelper{server: server}
}

// Register registers an account through the BFF and returns the created user.
func (ah *AuthHelper) Register(t *testing.T, req models.RegisterRequest) models.User {
	t.Helper()

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/v1/auth/register", req)
	require.Equal(t, http.StatusCreated, w.Code, "register should return 201, got: %s", w.Body.String())

	return ParseData[models.User](t, w)
}

// Login logs in through the BFF and returns the session.
func (ah *AuthHelper) Login(t *testing.T, email, password string) models.SessionResponse {
	t.Helper()

	req := models.LoginRequest{
		Email:    email,
		Password: password,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/v1/auth/login", req)
	require.Equal(t, http.StatusOK, w.Code, "login should return 200, got: %s", w.Body.String())

	return ParseData[models.SessionResponse](t, w)
}

// CreateMember seeds a member account on the remote and returns it with a
// bearer token.
func (ah *AuthHelper) CreateMember(t *testing.T, username string) (models.User, string) {
	t.Helper()
	return ah.create(t, models.RoleMember, username)
}

// CreateAdmin seeds an admin account on the remote and returns it with a
// bearer token.
func (ah *AuthHelper) CreateAdmin(t *testing.T, username string) (models.User, string) {
	t.Helper()
	return ah.create(t, models.RoleAdmin, username)
}

func (ah *AuthHelper) create(t *testing.T, userType, username string) (models.User, string) {
	t.Helper()

	user := ah.server.Remote.AddAccount(userType, username, "password123")
	sess := ah.Login(t, user.Email, "password123")
	return user, sess.Token
}
