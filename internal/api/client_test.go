package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "frent-client/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL+"/api", 0, nil)
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	t.Run("accepts http base url", func(t *testing.T) {
		client, err := NewClient("http://localhost:8080/api/", time.Second, nil)

		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080/api", client.BaseURL())
	})

	t.Run("rejects url without scheme", func(t *testing.T) {
		_, err := NewClient("localhost:8080", 0, nil)
		assert.Error(t, err)
	})
}

func TestClient_Do(t *testing.T) {
	ctx := context.Background()

	t.Run("sends bearer token, request id and json body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/rentals/addForUser/m1", r.URL.Path)
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			assert.Equal(t, "req-1", r.Header.Get(RequestIDHeader))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "m1", body["movieId"])

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"r1"}`))
		})

		var out struct {
			ID string `json:"id"`
		}
		err := client.Post(WithRequestID(ctx, "req-1"), Path("rentals", "addForUser", "m1"), "tok",
			map[string]string{"movieId": "m1"}, &out)

		require.NoError(t, err)
		assert.Equal(t, "r1", out.ID)
	})

	t.Run("omits authorization without token and generates request id", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			assert.NotEmpty(t, r.Header.Get(RequestIDHeader))
			assert.Equal(t, "1", r.URL.Query().Get("page"))
			assert.Equal(t, "20", r.URL.Query().Get("size"))
			_, _ = w.Write([]byte(`[]`))
		})

		var out []string
		err := client.Get(ctx, WithQuery("/movies/", PageQuery(1, 20)), "", &out)

		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("keeps escaped path segments", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/movies/search/sci%2Ffi%20noir/0/10", r.URL.EscapedPath())
			_, _ = w.Write([]byte(`[]`))
		})

		err := client.Get(ctx, Path("movies", "search", "sci/fi noir", "0", "10"), "", nil)

		require.NoError(t, err)
	})

	t.Run("decodes number bodies", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`12.5`))
		})

		var total float64
		require.NoError(t, client.Get(ctx, "/rentals/getTotalSpent", "tok", &total))
		assert.Equal(t, 12.5, total)
	})

	t.Run("no content leaves out untouched", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

		out := "unchanged"
		require.NoError(t, client.Post(ctx, "/rentals/sendDueDateWarnings", "tok", nil, &out))
		assert.Equal(t, "unchanged", out)
	})

	t.Run("empty 200 body is not an error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		var out map[string]any
		require.NoError(t, client.Put(ctx, "/users/addToCart/m1", "tok", struct{}{}, &out))
		assert.Nil(t, out)
	})

	t.Run("malformed success body is a decode error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{not json`))
		})

		var out map[string]any
		err := client.Get(ctx, "/movies/m1", "", &out)

		require.Error(t, err)
		assert.NotErrorIs(t, err, apperrors.ErrRemoteRejected)
		assert.NotErrorIs(t, err, apperrors.ErrTransportFailure)
	})
}

func TestClient_Do_Errors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		wantIs      []error
		wantNot     []error
	}{
		{
			name:        "message field is surfaced",
			status:      http.StatusBadRequest,
			body:        `{"message":"Movie is not available"}`,
			wantMessage: "Movie is not available",
			wantIs:      []error{apperrors.ErrRemoteRejected},
			wantNot:     []error{apperrors.ErrNotFound},
		},
		{
			name:        "not found maps to ErrNotFound",
			status:      http.StatusNotFound,
			body:        `{"message":"Movie not found"}`,
			wantMessage: "Movie not found",
			wantIs:      []error{apperrors.ErrNotFound, apperrors.ErrRemoteRejected},
		},
		{
			name:        "unauthorized maps to ErrAuthRequired",
			status:      http.StatusUnauthorized,
			body:        ``,
			wantMessage: "request failed: unauthorized",
			wantIs:      []error{apperrors.ErrAuthRequired},
		},
		{
			name:        "json without message gets generic description",
			status:      http.StatusInternalServerError,
			body:        `{"status":500}`,
			wantMessage: "request failed: internal server error",
			wantIs:      []error{apperrors.ErrRemoteRejected},
		},
		{
			name:        "short plain text body is used",
			status:      http.StatusConflict,
			body:        "Already returned",
			wantMessage: "Already returned",
			wantIs:      []error{apperrors.ErrRemoteRejected},
		},
		{
			name:        "html body is ignored",
			status:      http.StatusBadGateway,
			body:        "<html><body>bad gateway</body></html>",
			wantMessage: "request failed: bad gateway",
			wantIs:      []error{apperrors.ErrRemoteRejected},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			err := client.Get(ctx, "/movies/m1", "tok", nil)

			require.Error(t, err)
			var remote *apperrors.RemoteError
			require.True(t, errors.As(err, &remote))
			assert.Equal(t, tt.status, remote.StatusCode)
			assert.Equal(t, tt.wantMessage, apperrors.Message(err))
			for _, target := range tt.wantIs {
				assert.ErrorIs(t, err, target)
			}
			for _, target := range tt.wantNot {
				assert.NotErrorIs(t, err, target)
			}
		})
	}

	t.Run("connection failure is a transport failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		client, err := NewClient(server.URL, 0, nil)
		require.NoError(t, err)
		server.Close()

		err = client.Get(ctx, "/movies/m1", "", nil)

		assert.ErrorIs(t, err, apperrors.ErrTransportFailure)
		assert.NotErrorIs(t, err, apperrors.ErrRemoteRejected)
	})

	t.Run("canceled context is a transport failure", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		err := client.Get(canceled, "/movies/m1", "", nil)

		assert.ErrorIs(t, err, apperrors.ErrTransportFailure)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestPathHelpers(t *testing.T) {
	assert.Equal(t, "/movies/discount/m1/15", Path("movies", "discount", "m1", FormatNumber(15)))
	assert.Equal(t, "/movies/revertPrice/m1/4.99", Path("movies", "revertPrice", "m1", FormatNumber(4.99)))
	assert.Equal(t, "/movies/", WithQuery("/movies/", nil))
	assert.Equal(t, "/movies/?page=1&size=10", WithQuery("/movies/", PageQuery(1, 10)))
}
