package handler

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"frent-client/internal/validator"
	"frent-client/pkg/auth"
	"frent-client/test/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidators()
}

type body struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// newTestRouter returns a router whose requests carry sess, as if the Auth
// middleware had accepted them. A nil sess simulates an anonymous caller.
func newTestRouter(sess *auth.Session) *gin.Engine {
	router := testutil.SetupRouter()
	router.Use(testutil.WithSession(sess))
	return router
}

func decode(t *testing.T, w *httptest.ResponseRecorder) body {
	t.Helper()
	var b body
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	return b
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	b := decode(t, w)
	require.True(t, b.Success, "unexpected error %q", b.Error)
	require.NoError(t, json.Unmarshal(b.Data, v))
}
