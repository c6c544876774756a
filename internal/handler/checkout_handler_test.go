package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	apperrors "frent-client/internal/errors"
	"frent-client/internal/models"
	"frent-client/internal/service"
	"frent-client/internal/service/mocks"
	"frent-client/pkg/auth"
	"frent-client/test/fixtures"
	"frent-client/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckoutHandler(t *testing.T) {
	mockService := &mocks.MockCheckoutService{}
	handler := NewCheckoutHandler(mockService)

	assert.NotNil(t, handler)
	assert.Equal(t, mockService, handler.service)
}

func TestCheckoutHandler_RentCart(t *testing.T) {
	tests := []struct {
		name           string
		result         *service.SagaResult
		err            error
		expectedStatus int
		expectedError  string
	}{
		{
			name: "all steps committed",
			result: func() *service.SagaResult {
				r := fixtures.NewSagaRecord(service.SagaRentCart, "jdoe",
					models.SagaStep{Name: service.StepCreateRental, MovieID: "m1", Status: models.StepCommitted},
					models.SagaStep{Name: service.StepRemoveFromCart, MovieID: "m1", Status: models.StepCommitted},
				)
				return &r
			}(),
			expectedStatus: http.StatusOK,
		},
		{
			name: "partially applied",
			err: &apperrors.PartialFailureError{
				Saga:      service.SagaRentCart,
				Committed: []string{"create-rental:m1", "create-rental:m2"},
				Failed:    []string{"remove-from-cart:m2"},
				Err:       errors.New("boom"),
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  msgCheckoutFailed,
		},
		{
			name:           "remote rejection before any commit",
			err:            apperrors.NewRemoteError(http.StatusNotFound, "movie m2 not found"),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  msgCheckoutFailed,
		},
		{
			name:           "transport failure before any commit",
			err:            fmt.Errorf("%w: connection refused to m2", apperrors.ErrTransportFailure),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  msgCheckoutFailed,
		},
		{
			name:           "no session",
			err:            apperrors.ErrAuthRequired,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong role",
			err:            apperrors.ErrForbidden,
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockCheckoutService{
				RentCartFunc: func(ctx context.Context, sess *auth.Session) (*service.SagaResult, error) {
					return tt.result, tt.err
				},
			}
			handler := NewCheckoutHandler(mockService)
			router := newTestRouter(testutil.NewSession(t, "jdoe", "member"))
			router.POST("/cart/rent", handler.RentCart)

			w := testutil.MakeRequest(t, router, http.MethodPost, "/cart/rent", nil)

			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				b := decode(t, w)
				assert.Equal(t, tt.expectedError, b.Error)
				assert.NotContains(t, b.Error, "m2", "failed steps stay in the logs")
			}
			if tt.result != nil {
				var got models.SagaRecord
				decodeData(t, w, &got)
				assert.True(t, got.Succeeded)
				assert.Len(t, got.Steps, 2)
			}
		})
	}
}

func TestCheckoutHandler_MoveToCart(t *testing.T) {
	var gotMovie string
	mockService := &mocks.MockCheckoutService{
		MoveToCartFunc: func(ctx context.Context, sess *auth.Session, movieID string) (*service.SagaResult, error) {
			gotMovie = movieID
			r := fixtures.NewSagaRecord(service.SagaMoveToCart, "jdoe",
				models.SagaStep{Name: service.StepAddToCart, MovieID: movieID, Status: models.StepCommitted},
				models.SagaStep{Name: service.StepRemoveFromWishlist, MovieID: movieID, Status: models.StepCommitted},
			)
			return &r, nil
		},
	}
	handler := NewCheckoutHandler(mockService)
	router := newTestRouter(testutil.NewSession(t, "jdoe", "member"))
	router.POST("/wishlist/:movieId/move-to-cart", handler.MoveToCart)

	w := testutil.MakeRequest(t, router, http.MethodPost, "/wishlist/m7/move-to-cart", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "m7", gotMovie)

	t.Run("remote rejection gets the generic message", func(t *testing.T) {
		failing := NewCheckoutHandler(&mocks.MockCheckoutService{
			MoveToCartFunc: func(ctx context.Context, sess *auth.Session, movieID string) (*service.SagaResult, error) {
				return nil, apperrors.NewRemoteError(http.StatusBadRequest, "Already in cart")
			},
		})
		router := newTestRouter(testutil.NewSession(t, "jdoe", "member"))
		router.POST("/wishlist/:movieId/move-to-cart", failing.MoveToCart)

		w := testutil.MakeRequest(t, router, http.MethodPost, "/wishlist/m7/move-to-cart", nil)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, msgCheckoutFailed, decode(t, w).Error)
	})
}

func TestCheckoutHandler_History(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		err            error
		expectedStatus int
		expectedLimit  int
	}{
		{name: "default limit", query: "", expectedStatus: http.StatusOK, expectedLimit: 0},
		{name: "explicit limit", query: "?limit=5", expectedStatus: http.StatusOK, expectedLimit: 5},
		{name: "limit not a number", query: "?limit=five", expectedStatus: http.StatusBadRequest, expectedLimit: -1},
		{name: "limit too large", query: "?limit=1000", expectedStatus: http.StatusBadRequest, expectedLimit: -1},
		{name: "journal disabled", query: "", err: apperrors.ErrJournalUnavailable, expectedStatus: http.StatusServiceUnavailable, expectedLimit: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotLimit := -1
			mockService := &mocks.MockCheckoutService{
				HistoryFunc: func(ctx context.Context, sess *auth.Session, limit int) ([]service.SagaResult, error) {
					gotLimit = limit
					return []service.SagaResult{}, tt.err
				},
			}
			handler := NewCheckoutHandler(mockService)
			router := newTestRouter(testutil.NewSession(t, "jdoe", "member"))
			router.GET("/checkout/history", handler.History)

			w := testutil.MakeRequest(t, router, http.MethodGet, "/checkout/history"+tt.query, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedLimit, gotLimit)
		})
	}
}

func TestCheckoutHandler_PartialFailures(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		err            error
		expectedStatus int
		expectedWindow time.Duration
	}{
		{name: "default window", query: "", expectedStatus: http.StatusOK, expectedWindow: 24 * time.Hour},
		{name: "explicit window", query: "?since=2h", expectedStatus: http.StatusOK, expectedWindow: 2 * time.Hour},
		{name: "not a duration", query: "?since=yesterday", expectedStatus: http.StatusBadRequest},
		{name: "negative window", query: "?since=-1h", expectedStatus: http.StatusBadRequest},
		{name: "journal disabled", query: "", err: apperrors.ErrJournalUnavailable, expectedStatus: http.StatusServiceUnavailable, expectedWindow: 24 * time.Hour},
		{name: "forbidden", query: "", err: apperrors.ErrForbidden, expectedStatus: http.StatusForbidden, expectedWindow: 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotSince time.Time
			called := false
			mockService := &mocks.MockCheckoutService{
				PartialFailuresFunc: func(ctx context.Context, sess *auth.Session, since time.Time) ([]service.SagaResult, error) {
					called = true
					gotSince = since
					return []service.SagaResult{}, tt.err
				},
			}
			handler := NewCheckoutHandler(mockService)
			router := newTestRouter(testutil.NewSession(t, "root", "admin"))
			router.GET("/admin/checkout/partial-failures", handler.PartialFailures)

			before := time.Now()
			w := testutil.MakeRequest(t, router, http.MethodGet, "/admin/checkout/partial-failures"+tt.query, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedWindow == 0 {
				assert.False(t, called)
				return
			}
			require.True(t, called)
			assert.WithinDuration(t, before.Add(-tt.expectedWindow), gotSince, 5*time.Second)
		})
	}
}
