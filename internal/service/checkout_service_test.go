package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"frent-client/internal/cache"
	apperrors "frent-client/internal/errors"
	"frent-client/internal/logger"
	"frent-client/internal/models"
	"frent-client/internal/repository"
	repomocks "frent-client/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type checkoutFixture struct {
	service *CheckoutService
	users   *repomocks.MockUserRepository
	movies  *repomocks.MockMovieRepository
	rentals *repomocks.MockRentalRepository
	mem     *cache.Memory
}

func newCheckoutFixture(ctrl *gomock.Controller, journal repository.SagaLogRepository) checkoutFixture {
	f := checkoutFixture{
		users:   repomocks.NewMockUserRepository(ctrl),
		movies:  repomocks.NewMockMovieRepository(ctrl),
		rentals: repomocks.NewMockRentalRepository(ctrl),
	}
	views, mem := newTestViews()
	f.mem = mem
	f.service = NewCheckoutService(f.users, f.movies, f.rentals, journal, views, newTestAuthorizer(), logger.Discard())
	return f
}

// primeViews fills every cached view so tests can see which ones were dropped.
func (f checkoutFixture) primeViews(t *testing.T) {
	t.Helper()
	for _, view := range cache.AllViews {
		require.NoError(t, f.mem.Set(context.Background(), cache.ViewKey(view, testUser), []string{}, 0))
	}
}

func (f checkoutFixture) cached(view cache.View) bool {
	var v []string
	found, _ := f.mem.Get(context.Background(), cache.ViewKey(view, testUser), &v)
	return found
}

func (f checkoutFixture) expectPrices(prices map[string]float64) {
	for id, price := range prices {
		f.movies.EXPECT().
			FindByID(gomock.Any(), id).
			Return(&models.Movie{ID: id, RentalPrice: price}, nil)
	}
}

func TestCheckoutService_RentCart(t *testing.T) {
	member := newTestSession(t, "member")

	t.Run("rents everything and empties the cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCheckoutFixture(ctrl, nil)
		f.primeViews(t)

		f.users.EXPECT().GetCart(gomock.Any(), member.Token()).Return([]string{"M1", "M2"}, nil)
		f.expectPrices(map[string]float64{"M1": 3, "M2": 4})
		f.rentals.EXPECT().
			Create(gomock.Any(), member.Token(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req *models.RentalRequest) (*models.Rental, error) {
				assert.Empty(t, req.Username)
				return &models.Rental{ID: "R-" + req.MovieID, MovieID: req.MovieID, RentalPrice: req.RentalPrice}, nil
			}).
			Times(2)
		f.users.EXPECT().RemoveFromCart(gomock.Any(), member.Token(), "M1").Return(nil)
		f.users.EXPECT().RemoveFromCart(gomock.Any(), member.Token(), "M2").Return(nil)

		result, err := f.service.RentCart(context.Background(), member)

		require.NoError(t, err)
		assert.True(t, result.Succeeded)
		assert.Equal(t, SagaRentCart, result.Name)
		assert.Equal(t, testUser, result.Username)
		assert.ElementsMatch(t, []string{
			"create-rental:M1", "create-rental:M2", "remove-from-cart:M1", "remove-from-cart:M2",
		}, result.Committed())
		assert.Empty(t, result.Failed())

		assert.False(t, f.cached(cache.ViewCart))
		assert.False(t, f.cached(cache.ViewCartTotal))
		assert.False(t, f.cached(cache.ViewRentals))
		assert.False(t, f.cached(cache.ViewRentalsTotal))
		assert.True(t, f.cached(cache.ViewWishlist))
	})

	t.Run("a failed creation leaves the cart untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCheckoutFixture(ctrl, nil)
		f.primeViews(t)

		f.users.EXPECT().GetCart(gomock.Any(), member.Token()).Return([]string{"M1", "M2"}, nil)
		f.expectPrices(map[string]float64{"M1": 3, "M2": 4})
		f.rentals.EXPECT().
			Create(gomock.Any(), member.Token(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req *models.RentalRequest) (*models.Rental, error) {
				if req.MovieID == "M2" {
					return nil, apperrors.NewRemoteError(400, "Movie unavailable")
				}
				return &models.Rental{ID: "R1", MovieID: "M1"}, nil
			}).
			Times(2)
		// No RemoveFromCart expectation: the removal phase must not run.

		result, err := f.service.RentCart(context.Background(), member)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrCompoundPartialFailure)

		var partial *apperrors.PartialFailureError
		require.True(t, errors.As(err, &partial))
		assert.Equal(t, SagaRentCart, partial.Saga)
		assert.Equal(t, []string{"create-rental:M1"}, partial.Committed)
		assert.Equal(t, []string{"create-rental:M2"}, partial.Failed)

		require.NotNil(t, result)
		assert.False(t, result.Succeeded)
		skipped := 0
		for _, s := range result.Steps {
			if s.Status == models.StepSkipped {
				assert.Equal(t, StepRemoveFromCart, s.Name)
				skipped++
			}
		}
		assert.Equal(t, 2, skipped)

		assert.True(t, f.cached(cache.ViewCart), "views are only dropped on success")
		assert.True(t, f.cached(cache.ViewRentals))
	})

	t.Run("nothing committed is a plain failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCheckoutFixture(ctrl, nil)

		f.users.EXPECT().GetCart(gomock.Any(), member.Token()).Return([]string{"M1"}, nil)
		f.expectPrices(map[string]float64{"M1": 3})
		f.rentals.EXPECT().
			Create(gomock.Any(), member.Token(), gomock.Any()).
			Return(nil, apperrors.NewRemoteError(400, "Movie unavailable"))

		_, err := f.service.RentCart(context.Background(), member)

		assert.ErrorIs(t, err, apperrors.ErrRemoteRejected)
		assert.NotErrorIs(t, err, apperrors.ErrCompoundPartialFailure)
	})

	t.Run("a failed removal is partial", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCheckoutFixture(ctrl, nil)
		f.primeViews(t)

		f.users.EXPECT().GetCart(gomock.Any(), member.Token()).Return([]string{"M1", "M2"}, nil)
		f.expectPrices(map[string]float64{"M1": 3, "M2": 4})
		f.rentals.EXPECT().
			Create(gomock.Any(), member.Token(), gomock.Any()).
			Return(&models.Rental{ID: "R"}, nil).
			Times(2)
		f.users.EXPECT().RemoveFromCart(gomock.Any(), member.Token(), "M1").Return(nil)
		f.users.EXPECT().RemoveFromCart(gomock.Any(), member.Token(), "M2").Return(apperrors.NewRemoteError(500, ""))

		result, err := f.service.RentCart(context.Background(), member)

		var partial *apperrors.PartialFailureError
		require.True(t, errors.As(err, &partial))
		assert.Len(t, partial.Committed, 3)
		assert.Equal(t, []string{"remove-from-cart:M2"}, partial.Failed)
		assert.False(t, result.Succeeded)
		assert.True(t, f.cached(cache.ViewCart))
	})

	t.Run("an empty cart succeeds without calls", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCheckoutFixture(ctrl, nil)
		f.users.EXPECT().GetCart(gomock.Any(), member.Token()).Return([]string{}, nil)

		result, err := f.service.RentCart(context.Background(), member)

		require.NoError(t, err)
		assert.True(t, result.Succeeded)
		assert.Empty(t, result.Steps)
	})

	t.Run("requires a session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCheckoutFixture(ctrl, nil)
		_, err := f.service.RentCart(context.Background(), newTestSessionExpiring(t, "member", timeInPast()))

		assert.ErrorIs(t, err, apperrors.ErrAuthRequired)
	})
}

func TestCheckoutService_RentCart_Journal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	member := newTestSession(t, "member")
	journal := repomocks.NewMockSagaLogRepository(ctrl)
	f := newCheckoutFixture(ctrl, journal)

	f.users.EXPECT().GetCart(gomock.Any(), member.Token()).Return([]string{"M1"}, nil)
	f.expectPrices(map[string]float64{"M1": 3})
	f.rentals.EXPECT().Create(gomock.Any(), member.Token(), gomock.Any()).Return(&models.Rental{ID: "R1"}, nil)
	f.users.EXPECT().RemoveFromCart(gomock.Any(), member.Token(), "M1").Return(nil)

	journal.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *models.SagaRecord) error {
			assert.NotEmpty(t, record.ID)
			assert.Equal(t, SagaRentCart, record.Name)
			assert.Equal(t, testUser, record.Username)
			assert.True(t, record.Succeeded)
			assert.Len(t, record.Steps, 2)
			assert.False(t, record.FinishedAt.Before(record.StartedAt))
			return errors.New("mongo down")
		})

	result, err := f.service.RentCart(context.Background(), member)

	require.NoError(t, err, "journal failures are not surfaced")
	assert.True(t, result.Succeeded)
}

func TestCheckoutService_MoveToCart(t *testing.T) {
	member := newTestSession(t, "member")

	t.Run("moves the movie", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCheckoutFixture(ctrl, nil)
		f.primeViews(t)

		gomock.InOrder(
			f.users.EXPECT().AddToCart(gomock.Any(), member.Token(), "M1").Return(nil),
			f.users.EXPECT().RemoveFromWishlist(gomock.Any(), member.Token(), "M1").Return(nil),
		)

		result, err := f.service.MoveToCart(context.Background(), member, "M1")

		require.NoError(t, err)
		assert.Equal(t, []string{"add-to-cart:M1", "remove-from-wishlist:M1"}, result.Committed())
		assert.False(t, f.cached(cache.ViewCart))
		assert.False(t, f.cached(cache.ViewWishlist))
		assert.True(t, f.cached(cache.ViewRentals))
	})

	t.Run("failed add skips the removal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCheckoutFixture(ctrl, nil)
		f.users.EXPECT().AddToCart(gomock.Any(), member.Token(), "M1").Return(apperrors.NewRemoteError(400, "Already in cart"))

		result, err := f.service.MoveToCart(context.Background(), member, "M1")

		assert.ErrorIs(t, err, apperrors.ErrRemoteRejected)
		assert.NotErrorIs(t, err, apperrors.ErrCompoundPartialFailure)
		require.Len(t, result.Steps, 2)
		assert.Equal(t, models.StepFailed, result.Steps[0].Status)
		assert.Equal(t, "Already in cart", result.Steps[0].Error)
		assert.Equal(t, models.StepSkipped, result.Steps[1].Status)
	})

	t.Run("failed removal leaves the movie in both", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCheckoutFixture(ctrl, nil)
		f.users.EXPECT().AddToCart(gomock.Any(), member.Token(), "M1").Return(nil)
		f.users.EXPECT().RemoveFromWishlist(gomock.Any(), member.Token(), "M1").Return(apperrors.NewRemoteError(500, ""))

		_, err := f.service.MoveToCart(context.Background(), member, "M1")

		var partial *apperrors.PartialFailureError
		require.True(t, errors.As(err, &partial))
		assert.Equal(t, SagaMoveToCart, partial.Saga)
		assert.Equal(t, []string{"add-to-cart:M1"}, partial.Committed)
	})
}

func TestCheckoutService_History(t *testing.T) {
	member := newTestSession(t, "member")

	t.Run("journal not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCheckoutFixture(ctrl, nil)
		_, err := f.service.History(context.Background(), member, 5)

		assert.ErrorIs(t, err, apperrors.ErrJournalUnavailable)
	})

	t.Run("defaults the limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		journal := repomocks.NewMockSagaLogRepository(ctrl)
		journal.EXPECT().
			FindByUsername(gomock.Any(), testUser, defaultHistoryLimit).
			Return([]models.SagaRecord{{ID: "S1", Name: SagaRentCart}}, nil)

		f := newCheckoutFixture(ctrl, journal)
		history, err := f.service.History(context.Background(), member, 0)

		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, "S1", history[0].ID)
	})
}

func TestCheckoutService_PartialFailures(t *testing.T) {
	since := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	t.Run("members are refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCheckoutFixture(ctrl, repomocks.NewMockSagaLogRepository(ctrl))
		_, err := f.service.PartialFailures(context.Background(), newTestSession(t, "member"), since)

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("journal not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCheckoutFixture(ctrl, nil)
		_, err := f.service.PartialFailures(context.Background(), newTestSession(t, "admin"), since)

		assert.ErrorIs(t, err, apperrors.ErrJournalUnavailable)
	})

	t.Run("queries the journal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		journal := repomocks.NewMockSagaLogRepository(ctrl)
		journal.EXPECT().
			FindPartialFailures(gomock.Any(), since).
			Return([]models.SagaRecord{{ID: "S9", Name: SagaRentCart}}, nil)

		f := newCheckoutFixture(ctrl, journal)
		records, err := f.service.PartialFailures(context.Background(), newTestSession(t, "admin"), since)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "S9", records[0].ID)
	})
}
