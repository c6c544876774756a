package service

import (
	"context"
	"log/slog"
	"time"

	"frent-client/internal/authz"
	"frent-client/internal/cache"
	apperrors "frent-client/internal/errors"
	"frent-client/internal/models"
	"frent-client/internal/repository"
	"frent-client/pkg/auth"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Saga and step names as they appear in results and in the journal.
const (
	SagaRentCart   = "rent-cart"
	SagaMoveToCart = "move-to-cart"

	StepCreateRental       = "create-rental"
	StepRemoveFromCart     = "remove-from-cart"
	StepAddToCart          = "add-to-cart"
	StepRemoveFromWishlist = "remove-from-wishlist"
)

const defaultHistoryLimit = 20

// SagaResult describes a finished compound transaction step by step.
type SagaResult = models.SagaRecord

// CheckoutService runs the compound transactions that span several
// independent calls. Nothing is retried and nothing is rolled back: a failure
// after a committed step is reported as a *errors.PartialFailureError.
type CheckoutService struct {
	users   repository.UserRepository
	movies  repository.MovieRepository
	rentals repository.RentalRepository
	journal repository.SagaLogRepository // nil disables the journal
	views   *cache.Views
	authz   authz.Authorizer
	logger  *slog.Logger
	now     func() time.Time
}

// NewCheckoutService creates a new CheckoutService. journal may be nil.
func NewCheckoutService(
	users repository.UserRepository,
	movies repository.MovieRepository,
	rentals repository.RentalRepository,
	journal repository.SagaLogRepository,
	views *cache.Views,
	authorizer authz.Authorizer,
	logger *slog.Logger,
) *CheckoutService {
	return &CheckoutService{
		users:   users,
		movies:  movies,
		rentals: rentals,
		journal: journal,
		views:   views,
		authz:   authorizer,
		logger:  logger,
		now:     time.Now,
	}
}

// RentCart rents every movie in the cart, then removes them all from the cart.
//
// Both phases issue their calls concurrently and wait for every call to
// settle. A failed creation skips the removal phase entirely, so the cart
// keeps every movie even if some rentals were created. A failed removal
// leaves that movie in the cart next to its new rental. Cached views are only
// invalidated when both phases succeed.
func (s *CheckoutService) RentCart(ctx context.Context, sess *auth.Session) (*SagaResult, error) {
	if err := s.authz.Authorize(sess, authz.ActionCheckout); err != nil {
		return nil, err
	}

	ids, err := s.users.GetCart(ctx, sess.Token())
	if err != nil {
		return nil, err
	}

	saga := s.begin(SagaRentCart, sess)
	if len(ids) == 0 {
		return s.finish(ctx, saga, nil), nil
	}

	created := s.phase(ctx, StepCreateRental, ids, func(ctx context.Context, movieID string) error {
		_, err := rentAtCurrentPrice(ctx, s.movies, s.rentals, sess.Token(), movieID)
		return err
	})
	saga.Steps = append(saga.Steps, created.steps...)

	if created.err != nil {
		saga.Steps = append(saga.Steps, skipped(StepRemoveFromCart, ids)...)
		return s.finish(ctx, saga, created.err), s.failure(saga, created.err)
	}

	removed := s.phase(ctx, StepRemoveFromCart, ids, func(ctx context.Context, movieID string) error {
		return s.users.RemoveFromCart(ctx, sess.Token(), movieID)
	})
	saga.Steps = append(saga.Steps, removed.steps...)

	if removed.err != nil {
		return s.finish(ctx, saga, removed.err), s.failure(saga, removed.err)
	}

	s.views.Invalidate(ctx, sess.Username(),
		cache.ViewCart, cache.ViewCartTotal, cache.ViewRentals, cache.ViewRentalsTotal)
	return s.finish(ctx, saga, nil), nil
}

// MoveToCart adds a wishlisted movie to the cart, then removes it from the
// wishlist. If the removal fails the movie stays in both.
func (s *CheckoutService) MoveToCart(ctx context.Context, sess *auth.Session, movieID string) (*SagaResult, error) {
	if err := s.authz.Authorize(sess, authz.ActionCheckout); err != nil {
		return nil, err
	}

	saga := s.begin(SagaMoveToCart, sess)
	ids := []string{movieID}

	err := s.users.AddToCart(ctx, sess.Token(), movieID)
	s.views.Invalidate(ctx, sess.Username(), cache.ViewCart, cache.ViewCartTotal)
	saga.Steps = append(saga.Steps, step(StepAddToCart, movieID, err))
	if err != nil {
		saga.Steps = append(saga.Steps, skipped(StepRemoveFromWishlist, ids)...)
		return s.finish(ctx, saga, err), s.failure(saga, err)
	}

	err = s.users.RemoveFromWishlist(ctx, sess.Token(), movieID)
	s.views.Invalidate(ctx, sess.Username(), cache.ViewWishlist)
	saga.Steps = append(saga.Steps, step(StepRemoveFromWishlist, movieID, err))
	if err != nil {
		return s.finish(ctx, saga, err), s.failure(saga, err)
	}

	return s.finish(ctx, saga, nil), nil
}

// History returns the current user's most recent compound transactions.
func (s *CheckoutService) History(ctx context.Context, sess *auth.Session, limit int) ([]SagaResult, error) {
	if err := s.authz.Authorize(sess, authz.ActionCheckout); err != nil {
		return nil, err
	}
	if s.journal == nil {
		return nil, apperrors.ErrJournalUnavailable
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.journal.FindByUsername(ctx, sess.Username(), limit)
}

// PartialFailures lists every user's sagas started since the given time that
// failed after committing at least one step.
func (s *CheckoutService) PartialFailures(ctx context.Context, sess *auth.Session, since time.Time) ([]SagaResult, error) {
	if err := s.authz.Authorize(sess, authz.ActionCheckoutAudit); err != nil {
		return nil, err
	}
	if s.journal == nil {
		return nil, apperrors.ErrJournalUnavailable
	}
	return s.journal.FindPartialFailures(ctx, since)
}

type phaseResult struct {
	steps []models.SagaStep
	err   error
}

// phase runs call for every id concurrently. It waits for all calls, even
// after one has failed, and reports the first failure.
func (s *CheckoutService) phase(ctx context.Context, name string, ids []string, call func(ctx context.Context, movieID string) error) phaseResult {
	steps := make([]models.SagaStep, len(ids))

	var g errgroup.Group
	for i, id := range ids {
		g.Go(func() error {
			err := call(ctx, id)
			steps[i] = step(name, id, err)
			return err
		})
	}
	err := g.Wait()

	return phaseResult{steps: steps, err: err}
}

func (s *CheckoutService) begin(name string, sess *auth.Session) *SagaResult {
	return &SagaResult{
		ID:        uuid.NewString(),
		Name:      name,
		Username:  sess.Username(),
		Steps:     []models.SagaStep{},
		StartedAt: s.now().UTC(),
	}
}

// finish stamps the saga and appends it to the journal. Journal failures are
// logged only.
func (s *CheckoutService) finish(ctx context.Context, saga *SagaResult, err error) *SagaResult {
	saga.Succeeded = err == nil
	saga.FinishedAt = s.now().UTC()

	if s.journal != nil {
		if jerr := s.journal.Record(context.WithoutCancel(ctx), saga); jerr != nil {
			s.logger.Warn("failed to journal saga", "saga_id", saga.ID, "saga", saga.Name, "error", jerr)
		}
	}
	return saga
}

// failure builds the error for a failed saga. Once any step is committed the
// server state has moved, so the failure is partial.
func (s *CheckoutService) failure(saga *SagaResult, err error) error {
	committed := saga.Committed()
	if len(committed) == 0 {
		s.logger.Error("saga failed", "saga_id", saga.ID, "saga", saga.Name, "username", saga.Username, "error", err)
		return err
	}

	s.logger.Error("saga partially applied",
		"saga_id", saga.ID,
		"saga", saga.Name,
		"username", saga.Username,
		"committed", committed,
		"failed", saga.Failed(),
		"error", err,
	)
	return &apperrors.PartialFailureError{
		Saga:      saga.Name,
		Committed: committed,
		Failed:    saga.Failed(),
		Err:       err,
	}
}

func step(name, movieID string, err error) models.SagaStep {
	if err != nil {
		return models.SagaStep{Name: name, MovieID: movieID, Status: models.StepFailed, Error: apperrors.Message(err)}
	}
	return models.SagaStep{Name: name, MovieID: movieID, Status: models.StepCommitted}
}

func skipped(name string, ids []string) []models.SagaStep {
	steps := make([]models.SagaStep, len(ids))
	for i, id := range ids {
		steps[i] = models.SagaStep{Name: name, MovieID: id, Status: models.StepSkipped}
	}
	return steps
}
