package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"frent-client/internal/authz"
	"frent-client/internal/cache"
	apperrors "frent-client/internal/errors"
	"frent-client/internal/models"
	"frent-client/internal/queue"
	"frent-client/internal/repository"
	"frent-client/pkg/auth"

	"github.com/google/uuid"
)

// RentalService handles rentals for the current user and, for admins, for
// any user.
type RentalService struct {
	rentals  repository.RentalRepository
	movies   repository.MovieRepository
	views    *cache.Views
	authz    authz.Authorizer
	warnings queue.Queue // nil sends warnings inline
	logger   *slog.Logger
}

// NewRentalService creates a new RentalService. warnings may be nil.
func NewRentalService(
	rentals repository.RentalRepository,
	movies repository.MovieRepository,
	views *cache.Views,
	authorizer authz.Authorizer,
	warnings queue.Queue,
	logger *slog.Logger,
) *RentalService {
	return &RentalService{
		rentals:  rentals,
		movies:   movies,
		views:    views,
		authz:    authorizer,
		warnings: warnings,
		logger:   logger,
	}
}

// ListForUser returns the current user's rentals joined with their movies,
// most recent first.
func (s *RentalService) ListForUser(ctx context.Context, sess *auth.Session) ([]models.RentalMovie, error) {
	if err := s.authz.Authorize(sess, authz.ActionRentalView); err != nil {
		return nil, err
	}
	return cache.Load(ctx, s.views, cache.ViewRentals, sess.Username(), func(ctx context.Context) ([]models.RentalMovie, error) {
		rentals, err := s.rentals.FindForUser(ctx, sess.Token())
		if err != nil {
			return nil, err
		}
		return s.join(ctx, rentals)
	})
}

// ListForUserByID returns another user's rentals, most recent first.
func (s *RentalService) ListForUserByID(ctx context.Context, sess *auth.Session, userID string) ([]models.RentalMovie, error) {
	if err := s.authz.Authorize(sess, authz.ActionRentalViewAny); err != nil {
		return nil, err
	}
	rentals, err := s.rentals.FindAllForUser(ctx, sess.Token(), userID)
	if err != nil {
		return nil, err
	}
	return s.join(ctx, rentals)
}

// Create rents a movie at its current price.
func (s *RentalService) Create(ctx context.Context, sess *auth.Session, movieID string) (*models.Rental, error) {
	if err := s.authz.Authorize(sess, authz.ActionRentalCreate); err != nil {
		return nil, err
	}

	rental, err := rentAtCurrentPrice(ctx, s.movies, s.rentals, sess.Token(), movieID)
	if err != nil {
		return nil, err
	}

	s.views.Invalidate(ctx, sess.Username(), cache.ViewRentals, cache.ViewRentalsTotal)
	return rental, nil
}

// rentAtCurrentPrice looks the movie's price up and submits a rental for it.
func rentAtCurrentPrice(
	ctx context.Context,
	movies repository.MovieRepository,
	rentals repository.RentalRepository,
	token, movieID string,
) (*models.Rental, error) {
	if strings.TrimSpace(movieID) == "" {
		return nil, apperrors.ErrNotFound
	}

	movie, err := movies.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("movie %s: %w", movieID, err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %s: %w", movieID, apperrors.ErrNotFound)
	}

	return rentals.Create(ctx, token, models.NewRentalRequest(movie))
}

// Return marks a rental returned. The return date comes from the server; a
// response whose returned flag and date disagree is rejected.
func (s *RentalService) Return(ctx context.Context, sess *auth.Session, rentalID string) (*models.Rental, error) {
	if err := s.authz.Authorize(sess, authz.ActionRentalReturn); err != nil {
		return nil, err
	}

	rental, err := s.rentals.Return(ctx, sess.Token(), rentalID)
	if err != nil {
		return nil, err
	}

	s.views.Invalidate(ctx, sess.Username(), cache.ViewRentals, cache.ViewRentalsTotal)

	if rental == nil || !rental.Returned {
		return nil, apperrors.ErrInconsistentRental
	}
	if err := rental.Validate(); err != nil {
		return nil, err
	}
	return rental, nil
}

// TotalSpent returns what the current user has spent on rentals.
func (s *RentalService) TotalSpent(ctx context.Context, sess *auth.Session) (float64, error) {
	if err := s.authz.Authorize(sess, authz.ActionRentalView); err != nil {
		return 0, err
	}
	return cache.Load(ctx, s.views, cache.ViewRentalsTotal, sess.Username(), func(ctx context.Context) (float64, error) {
		return s.rentals.TotalSpent(ctx, sess.Token())
	})
}

// TotalSpentByID returns what another user has spent on rentals.
func (s *RentalService) TotalSpentByID(ctx context.Context, sess *auth.Session, userID string) (float64, error) {
	if err := s.authz.Authorize(sess, authz.ActionRentalViewAny); err != nil {
		return 0, err
	}
	return s.rentals.TotalSpentByUser(ctx, sess.Token(), userID)
}

// SendDueDateWarnings asks the server to email every user with an overdue
// rental. Only the authorization check is reported; delivery failures are
// logged and never returned.
func (s *RentalService) SendDueDateWarnings(ctx context.Context, sess *auth.Session) error {
	if err := s.authz.Authorize(sess, authz.ActionRentalNotify); err != nil {
		return err
	}

	if s.warnings == nil {
		if err := s.rentals.SendDueDateWarnings(ctx, sess.Token()); err != nil {
			s.logger.Error("due date warnings failed", "requested_by", sess.Username(), "error", err)
		}
		return nil
	}

	job := queue.WarningJob{
		ID:          uuid.NewString(),
		Token:       sess.Token(),
		RequestedBy: sess.Username(),
		EnqueuedAt:  time.Now(),
	}
	if err := s.warnings.Enqueue(job); err != nil {
		s.logger.Error("failed to enqueue due date warnings", "job_id", job.ID, "requested_by", job.RequestedBy, "error", err)
		return nil
	}

	s.logger.Info("due date warnings queued", "job_id", job.ID, "requested_by", job.RequestedBy)
	return nil
}

func (s *RentalService) join(ctx context.Context, rentals []models.Rental) ([]models.RentalMovie, error) {
	return Join(ctx, models.NewestFirst(rentals), rentalMovieID, s.movies.FindByID, models.MergeRental)
}

func rentalMovieID(r models.Rental) string {
	return r.MovieID
}
