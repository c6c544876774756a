package service

import (
	"context"
	"log/slog"

	"frent-client/internal/authz"
	"frent-client/internal/cache"
	"frent-client/internal/models"
	"frent-client/internal/repository"
	"frent-client/pkg/auth"
)

// CollectionService handles the current user's cart and wishlist.
type CollectionService struct {
	users  repository.UserRepository
	movies repository.MovieRepository
	views  *cache.Views
	authz  authz.Authorizer
	logger *slog.Logger
}

// NewCollectionService creates a new CollectionService.
func NewCollectionService(
	users repository.UserRepository,
	movies repository.MovieRepository,
	views *cache.Views,
	authorizer authz.Authorizer,
	logger *slog.Logger,
) *CollectionService {
	return &CollectionService{
		users:  users,
		movies: movies,
		views:  views,
		authz:  authorizer,
		logger: logger,
	}
}

// GetCart returns the cart resolved to movies, in cart order.
func (s *CollectionService) GetCart(ctx context.Context, sess *auth.Session) ([]models.CartMovie, error) {
	if err := s.authz.Authorize(sess, authz.ActionCollectionsManage); err != nil {
		return nil, err
	}

	owner := sess.Username()
	return cache.Load(ctx, s.views, cache.ViewCart, owner, func(ctx context.Context) ([]models.CartMovie, error) {
		ids, err := s.users.GetCart(ctx, sess.Token())
		if err != nil {
			return nil, err
		}
		return Join(ctx, ids, identity, s.movies.FindByID, func(id string, m models.Movie) models.CartMovie {
			return models.NewCartMovie(owner, id, m)
		})
	})
}

// GetWishlist returns the wishlist resolved to movies, in wishlist order.
func (s *CollectionService) GetWishlist(ctx context.Context, sess *auth.Session) ([]models.WishlistMovie, error) {
	if err := s.authz.Authorize(sess, authz.ActionCollectionsManage); err != nil {
		return nil, err
	}

	owner := sess.Username()
	return cache.Load(ctx, s.views, cache.ViewWishlist, owner, func(ctx context.Context) ([]models.WishlistMovie, error) {
		ids, err := s.users.GetWishlist(ctx, sess.Token())
		if err != nil {
			return nil, err
		}
		return Join(ctx, ids, identity, s.movies.FindByID, func(id string, m models.Movie) models.WishlistMovie {
			return models.NewWishlistMovie(owner, id, m)
		})
	})
}

// CartTotal returns the server-computed price of the cart.
func (s *CollectionService) CartTotal(ctx context.Context, sess *auth.Session) (float64, error) {
	if err := s.authz.Authorize(sess, authz.ActionCollectionsManage); err != nil {
		return 0, err
	}
	return cache.Load(ctx, s.views, cache.ViewCartTotal, sess.Username(), func(ctx context.Context) (float64, error) {
		return s.users.GetCartTotal(ctx, sess.Token())
	})
}

// AddToCart adds a movie to the cart.
func (s *CollectionService) AddToCart(ctx context.Context, sess *auth.Session, movieID string) error {
	return s.mutate(ctx, sess, s.users.AddToCart, movieID, cache.ViewCart, cache.ViewCartTotal)
}

// RemoveFromCart removes a movie from the cart.
func (s *CollectionService) RemoveFromCart(ctx context.Context, sess *auth.Session, movieID string) error {
	return s.mutate(ctx, sess, s.users.RemoveFromCart, movieID, cache.ViewCart, cache.ViewCartTotal)
}

// AddToWishlist adds a movie to the wishlist.
func (s *CollectionService) AddToWishlist(ctx context.Context, sess *auth.Session, movieID string) error {
	return s.mutate(ctx, sess, s.users.AddToWishlist, movieID, cache.ViewWishlist)
}

// RemoveFromWishlist removes a movie from the wishlist.
func (s *CollectionService) RemoveFromWishlist(ctx context.Context, sess *auth.Session, movieID string) error {
	return s.mutate(ctx, sess, s.users.RemoveFromWishlist, movieID, cache.ViewWishlist)
}

// IsInCart reports whether movieID is in the cart.
func (s *CollectionService) IsInCart(ctx context.Context, sess *auth.Session, movieID string) (bool, error) {
	cart, err := s.GetCart(ctx, sess)
	if err != nil {
		return false, err
	}
	return models.ContainsMovie(cart, movieID), nil
}

// IsInWishlist reports whether movieID is in the wishlist.
func (s *CollectionService) IsInWishlist(ctx context.Context, sess *auth.Session, movieID string) (bool, error) {
	wishlist, err := s.GetWishlist(ctx, sess)
	if err != nil {
		return false, err
	}
	return models.ContainsMovie(wishlist, movieID), nil
}

// mutate runs one collection call and drops the views it touched. Views are
// dropped on failure too: the server may have applied the change anyway.
func (s *CollectionService) mutate(
	ctx context.Context,
	sess *auth.Session,
	call func(ctx context.Context, token, movieID string) error,
	movieID string,
	views ...cache.View,
) error {
	if err := s.authz.Authorize(sess, authz.ActionCollectionsManage); err != nil {
		return err
	}
	err := call(ctx, sess.Token(), movieID)
	s.views.Invalidate(ctx, sess.Username(), views...)
	return err
}
