package service

import (
	"context"
	"io"
	"time"

	"frent-client/internal/models"
	"frent-client/pkg/auth"
)

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Login(ctx context.Context, req *models.LoginRequest) (*auth.Session, error)
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
}

// CatalogServicer defines the interface for catalog operations.
type CatalogServicer interface {
	ListPage(ctx context.Context, page, size int) ([]models.Movie, error)
	ListAll(ctx context.Context, sess *auth.Session) ([]models.Movie, error)
	GetByID(ctx context.Context, id string) (*models.Movie, error)
	Search(ctx context.Context, keyword string, page, size int) ([]models.Movie, error)

	// Admin operations
	Create(ctx context.Context, sess *auth.Session, req *models.MovieRequest) (*models.Movie, error)
	Update(ctx context.Context, sess *auth.Session, id string, req *models.MovieRequest) (*models.Movie, error)
	Delete(ctx context.Context, sess *auth.Session, id string) error
	SetAvailable(ctx context.Context, sess *auth.Session, id string) (*models.Movie, error)
	SetUnavailable(ctx context.Context, sess *auth.Session, id string) (*models.Movie, error)
	ApplyDiscount(ctx context.Context, sess *auth.Session, id string, percent float64) (*models.Movie, error)
	RevertPrice(ctx context.Context, sess *auth.Session, id string, oldPrice float64) (*models.Movie, error)
	UploadArtwork(ctx context.Context, sess *auth.Session, filename, contentType string, body io.Reader) (string, error)
}

// CollectionServicer defines the interface for cart and wishlist operations.
type CollectionServicer interface {
	GetCart(ctx context.Context, sess *auth.Session) ([]models.CartMovie, error)
	GetWishlist(ctx context.Context, sess *auth.Session) ([]models.WishlistMovie, error)
	CartTotal(ctx context.Context, sess *auth.Session) (float64, error)
	AddToCart(ctx context.Context, sess *auth.Session, movieID string) error
	RemoveFromCart(ctx context.Context, sess *auth.Session, movieID string) error
	AddToWishlist(ctx context.Context, sess *auth.Session, movieID string) error
	RemoveFromWishlist(ctx context.Context, sess *auth.Session, movieID string) error
	IsInCart(ctx context.Context, sess *auth.Session, movieID string) (bool, error)
	IsInWishlist(ctx context.Context, sess *auth.Session, movieID string) (bool, error)
}

// RentalServicer defines the interface for rental operations.
type RentalServicer interface {
	ListForUser(ctx context.Context, sess *auth.Session) ([]models.RentalMovie, error)
	ListForUserByID(ctx context.Context, sess *auth.Session, userID string) ([]models.RentalMovie, error)
	Create(ctx context.Context, sess *auth.Session, movieID string) (*models.Rental, error)
	Return(ctx context.Context, sess *auth.Session, rentalID string) (*models.Rental, error)
	TotalSpent(ctx context.Context, sess *auth.Session) (float64, error)
	TotalSpentByID(ctx context.Context, sess *auth.Session, userID string) (float64, error)
	SendDueDateWarnings(ctx context.Context, sess *auth.Session) error
}

// CheckoutServicer defines the interface for compound transactions.
type CheckoutServicer interface {
	RentCart(ctx context.Context, sess *auth.Session) (*SagaResult, error)
	MoveToCart(ctx context.Context, sess *auth.Session, movieID string) (*SagaResult, error)
	History(ctx context.Context, sess *auth.Session, limit int) ([]SagaResult, error)
	PartialFailures(ctx context.Context, sess *auth.Session, since time.Time) ([]SagaResult, error)
}

// UserAdminServicer defines the interface for account administration.
type UserAdminServicer interface {
	List(ctx context.Context, sess *auth.Session) ([]models.User, error)
	Delete(ctx context.Context, sess *auth.Session, id string) error
	Suspend(ctx context.Context, sess *auth.Session, id string) (*models.User, error)
	Unsuspend(ctx context.Context, sess *auth.Session, id string) (*models.User, error)
}

// Ensure concrete types implement interfaces
var (
	_ AuthServicer       = (*AuthService)(nil)
	_ CatalogServicer    = (*CatalogService)(nil)
	_ CollectionServicer = (*CollectionService)(nil)
	_ RentalServicer     = (*RentalService)(nil)
	_ CheckoutServicer   = (*CheckoutService)(nil)
	_ UserAdminServicer  = (*UserAdminService)(nil)
)
