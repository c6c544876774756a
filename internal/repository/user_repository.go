package repository

import (
	"context"

	"frent-client/internal/api"
	"frent-client/internal/models"
)

//go:generate mockgen -destination=mocks/mock_user_repository.go -package=mocks frent-client/internal/repository UserRepository

// UserRepository defines the interface for the users resource: the caller's
// own cart and wishlist plus admin user management
type UserRepository interface {
	GetCart(ctx context.Context, token string) ([]string, error)
	GetWishlist(ctx context.Context, token string) ([]string, error)
	GetCartTotal(ctx context.Context, token string) (float64, error)
	AddToCart(ctx context.Context, token, movieID string) error
	RemoveFromCart(ctx context.Context, token, movieID string) error
	AddToWishlist(ctx context.Context, token, movieID string) error
	RemoveFromWishlist(ctx context.Context, token, movieID string) error

	FindAll(ctx context.Context, token string) ([]models.User, error)
	Delete(ctx context.Context, token, id string) error
	Suspend(ctx context.Context, token string, user *models.User) (*models.User, error)
	Unsuspend(ctx context.Context, token string, user *models.User) (*models.User, error)
}

// userRepository implements UserRepository over the users resource
type userRepository struct {
	client *api.Client
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(client *api.Client) UserRepository {
	return &userRepository{client: client}
}

// GetCart returns the movie ids in the caller's cart
func (r *userRepository) GetCart(ctx context.Context, token string) ([]string, error) {
	return r.getIDs(ctx, token, "/users/cart")
}

// GetWishlist returns the movie ids in the caller's wishlist
func (r *userRepository) GetWishlist(ctx context.Context, token string) ([]string, error) {
	return r.getIDs(ctx, token, "/users/wishlist")
}

// GetCartTotal returns the server-computed price of the caller's cart
func (r *userRepository) GetCartTotal(ctx context.Context, token string) (float64, error) {
	var total float64
	if err := r.client.Get(ctx, "/users/cartTotal", token, &total); err != nil {
		return 0, err
	}
	return total, nil
}

// AddToCart adds a movie to the caller's cart
func (r *userRepository) AddToCart(ctx context.Context, token, movieID string) error {
	return r.mutate(ctx, token, api.Path("users", "addToCart", movieID))
}

// RemoveFromCart removes a movie from the caller's cart
func (r *userRepository) RemoveFromCart(ctx context.Context, token, movieID string) error {
	return r.mutate(ctx, token, api.Path("users", "removeFromCart", movieID))
}

// AddToWishlist adds a movie to the caller's wishlist
func (r *userRepository) AddToWishlist(ctx context.Context, token, movieID string) error {
	return r.mutate(ctx, token, api.Path("users", "addToWishlist", movieID))
}

// RemoveFromWishlist removes a movie from the caller's wishlist
func (r *userRepository) RemoveFromWishlist(ctx context.Context, token, movieID string) error {
	return r.mutate(ctx, token, api.Path("users", "removeFromWishlist", movieID))
}

// FindAll lists every user (admin only)
func (r *userRepository) FindAll(ctx context.Context, token string) ([]models.User, error) {
	users := []models.User{}
	if err := r.client.Get(ctx, "/users/", token, &users); err != nil {
		return nil, err
	}
	return nonNil(users), nil
}

// Delete removes a user (admin only)
func (r *userRepository) Delete(ctx context.Context, token, id string) error {
	return r.client.Delete(ctx, api.Path("users", id), token, nil)
}

// Suspend blocks a user from renting (admin only)
func (r *userRepository) Suspend(ctx context.Context, token string, user *models.User) (*models.User, error) {
	return r.patchUser(ctx, token, api.Path("users", "suspend", user.ID), user)
}

// Unsuspend lifts a suspension (admin only)
func (r *userRepository) Unsuspend(ctx context.Context, token string, user *models.User) (*models.User, error) {
	return r.patchUser(ctx, token, api.Path("users", "unsuspend", user.ID), user)
}

func (r *userRepository) getIDs(ctx context.Context, token, path string) ([]string, error) {
	ids := []string{}
	if err := r.client.Get(ctx, path, token, &ids); err != nil {
		return nil, err
	}
	return nonNil(ids), nil
}

// mutate sends the empty JSON object the cart and wishlist endpoints expect.
// The returned user is not needed: callers refetch the collection.
func (r *userRepository) mutate(ctx context.Context, token, path string) error {
	return r.client.Put(ctx, path, token, struct{}{}, nil)
}

func (r *userRepository) patchUser(ctx context.Context, token, path string, user *models.User) (*models.User, error) {
	var updated models.User
	if err := r.client.Patch(ctx, path, token, user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
