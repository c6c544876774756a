package repository

import (
	"context"

	"frent-client/internal/api"
	"frent-client/internal/models"
)

//go:generate mockgen -destination=mocks/mock_rental_repository.go -package=mocks frent-client/internal/repository RentalRepository

// RentalRepository defines the interface for the rentals resource
type RentalRepository interface {
	FindForUser(ctx context.Context, token string) ([]models.Rental, error)
	FindAllForUser(ctx context.Context, token, userID string) ([]models.Rental, error)
	Create(ctx context.Context, token string, req *models.RentalRequest) (*models.Rental, error)
	Return(ctx context.Context, token, rentalID string) (*models.Rental, error)
	TotalSpent(ctx context.Context, token string) (float64, error)
	TotalSpentByUser(ctx context.Context, token, userID string) (float64, error)
	SendDueDateWarnings(ctx context.Context, token string) error
}

// rentalRepository implements RentalRepository over the rentals resource
type rentalRepository struct {
	client *api.Client
}

// NewRentalRepository creates a new RentalRepository
func NewRentalRepository(client *api.Client) RentalRepository {
	return &rentalRepository{client: client}
}

// FindForUser lists the caller's rentals in server (chronological) order
func (r *rentalRepository) FindForUser(ctx context.Context, token string) ([]models.Rental, error) {
	return r.list(ctx, token, "/rentals/getForUser")
}

// FindAllForUser lists another user's rentals (admin only)
func (r *rentalRepository) FindAllForUser(ctx context.Context, token, userID string) ([]models.Rental, error) {
	return r.list(ctx, token, api.Path("rentals", "getAllForUser", userID))
}

// Create submits a rental for the movie in req
func (r *rentalRepository) Create(ctx context.Context, token string, req *models.RentalRequest) (*models.Rental, error) {
	var rental models.Rental
	if err := r.client.Post(ctx, api.Path("rentals", "addForUser", req.MovieID), token, req, &rental); err != nil {
		return nil, err
	}
	return &rental, nil
}

// Return marks a rental as returned; the server sets the return date
func (r *rentalRepository) Return(ctx context.Context, token, rentalID string) (*models.Rental, error) {
	var rental models.Rental
	if err := r.client.Put(ctx, api.Path("rentals", "return", rentalID), token, struct{}{}, &rental); err != nil {
		return nil, err
	}
	return &rental, nil
}

// TotalSpent returns the caller's total rental spend
func (r *rentalRepository) TotalSpent(ctx context.Context, token string) (float64, error) {
	return r.total(ctx, token, "/rentals/getTotalSpent")
}

// TotalSpentByUser returns another user's total rental spend (admin only)
func (r *rentalRepository) TotalSpentByUser(ctx context.Context, token, userID string) (float64, error) {
	return r.total(ctx, token, api.Path("rentals", "getTotalSpentByUser", userID))
}

// SendDueDateWarnings asks the server to notify users with overdue rentals
func (r *rentalRepository) SendDueDateWarnings(ctx context.Context, token string) error {
	return r.client.Post(ctx, "/rentals/sendDueDateWarnings", token, nil, nil)
}

func (r *rentalRepository) list(ctx context.Context, token, path string) ([]models.Rental, error) {
	rentals := []models.Rental{}
	if err := r.client.Get(ctx, path, token, &rentals); err != nil {
		return nil, err
	}
	return nonNil(rentals), nil
}

func (r *rentalRepository) total(ctx context.Context, token, path string) (float64, error) {
	var total float64
	if err := r.client.Get(ctx, path, token, &total); err != nil {
		return 0, err
	}
	return total, nil
}
