package repository

import (
	"context"

	"frent-client/internal/api"
	"frent-client/internal/models"
)

//go:generate mockgen -destination=mocks/mock_auth_repository.go -package=mocks frent-client/internal/repository AuthRepository

// AuthRepository defines the interface for the auth resource
type AuthRepository interface {
	Login(ctx context.Context, req *models.LoginRequest) (string, error)
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
}

// authRepository implements AuthRepository over the auth resource
type authRepository struct {
	client *api.Client
}

// NewAuthRepository creates a new AuthRepository
func NewAuthRepository(client *api.Client) AuthRepository {
	return &authRepository{client: client}
}

// Login exchanges credentials for a bearer token
func (r *authRepository) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	var resp models.LoginResponse
	if err := r.client.Post(ctx, "/auth/login", "", req, &resp); err != nil {
		return "", err
	}
	return resp.JWT, nil
}

// Register creates a new account
func (r *authRepository) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	var user models.User
	if err := r.client.Post(ctx, "/auth/register", "", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
