package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	apperrors "frent-client/internal/errors"
	"frent-client/internal/models"
	"frent-client/internal/repository"
	"frent-client/pkg/auth"
)

// AuthService handles login and registration against the rental service.
type AuthService struct {
	repo repository.AuthRepository
	now  func() time.Time
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo repository.AuthRepository) *AuthService {
	return &AuthService{
		repo: repo,
		now:  time.Now,
	}
}

// Login exchanges credentials for a session. The caller decides where the
// token lives: the terminal client hands it to its Guard, the BFF returns it
// to the browser.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*auth.Session, error) {
	req.Email = strings.TrimSpace(req.Email)

	token, err := s.repo.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, fmt.Errorf("%w: login returned no token", apperrors.ErrInvalidToken)
	}

	sess, err := auth.NewSession(token)
	if err != nil {
		return nil, err
	}
	if !sess.Valid(s.now()) {
		return nil, apperrors.ErrTokenExpired
	}
	return sess, nil
}

// Register creates an account. New accounts are members unless a type is given.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if req.UserType == "" {
		req.UserType = models.RoleMember
	}
	req.Email = strings.TrimSpace(req.Email)
	req.Username = strings.TrimSpace(req.Username)
	return s.repo.Register(ctx, req)
}
