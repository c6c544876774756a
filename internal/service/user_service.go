package service

import (
	"context"
	"log/slog"

	"frent-client/internal/authz"
	apperrors "frent-client/internal/errors"
	"frent-client/internal/models"
	"frent-client/internal/repository"
	"frent-client/pkg/auth"
)

// UserAdminService handles account administration.
type UserAdminService struct {
	users  repository.UserRepository
	authz  authz.Authorizer
	logger *slog.Logger
}

// NewUserAdminService creates a new UserAdminService.
func NewUserAdminService(users repository.UserRepository, authorizer authz.Authorizer, logger *slog.Logger) *UserAdminService {
	return &UserAdminService{
		users:  users,
		authz:  authorizer,
		logger: logger,
	}
}

// List returns every account. Employees may list but not change accounts.
func (s *UserAdminService) List(ctx context.Context, sess *auth.Session) ([]models.User, error) {
	if err := s.authz.Authorize(sess, authz.ActionUserList); err != nil {
		return nil, err
	}
	return s.users.FindAll(ctx, sess.Token())
}

// Delete removes an account.
func (s *UserAdminService) Delete(ctx context.Context, sess *auth.Session, id string) error {
	if err := s.authz.Authorize(sess, authz.ActionUserManage); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, sess.Token(), id); err != nil {
		return err
	}
	s.logger.Info("user deleted", "user_id", id, "by", sess.Username())
	return nil
}

// Suspend blocks an account.
func (s *UserAdminService) Suspend(ctx context.Context, sess *auth.Session, id string) (*models.User, error) {
	return s.setSuspended(ctx, sess, id, true)
}

// Unsuspend lifts a suspension.
func (s *UserAdminService) Unsuspend(ctx context.Context, sess *auth.Session, id string) (*models.User, error) {
	return s.setSuspended(ctx, sess, id, false)
}

// setSuspended looks the account up because the suspend endpoints take the
// whole user as their body.
func (s *UserAdminService) setSuspended(ctx context.Context, sess *auth.Session, id string, suspended bool) (*models.User, error) {
	if err := s.authz.Authorize(sess, authz.ActionUserManage); err != nil {
		return nil, err
	}

	user, err := s.find(ctx, sess, id)
	if err != nil {
		return nil, err
	}

	var updated *models.User
	if suspended {
		updated, err = s.users.Suspend(ctx, sess.Token(), user)
	} else {
		updated, err = s.users.Unsuspend(ctx, sess.Token(), user)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("user suspension changed", "user_id", id, "suspended", suspended, "by", sess.Username())
	return updated, nil
}

func (s *UserAdminService) find(ctx context.Context, sess *auth.Session, id string) (*models.User, error) {
	users, err := s.users.FindAll(ctx, sess.Token())
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}
