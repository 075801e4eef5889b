// Package app provides application services that implement the per-entity
// request algorithm: validation, natural-key uniqueness and existence
// pre-checks, structured logging, and delegation to the repository ports.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/famapp/famapp-api/internal/domain"
	"github.com/famapp/famapp-api/internal/ports"
)

// Compile-time check that UserService implements ports.UserService.
var _ ports.UserService = (*UserService)(nil)

// UserService implements ports.UserService on top of the user repository.
type UserService struct {
	users  ports.UserRepository
	logger *slog.Logger
}

// NewUserService creates a UserService. The logger is used for structured
// request/error logging.
func NewUserService(users ports.UserRepository, logger *slog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// ListUsers returns all users ordered by id.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list users",
			slog.String("operation", "ListUsers"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return users, nil
}

// GetUserByID returns a single user by id.
func (s *UserService) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch user",
			slog.String("operation", "GetUserByID"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return user, nil
}

// GetUserByEmail returns the user matching the email case-insensitively.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch user by email",
			slog.String("operation", "GetUserByEmail"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return user, nil
}

// CreateUser validates and creates a new user. The normalized-email
// pre-check gives a friendly conflict message; the unique index on the
// email column remains the authoritative guard if a concurrent create wins
// the race, surfacing as the same domain.ErrConflict from the repository.
func (s *UserService) CreateUser(ctx context.Context, user *domain.User) error {
	s.logger.InfoContext(ctx, "creating user", slog.Int64("id", user.ID))

	if err := user.Validate(); err != nil {
		return err
	}

	taken, err := s.users.ExistsByEmail(ctx, user.Email)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to check user email",
			slog.String("operation", "CreateUser"),
			slog.Any("error", err),
		)
		return err
	}
	if taken {
		return fmt.Errorf("%w: user with this e-mail already exists", domain.ErrConflict)
	}

	if err := s.users.Create(ctx, user); err != nil {
		s.logger.ErrorContext(ctx, "failed to create user",
			slog.String("operation", "CreateUser"),
			slog.Int64("id", user.ID),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// UpdateUser validates and replaces an existing user row.
func (s *UserService) UpdateUser(ctx context.Context, user *domain.User) error {
	s.logger.InfoContext(ctx, "updating user", slog.Int64("id", user.ID))

	exists, err := s.users.ExistsByID(ctx, user.ID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}

	if err := user.Validate(); err != nil {
		return err
	}

	if err := s.users.Update(ctx, user); err != nil {
		s.logger.ErrorContext(ctx, "failed to update user",
			slog.String("operation", "UpdateUser"),
			slog.Int64("id", user.ID),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// DeleteUser removes a user by id.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting user", slog.Int64("id", id))

	if err := s.users.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete user",
			slog.String("operation", "DeleteUser"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}
