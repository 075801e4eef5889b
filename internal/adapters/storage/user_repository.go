package storage

import (
	"context"
	"log/slog"
	"strings"

	"github.com/famapp/famapp-api/internal/domain"
	"github.com/famapp/famapp-api/internal/ports"
)

// Compile-time check that UserRepository implements ports.UserRepository.
var _ ports.UserRepository = (*UserRepository)(nil)

// UserRepository is the gorm-backed implementation of ports.UserRepository.
type UserRepository struct {
	store  *Storage
	logger *slog.Logger
}

// NewUserRepository creates a UserRepository on the given storage handle.
func NewUserRepository(store *Storage, logger *slog.Logger) *UserRepository {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &UserRepository{store: store, logger: logger}
}

// List returns all users ordered by id ascending.
func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var models []userModel
	if err := r.store.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, translateError("listing users", err)
	}

	users := make([]domain.User, len(models))
	for i := range models {
		users[i] = toDomainUser(&models[i])
	}
	return users, nil
}

// GetByID returns a single user or domain.ErrNotFound.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	if err := r.store.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateError("fetching user", err)
	}
	u := toDomainUser(&m)
	return &u, nil
}

// GetByEmail returns the user whose stored email matches case-insensitively.
// Lookup does not trim: only create-time comparison normalizes whitespace.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m userModel
	err := r.store.db.WithContext(ctx).
		First(&m, "LOWER(email) = ?", strings.ToLower(email)).Error
	if err != nil {
		return nil, translateError("fetching user by email", err)
	}
	u := toDomainUser(&m)
	return &u, nil
}

// ExistsByID reports whether a user row with the given id exists.
func (r *UserRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.store.db.WithContext(ctx).
		Model(&userModel{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, translateError("checking user existence", err)
	}
	return count > 0, nil
}

// ExistsByEmail reports whether a user exists whose email equals the given
// address after normalization on both sides.
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.store.db.WithContext(ctx).
		Model(&userModel{}).
		Where("LOWER(TRIM(email)) = ?", domain.NormalizeEmail(email)).
		Count(&count).Error
	if err != nil {
		return false, translateError("checking user email existence", err)
	}
	return count > 0, nil
}

// GroupCount returns the number of groups the user is attached to: owned
// groups plus membership rows.
func (r *UserRepository) GroupCount(ctx context.Context, userID int64) (int64, error) {
	var owned int64
	err := r.store.db.WithContext(ctx).
		Model(&groupModel{}).
		Where("user_id = ?", userID).
		Count(&owned).Error
	if err != nil {
		return 0, translateError("counting owned groups", err)
	}

	var memberships int64
	err = r.store.db.WithContext(ctx).
		Model(&groupMemberModel{}).
		Where("user_id = ?", userID).
		Count(&memberships).Error
	if err != nil {
		return 0, translateError("counting group memberships", err)
	}

	return owned + memberships, nil
}

// Create inserts a new user row. Returns domain.ErrConflict when the id or
// the email unique index is violated.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	m := toUserModel(user)
	if err := r.store.db.WithContext(ctx).Create(&m).Error; err != nil {
		r.logger.ErrorContext(ctx, "failed to create user",
			slog.Int64("id", user.ID),
			slog.Any("error", err),
		)
		return translateError("creating user", err)
	}
	return nil
}

// Update replaces an existing user row by primary key. Zero affected rows
// means the row does not exist (sqlite reports matched rows even when the
// new values are identical), so that maps to domain.ErrNotFound.
func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	m := toUserModel(user)
	res := r.store.db.WithContext(ctx).
		Model(&userModel{}).
		Where("id = ?", m.ID).
		Select("first_name", "last_name", "email", "password").
		Updates(&m)
	if res.Error != nil {
		r.logger.ErrorContext(ctx, "failed to update user",
			slog.Int64("id", user.ID),
			slog.Any("error", res.Error),
		)
		return translateError("updating user", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a user row by id.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	res := r.store.db.WithContext(ctx).Delete(&userModel{}, "id = ?", id)
	if res.Error != nil {
		r.logger.ErrorContext(ctx, "failed to delete user",
			slog.Int64("id", id),
			slog.Any("error", res.Error),
		)
		return translateError("deleting user", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
